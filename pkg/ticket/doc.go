// Package ticket renders order tickets from user-authored templates.
//
// The template grammar has three forms: literal markup, `{{Field}}`
// placeholders substituted from an order record, and
// `{{#Field}}...{{/Field}}` blocks kept only when the field has
// non-whitespace content. Two reserved placeholders exist: the line-items
// table and the print date. Templates are untrusted free-form input from
// non-technical users, so rendering never fails; malformed syntax falls
// back to literal text and unknown fields render empty.
package ticket

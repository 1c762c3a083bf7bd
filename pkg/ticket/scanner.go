package ticket

import "strings"

// The renderer works in two passes over the template, each driven by its
// own scan: pass one resolves conditional blocks, pass two resolves
// placeholders. Scanning is explicit so behavior on malformed input stays
// well-defined: anything that does not complete a form is literal text.

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenConditional
	tokenPlaceholder
)

type token struct {
	kind tokenKind

	// text holds literal content for tokenLiteral, the raw untrimmed
	// name/key for the other kinds.
	text string

	// body is the raw interior of a conditional block.
	body string
}

const (
	openDelim        = "{{"
	closeDelim       = "}}"
	conditionalOpen  = "{{#"
	conditionalClose = "{{/"
)

// scanConditionals splits the template into literal runs and complete,
// non-overlapping conditional blocks, left to right. A block's interior
// runs to the first closing tag whose name matches the opener's raw name
// exactly; blocks therefore do not nest. An opener with no matching close
// is emitted as literal text and scanning resumes immediately after it.
func scanConditionals(src string) []token {
	var tokens []token
	pos := 0
	for pos < len(src) {
		rel := strings.Index(src[pos:], conditionalOpen)
		if rel < 0 {
			break
		}
		start := pos + rel

		name, nameEnd, ok := scanTagName(src, start+len(conditionalOpen))
		if !ok {
			// Not a well-formed opening tag; keep one character literal
			// and rescan so an overlapping candidate is still found.
			tokens = appendLiteral(tokens, src[pos:start+1])
			pos = start + 1
			continue
		}

		closing := conditionalClose + name + closeDelim
		bodyStart := nameEnd + len(closeDelim)
		bodyRel := strings.Index(src[bodyStart:], closing)
		if bodyRel < 0 {
			// Unterminated block: the opener stays literal.
			tokens = appendLiteral(tokens, src[pos:bodyStart])
			pos = bodyStart
			continue
		}

		tokens = appendLiteral(tokens, src[pos:start])
		tokens = append(tokens, token{
			kind: tokenConditional,
			text: name,
			body: src[bodyStart : bodyStart+bodyRel],
		})
		pos = bodyStart + bodyRel + len(closing)
	}
	return appendLiteral(tokens, src[pos:])
}

// scanPlaceholders splits the template into literal runs and `{{KEY}}`
// placeholders. An opening delimiter with no closing `}}` on the same key
// run stays literal.
func scanPlaceholders(src string) []token {
	var tokens []token
	pos := 0
	for pos < len(src) {
		rel := strings.Index(src[pos:], openDelim)
		if rel < 0 {
			break
		}
		start := pos + rel

		key, keyEnd, ok := scanTagName(src, start+len(openDelim))
		if !ok {
			tokens = appendLiteral(tokens, src[pos:start+1])
			pos = start + 1
			continue
		}

		tokens = appendLiteral(tokens, src[pos:start])
		tokens = append(tokens, token{kind: tokenPlaceholder, text: key})
		pos = keyEnd + len(closeDelim)
	}
	return appendLiteral(tokens, src[pos:])
}

// scanTagName reads a tag name starting at from: a run of non-'}'
// characters that must be followed by the closing delimiter. Returns the
// raw name and the index of the closing delimiter.
func scanTagName(src string, from int) (string, int, bool) {
	end := from
	for end < len(src) && src[end] != '}' {
		end++
	}
	if !strings.HasPrefix(src[end:], closeDelim) {
		return "", 0, false
	}
	return src[from:end], end, true
}

func appendLiteral(tokens []token, text string) []token {
	if text == "" {
		return tokens
	}
	return append(tokens, token{kind: tokenLiteral, text: text})
}

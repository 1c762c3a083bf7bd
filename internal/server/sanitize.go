package server

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	templatePolicyOnce sync.Once
	templatePolicy     *bluemonday.Policy
)

// sanitizeTemplate strips anything outside the print-layout allowlist from
// a saved template. Templates come from non-technical users and are later
// served back as markup, so scripts and event handlers must not survive
// the round trip. Placeholder braces live in text nodes and pass through
// untouched.
func sanitizeTemplate(raw string) string {
	templatePolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"div", "section", "article", "header", "footer",
			"h1", "h2", "h3", "h4",
			"p", "span", "br", "hr",
			"strong", "b", "em", "i", "u", "small", "sub", "sup",
			"ul", "ol", "li",
			"table", "thead", "tbody", "tfoot", "tr", "th", "td",
			"img",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy.AllowStandardURLs()
		policy.AllowImages()
		templatePolicy = policy
	})
	return templatePolicy.Sanitize(raw)
}

package ticket

import "strings"

// escapeHTML escapes the four HTML-significant characters in dynamic
// values. Ampersand goes first so entities introduced by the later
// replacements are not themselves re-escaped. Literal template markup is
// never passed through this.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

package htmltable

import "strings"

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#x27;",
	"`", "&#x60;",
)

// EscapeString replaces the characters & < > " ' and `
// with HTML entities so that untrusted cell data
// can't inject markup.
func EscapeString(s string) string {
	return htmlEscaper.Replace(s)
}

package mustache

import (
	"io"
	"strings"
)

// htmlEscaper replaces the characters that are significant in HTML.
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// Escape returns s with &, <, >, ", and ' replaced by their HTML entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeTo writes the HTML-escaped form of s to w.
func EscapeTo(w io.Writer, s string) (int, error) {
	return htmlEscaper.WriteString(w, s)
}

package util

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var plainText = bluemonday.StrictPolicy()

// PlainText drops every HTML tag from input and returns unescaped, trimmed
// text. Callers store it as-is; escaping belongs to whatever renders it.
func PlainText(input string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(input)))
}

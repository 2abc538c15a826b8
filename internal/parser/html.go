package parser

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var stripTagsPolicy = bluemonday.StripTagsPolicy()

// StripHTML removes every tag and returns the unescaped text.
func StripHTML(htmlContent string) string {
	return html.UnescapeString(stripTagsPolicy.Sanitize(htmlContent))
}

// PlainText renders markdown and strips the markup, collapsing whitespace.
// Unrenderable input is returned as is.
func PlainText(md string) string {
	rendered, err := MarkdownToHTML(md)
	if err != nil {
		return md
	}
	return strings.Join(strings.Fields(StripHTML(rendered)), " ")
}

// Excerpt returns at most maxRunes runes of the plain text of md, cut on a
// word boundary when possible.
func Excerpt(md string, maxRunes int) string {
	text := PlainText(md)
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToHTML(t *testing.T) {
	out, err := MarkdownToHTML("# Title\n\nSome **bold** text.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1 id=\"title\">Title</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestMarkdownToHTML_SanitizesScripts(t *testing.T) {
	out, err := MarkdownToHTML("hello <script>alert(1)</script> <a href=\"javascript:alert(1)\">x</a>")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "javascript:")
}

func TestMarkdownToHTML_Tables(t *testing.T) {
	out, err := MarkdownToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Tom & Jerry", StripHTML("<p>Tom &amp; <em>Jerry</em></p>"))
}

func TestPlainText(t *testing.T) {
	text := PlainText("## Install\n\nRun `make`\nthen *enjoy*.")

	assert.Equal(t, "Install Run make then enjoy.", text)
}

func TestExcerpt(t *testing.T) {
	md := "The quick brown fox jumps over the lazy dog"

	assert.Equal(t, md, Excerpt(md, 0))
	assert.Equal(t, md, Excerpt(md, 100))

	short := Excerpt(md, 12)
	assert.True(t, strings.HasSuffix(short, "…"))
	assert.Equal(t, "The quick…", short)
}

package ui

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/render"
)

// markdown is the shared converter. GFM covers tables, strikethrough, and
// autolinks, which is what user-facing content tends to use.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts markdown source to HTML and embeds it as a sanitized raw
// node. The output passes through bluemonday's UGC policy, so script tags and
// event-handler attributes in the source are stripped.
func Markdown(source string) *el.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		// Converting well-formed UTF-8 does not fail in practice; fall back
		// to showing the source as text.
		return el.Pre(el.Text(source))
	}

	return el.Div(
		el.Class("prose prose-sm max-w-none"),
		render.SanitizedRaw(buf.String()),
	)
}

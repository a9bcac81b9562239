// Package render converts stored markdown into HTML safe to embed in the
// public site.
package render

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML is let through the markdown renderer and cleaned up afterwards;
// sanitization happens exactly once, at the bluemonday stage.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// policy allows the safe user-generated-content tag set and strips scripts,
// event handlers and other active content.
var policy = bluemonday.UGCPolicy()

// Markdown renders source to sanitized HTML.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}

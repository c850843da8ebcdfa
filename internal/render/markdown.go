// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Markdown converts blog post markdown to sanitized HTML. The sanitizer
// runs after conversion, so raw HTML embedded in the source is stripped too.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		slog.Error("markdown conversion failed", "error", err)
		return ""
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())) // #nosec G203 -- sanitized above
}

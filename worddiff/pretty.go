// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

package worddiff

import (
	"bytes"
	"html"
	"strings"
)

// PrettyHTML converts groups into an HTML report. Each change shows the
// removed text struck out followed by the added text.
// It is intended as an example from which to write one's own display functions.
func PrettyHTML(groups []ChangeGroup) string {
	var buff bytes.Buffer
	for _, g := range groups {
		switch g.Type {
		case GroupUnchanged:
			_, _ = buff.WriteString("<span>")
			_, _ = buff.WriteString(escapeHTML(g.Unchanged))
			_, _ = buff.WriteString("</span>")
		case GroupChange:
			if g.Removed != "" {
				_, _ = buff.WriteString("<del style=\"background:#ffe6e6;\">")
				_, _ = buff.WriteString(escapeHTML(g.Removed))
				_, _ = buff.WriteString("</del>")
			}
			if g.Added != "" {
				_, _ = buff.WriteString("<ins style=\"background:#e6ffe6;\">")
				_, _ = buff.WriteString(escapeHTML(g.Added))
				_, _ = buff.WriteString("</ins>")
			}
		}
	}
	return buff.String()
}

func escapeHTML(text string) string {
	return strings.Replace(html.EscapeString(text), "\n", "&para;<br>", -1)
}

// PrettyText converts groups into a colored text report.
func PrettyText(groups []ChangeGroup) string {
	var buff bytes.Buffer
	for _, g := range groups {
		switch g.Type {
		case GroupUnchanged:
			_, _ = buff.WriteString(g.Unchanged)
		case GroupChange:
			if g.Removed != "" {
				_, _ = buff.WriteString("\x1b[31m")
				_, _ = buff.WriteString(g.Removed)
				_, _ = buff.WriteString("\x1b[0m")
			}
			if g.Added != "" {
				_, _ = buff.WriteString("\x1b[32m")
				_, _ = buff.WriteString(g.Added)
				_, _ = buff.WriteString("\x1b[0m")
			}
		}
	}

	return buff.String()
}

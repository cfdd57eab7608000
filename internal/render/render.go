// Package render turns segments into something a person can look at:
// a terminal preview or an HTML fragment. It never fetches images.
package render

import (
	"fmt"
	"html"
	"io"
	"log"
	"strings"

	"github.com/riverfjs/gifintext-go/internal/types"
)

// Plain renders segments for a terminal. Text segments are written verbatim;
// each GIF goes on its own line as "<symbol> <url>".
func Plain(segments []types.Segment, config *types.RenderConfig) string {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	symbol := config.Symbol
	if symbol == nil {
		symbol = types.DefaultSymbol()
	}

	var sb strings.Builder
	atLineStart := true
	for _, seg := range segments {
		var line string
		switch s := seg.(type) {
		case *types.Text:
			sb.WriteString(s.Content)
			if s.Content != "" {
				atLineStart = strings.HasSuffix(s.Content, "\n")
			}
			continue
		case *types.Resource:
			line = symbol.GIF + " " + s.URL
		default:
			line = symbol.Unknown + " " + seg.Raw()
		}

		if !atLineStart {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		atLineStart = true
	}
	return sb.String()
}

// WriteHTML writes segments to w as an HTML fragment.
//
// Text segments are escaped, or converted from Markdown when config.Markdown
// is set. A Markdown failure falls back to escaped text and is reported to
// logger (which may be nil). Only write errors are returned.
func WriteHTML(w io.Writer, segments []types.Segment, config *types.RenderConfig, logger *log.Logger) error {
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	for i, seg := range segments {
		var out string
		switch s := seg.(type) {
		case *types.Text:
			out = textHTML(s.Content, config.Markdown, logger)
		case *types.Resource:
			out = fmt.Sprintf(`<img src="%s" alt="%s">`,
				html.EscapeString(s.URL), html.EscapeString(config.AltText))
		default:
			out = escapeText(seg.Raw())
		}

		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("failed to write segment %d: %w", i, err)
		}
	}
	return nil
}

func textHTML(content string, asMarkdown bool, logger *log.Logger) string {
	if !asMarkdown {
		return escapeText(content)
	}
	out, err := MarkdownToHTML(content)
	if err != nil {
		if logger != nil {
			logger.Printf("Markdown rendering failed: %v", err)
		}
		return escapeText(content)
	}
	return out
}

// escapeText escapes HTML special characters and turns newlines into <br>.
func escapeText(content string) string {
	return strings.ReplaceAll(html.EscapeString(content), "\n", "<br>\n")
}

// Package render provides output renderers for the hyeat pipeline.
// This file implements the Markdown digest: the day is laid out as HTML
// and converted with html-to-markdown.
package render

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/hyeat/core"
)

// MarkdownRenderer writes a human-readable digest of one date.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render lists restaurants and corners in catalog order.
func (r *MarkdownRenderer) Render(date string, day core.DayMenu) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(digestHTML(date, day))
	if err != nil {
		return nil, fmt.Errorf("converting digest to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func digestHTML(date string, day core.DayMenu) string {
	var b strings.Builder
	esc := html.EscapeString

	fmt.Fprintf(&b, "<h1>%s</h1>", esc(date))
	if len(day) == 0 {
		b.WriteString("<p>운영없음</p>")
		return b.String()
	}

	for _, restaurant := range core.Restaurants {
		corners := day[restaurant]
		if len(corners) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h2>%s</h2>", esc(string(restaurant)))
		for _, corner := range core.Corners {
			rec, ok := corners[corner]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "<h3>%s (%d원)</h3>", esc(rec.CornerDisplayName), rec.PriceWon)
			fmt.Fprintf(&b, "<p><strong>%s</strong></p>", esc(rec.MainMenuName))
			writeList(&b, rec.Items)
			for _, v := range rec.Variants {
				fmt.Fprintf(&b, "<h4>%s</h4>", esc(v.MainMenuName))
				writeList(&b, v.Items)
			}
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("<ul>")
	for _, item := range items {
		fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(item))
	}
	b.WriteString("</ul>")
}

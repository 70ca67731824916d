// Package render — JSON renderer.
// Emits one date's menu as { restaurantId: { cornerId: record } }, the shape
// consumers of the menus/ directory read.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/hyeat/core"
)

// JSONRenderer produces the per-date JSON document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render encodes day with two-space indentation. Map keys come out sorted,
// so identical menus produce identical bytes.
func (r *JSONRenderer) Render(date string, day core.DayMenu) ([]byte, error) {
	out := make(core.DayMenu, len(day))
	for restaurant, corners := range day {
		if len(corners) == 0 {
			continue
		}
		out[restaurant] = make(map[core.CornerID]core.Record, len(corners))
		for corner, rec := range corners {
			out[restaurant][corner] = withEmptySlices(rec)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("marshaling JSON for %s: %w", date, err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// withEmptySlices makes nil item lists encode as [] rather than null.
func withEmptySlices(rec core.Record) core.Record {
	if rec.Items == nil {
		rec.Items = []string{}
	}
	if len(rec.Variants) > 0 {
		variants := make([]core.Variant, len(rec.Variants))
		for i, v := range rec.Variants {
			if v.Items == nil {
				v.Items = []string{}
			}
			variants[i] = v
		}
		rec.Variants = variants
	}
	return rec
}

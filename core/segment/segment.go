// Package segment splits free menu text into bracket-delimited variant groups.
//
// Grammar, scanned left to right:
//
//	text    = [ lead ] { marker content }
//	marker  = "[" label "]"      label is one or more runes, none of them "[" or "]"
//	content = { rune other than "[" }
//
// Text before the first marker is dropped. A "[" that does not open a valid
// marker still ends the running content; scanning resumes after it.
package segment

import (
	"strings"

	"github.com/gaurav-prasanna/hyeat/core"
)

// SoldOut is the portal's sold-out badge, stripped before segmentation.
const SoldOut = "★품절"

// Segment is one marker and the raw content that follows it.
type Segment struct {
	Marker  string // including the brackets
	Content string
}

// Clean removes the sold-out badge and surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, SoldOut, ""))
}

// Split returns every (marker, content) pair in text, in order.
// It returns nil when text holds no marker.
func Split(text string) []Segment {
	var segs []Segment
	i := 0
	for i < len(text) {
		open := strings.IndexByte(text[i:], '[')
		if open < 0 {
			break
		}
		open += i
		end, ok := markerEnd(text, open)
		if !ok {
			i = open + 1
			continue
		}
		next := strings.IndexByte(text[end:], '[')
		if next < 0 {
			next = len(text)
		} else {
			next += end
		}
		segs = append(segs, Segment{Marker: text[open:end], Content: text[end:next]})
		i = next
	}
	return segs
}

// markerEnd returns the index just past the "]" closing the marker opened at
// text[open], or false if the run is empty, unclosed, or nested.
func markerEnd(text string, open int) (int, bool) {
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case '[':
			return 0, false
		case ']':
			if j == open+1 {
				return 0, false
			}
			return j + 1, true
		}
	}
	return 0, false
}

// Tokens splits on commas and runs of whitespace.
func Tokens(text string) []string {
	tokens := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Variant turns a segment into a variant named marker+first token.
// An empty content yields the bare marker as the name.
func (s Segment) Variant() core.Variant {
	tokens := Tokens(s.Content)
	if len(tokens) == 0 {
		return core.Variant{MainMenuName: s.Marker, Items: []string{}}
	}
	return core.Variant{MainMenuName: s.Marker + tokens[0], Items: tokens[1:]}
}

// Variants segments cleaned text and converts every segment to a variant.
func Variants(text string) []core.Variant {
	segs := Split(Clean(text))
	if len(segs) == 0 {
		return nil
	}
	out := make([]core.Variant, 0, len(segs))
	for _, s := range segs {
		out = append(out, s.Variant())
	}
	return out
}

// Whole treats the entire cleaned text as one unlabeled variant. It is the
// fallback for text without markers; ok is false when nothing is left.
func Whole(text string) (core.Variant, bool) {
	tokens := Tokens(Clean(text))
	if len(tokens) == 0 {
		return core.Variant{}, false
	}
	return core.Variant{MainMenuName: tokens[0], Items: tokens[1:]}, true
}

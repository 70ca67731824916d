// Package normalize turns one raw menu fragment into a canonical core.Record,
// applying the per-restaurant and per-corner shaping rules.
package normalize

import (
	"strings"

	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/catalog"
	"github.com/gaurav-prasanna/hyeat/core/segment"
)

const (
	// BreakfastName is the fixed main menu name of the breakfast corner.
	BreakfastName = "천원의 아침밥"
	// BreakfastChoice is the single placeholder item of the breakfast corner.
	BreakfastChoice = "A/B 메뉴 중 선택"
	// NotOperating replaces the main menu name of an empty description.
	NotOperating = "운영없음"
)

// Fragment is one menu item as read from markup.
type Fragment struct {
	Category    string // corner label, kept verbatim as the display name
	Description string
	Title       string // empty when the markup has no separate title element
}

// Normalizer shapes fragments into records. It holds no state besides the catalog.
type Normalizer struct {
	catalog *catalog.Catalog
}

// New creates a Normalizer backed by cat.
func New(cat *catalog.Catalog) *Normalizer {
	return &Normalizer{catalog: cat}
}

// Normalize shapes f into a record of restaurant. ok is false when the
// category does not resolve to a known corner; such fragments are dropped.
func (n *Normalizer) Normalize(restaurant core.RestaurantID, f Fragment) (core.Record, bool) {
	corner := n.catalog.ResolveCorner(f.Category, restaurant)
	if corner == core.CornerUnknown {
		return core.Record{}, false
	}

	rec := core.Record{
		RestaurantID:      restaurant,
		CornerID:          corner,
		CornerDisplayName: f.Category,
	}

	desc := strings.TrimSpace(f.Description)
	title := strings.TrimSpace(f.Title)

	switch {
	case corner == core.CornerRamen:
		// Option notes in parentheses must stay in one piece.
		rec.MainMenuName = desc
		rec.Items = []string{}
		if desc == "" {
			rec.MainMenuName = NotOperating
		}
	case corner == core.CornerBreakfast:
		rec.MainMenuName = BreakfastName
		rec.Items = []string{BreakfastChoice}
		rec.Variants = BreakfastVariants(title, desc)
	case title != "":
		rec.MainMenuName = title
		rec.Items = segment.Tokens(desc)
	default:
		tokens := segment.Tokens(desc)
		if len(tokens) == 0 {
			rec.MainMenuName = NotOperating
			rec.Items = []string{}
			break
		}
		rec.MainMenuName = tokens[0]
		rec.Items = tokens[1:]
	}

	if corner == core.CornerBreakfast {
		rec.PriceWon = catalog.BreakfastPrice
	} else {
		rec.PriceWon = n.catalog.PriceFor(restaurant, corner)
	}
	return rec, true
}

// BreakfastVariants segments the joined title and description. Text without
// markers collapses into a single variant so nothing is silently lost.
func BreakfastVariants(title, desc string) []core.Variant {
	text := strings.TrimSpace(title + " " + desc)
	if variants := segment.Variants(text); len(variants) > 0 {
		return variants
	}
	if v, ok := segment.Whole(text); ok {
		return []core.Variant{v}
	}
	return nil
}

// BreakfastRecord returns a breakfast record for restaurant carrying only defaults.
func BreakfastRecord(restaurant core.RestaurantID) core.Record {
	return core.Record{
		RestaurantID:      restaurant,
		CornerID:          core.CornerBreakfast,
		CornerDisplayName: BreakfastName,
		MainMenuName:      BreakfastName,
		PriceWon:          catalog.BreakfastPrice,
		Items:             []string{BreakfastChoice},
	}
}

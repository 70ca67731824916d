package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/hyeat/core"
)

const dateLayout = "2006-01-02"

var anchorRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// dayOffsets maps a weekday label to its distance from Monday.
var dayOffsets = map[string]int{"월": 0, "화": 1, "수": 2, "목": 3, "금": 4, "토": 5, "일": 6}

// Weekly extracts the weekly grid into a new DailyMenuSet holding the seven
// dates of the anchor week. A missing anchor date is fatal; everything else
// is skipped unit by unit.
func (e *Extractor) Weekly(markup string) (*core.DailyMenuSet, error) {
	doc, err := parse(markup)
	if err != nil {
		return nil, err
	}

	base, err := anchorDate(doc)
	if err != nil {
		return nil, err
	}

	set := core.NewDailyMenuSet()
	for offset := 0; offset < 7; offset++ {
		set.AddDate(base.AddDate(0, 0, offset).Format(dateLayout))
	}

	doc.Find(selWeekContainer).Each(func(_ int, container *goquery.Selection) {
		viewID, _ := container.Attr("id")
		restaurant, ok := e.catalog.ResolveRestaurant(viewID)
		if !ok {
			e.logger.Debug("skipping weekly container", "view_id", viewID, "error", core.ErrUnknownMapping)
			e.metrics.Drop("unknown_restaurant")
			return
		}

		container.Find(selDaySection).Each(func(_ int, section *goquery.Selection) {
			e.weeklyDay(set, base, restaurant, section)
		})
	})

	return set, nil
}

func (e *Extractor) weeklyDay(set *core.DailyMenuSet, base time.Time, restaurant core.RestaurantID, section *goquery.Selection) {
	label := text(section.Find(selDayLabel).First())
	offset, ok := dayOffset(label)
	if !ok {
		e.logger.Warn("skipping day section",
			"restaurant", restaurant, "label", label, "error", fmt.Errorf("%w: bad day label", core.ErrShapeMismatch))
		e.metrics.Drop("shape")
		return
	}
	date := base.AddDate(0, 0, offset).Format(dateLayout)

	items := section.Find(selItem)
	if items.Length() == 0 || strings.Contains(section.Text(), noMenuText) {
		e.logger.Debug("no menu registered", "date", date, "restaurant", restaurant)
		return
	}

	items.Each(func(_ int, item *goquery.Selection) {
		frag, err := fragment(item)
		if err != nil {
			e.logger.Warn("skipping weekly item", "date", date, "restaurant", restaurant, "error", err)
			e.metrics.Drop("shape")
			return
		}
		rec, ok := e.norm.Normalize(restaurant, frag)
		if !ok {
			e.logger.Debug("skipping weekly item",
				"date", date, "restaurant", restaurant, "label", frag.Category, "error", core.ErrUnknownMapping)
			e.metrics.Drop("unknown_corner")
			return
		}
		set.Put(date, rec)
		e.metrics.Record("weekly")
	})
}

// anchorDate reads the Monday of the week from the first-day marker.
func anchorDate(doc *goquery.Document) (time.Time, error) {
	anchor := doc.Find(selAnchor).First()
	if anchor.Length() == 0 {
		return time.Time{}, fmt.Errorf("%w: no %s element", core.ErrAnchorMissing, selAnchor)
	}
	raw := anchorRegex.FindString(anchor.Text())
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: no date in %q", core.ErrAnchorMissing, strings.TrimSpace(anchor.Text()))
	}
	base, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.Join(core.ErrAnchorMissing, err)
	}
	return base, nil
}

// dayOffset accepts short (월) and long (월요일) weekday labels.
func dayOffset(label string) (int, bool) {
	if offset, ok := dayOffsets[label]; ok {
		return offset, true
	}
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 || r == utf8.RuneError {
		return 0, false
	}
	offset, ok := dayOffsets[string(r)]
	return offset, ok
}

package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/normalize"
	"github.com/gaurav-prasanna/hyeat/core/segment"
)

// breakfastRestaurant owns the donation (breakfast) section of the daily view.
const breakfastRestaurant = core.RestaurantPlaza

// Daily overlays one date's detail view onto set. The general-corner and
// breakfast overlays run independently; the returned error joins whatever
// each of them skipped and is never fatal.
func (e *Extractor) Daily(set *core.DailyMenuSet, date, markup string) error {
	doc, err := parse(markup)
	if err != nil {
		return err
	}
	return errors.Join(
		e.GeneralOverlay(set, date, doc),
		e.BreakfastOverlay(set, date, doc),
	)
}

// GeneralOverlay applies the "today" slider of doc to every non-breakfast
// corner of date. Restaurants excluded by the catalog are left untouched.
func (e *Extractor) GeneralOverlay(set *core.DailyMenuSet, date string, doc *goquery.Document) error {
	slider := doc.Find(selSlider).First()
	if slider.Length() == 0 {
		e.metrics.Overlay("general", false)
		return fmt.Errorf("%s: %w: no %s section", date, core.ErrShapeMismatch, selSlider)
	}
	if label := text(slider.Find(selSliderDay).First()); !strings.Contains(label, date) {
		e.metrics.Overlay("general", false)
		return fmt.Errorf("%s: %w: slider shows %q", date, core.ErrDateMismatch, label)
	}

	slider.Find(selSlide).Each(func(_ int, slide *goquery.Selection) {
		viewID, _ := slide.Attr("id")
		restaurant, ok := e.catalog.ResolveRestaurant(viewID)
		if !ok {
			e.logger.Debug("skipping daily slide", "date", date, "view_id", viewID, "error", core.ErrUnknownMapping)
			e.metrics.Drop("unknown_restaurant")
			return
		}
		if e.catalog.DailyExcluded(restaurant) {
			return
		}
		slide.Find(selItem).Each(func(_ int, item *goquery.Selection) {
			e.dailyItem(set, date, restaurant, item)
		})
	})
	e.metrics.Overlay("general", true)
	return nil
}

func (e *Extractor) dailyItem(set *core.DailyMenuSet, date string, restaurant core.RestaurantID, item *goquery.Selection) {
	frag, err := fragment(item)
	if err != nil {
		e.logger.Warn("skipping daily item", "date", date, "restaurant", restaurant, "error", err)
		e.metrics.Drop("shape")
		return
	}

	switch e.catalog.ResolveCorner(frag.Category, restaurant) {
	case core.CornerBreakfast:
		// Owned by the breakfast overlay.
		return
	case core.CornerRamen:
		// The daily view splits "name(options)" across title and description.
		frag = normalize.Fragment{Category: frag.Category, Description: frag.Title + frag.Description}
	}

	rec, ok := e.norm.Normalize(restaurant, frag)
	if !ok {
		e.logger.Debug("skipping daily item",
			"date", date, "restaurant", restaurant, "label", frag.Category, "error", core.ErrUnknownMapping)
		e.metrics.Drop("unknown_corner")
		return
	}
	if existing, found := set.Get(date, restaurant, rec.CornerID); found {
		existing.Overlay(rec)
		rec = existing
	}
	set.Put(date, rec)
	e.metrics.Record("daily")
}

// BreakfastOverlay replaces the breakfast variants of date with the ones
// segmented from the donation section. Only marker-delimited text counts.
func (e *Extractor) BreakfastOverlay(set *core.DailyMenuSet, date string, doc *goquery.Document) error {
	item := doc.Find(selDonation).First().Find(selItem).First()
	if item.Length() == 0 {
		e.metrics.Overlay("breakfast", false)
		return fmt.Errorf("%s: %w: no %s item", date, core.ErrShapeMismatch, selDonation)
	}

	title := text(item.Find(selTitle).First())
	desc := text(item.Find(selDescription).First())
	variants := segment.Variants(title + " " + desc)
	if len(variants) == 0 {
		e.logger.Debug("no breakfast markers", "date", date, "label", strings.TrimSpace(title+" "+desc))
		e.metrics.Overlay("breakfast", false)
		return nil
	}

	rec, found := set.Get(date, breakfastRestaurant, core.CornerBreakfast)
	if !found {
		rec = normalize.BreakfastRecord(breakfastRestaurant)
	}
	rec.Variants = variants
	set.Put(date, rec)
	e.metrics.Record("breakfast")
	e.metrics.Overlay("breakfast", true)
	return nil
}

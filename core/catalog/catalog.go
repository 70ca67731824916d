// Package catalog holds the static lookup tables that turn portal identifiers
// and human labels into stable restaurant and corner IDs, plus the price table.
package catalog

import (
	"strings"

	"github.com/gaurav-prasanna/hyeat/core"
)

// BreakfastPrice is the fixed price of the subsidized breakfast corner.
const BreakfastPrice = 1000

// weekViewPrefix is rewritten to shopPrefix before restaurant lookup.
const (
	weekViewPrefix = "shop-week-"
	shopPrefix     = "shop-"
)

// Life-science labels combine a meal marker with a brand marker.
const (
	lunchMarker   = "중식"
	dinnerMarker  = "석식"
	damAMarker    = "Dam-A"
	pangeosMarker = "Pangeos"
)

var defaultRestaurants = map[string]core.RestaurantID{
	"shop-rR0K2hvyTkCLCDF129-HgQ": core.RestaurantPlaza,
	"shop-mHUPfUZ9QA2TzS4tlZNJQA": core.RestaurantMaterials,
	"shop-UdDNmWPQS-m_vkxcSWYnvw": core.RestaurantLifeScience,
}

var defaultCorners = map[string]core.CornerID{
	"천원의 아침밥": core.CornerBreakfast,
	"한식":      core.CornerKorean,
	"양식":      core.CornerWestern,
	"즉석":      core.CornerInstant,
	"오늘의 컵밥":  core.CornerCupbap,
	"오늘의 라면":  core.CornerRamen,
	"정식":      core.CornerSetMeal,
	"일품":      core.CornerSingleDish,
	"덮밥":      core.CornerRiceBowl,
	"석식":      core.CornerDinner,
}

var defaultPrices = map[core.RestaurantID]map[core.CornerID]int{
	core.RestaurantPlaza: {
		core.CornerWestern: 4200,
		core.CornerKorean:  4200,
		core.CornerInstant: 4500,
		core.CornerCupbap:  4500,
		core.CornerRamen:   3500,
	},
	core.RestaurantMaterials: {
		core.CornerSetMeal:    6000,
		core.CornerSingleDish: 6500,
		core.CornerDinner:     6000,
		core.CornerRiceBowl:   4700,
	},
	core.RestaurantLifeScience: {
		core.CornerPangeosLunch: 6500,
		core.CornerDamALunch:    6000,
		core.CornerDamADinner:   6000,
	},
}

// Catalog is read-only after construction.
type Catalog struct {
	restaurants  map[string]core.RestaurantID
	corners      map[string]core.CornerID
	prices       map[core.RestaurantID]map[core.CornerID]int
	dailyExclude map[core.RestaurantID]bool
}

// Option customizes a Catalog at construction time.
type Option func(*Catalog)

// WithDailyExclude replaces the set of restaurants whose records the daily
// overlay must not touch.
func WithDailyExclude(ids ...core.RestaurantID) Option {
	return func(c *Catalog) {
		c.dailyExclude = make(map[core.RestaurantID]bool, len(ids))
		for _, id := range ids {
			c.dailyExclude[id] = true
		}
	}
}

// WithPrices replaces the price table.
func WithPrices(prices map[core.RestaurantID]map[core.CornerID]int) Option {
	return func(c *Catalog) { c.prices = prices }
}

// New creates a Catalog with the portal tables. By default the daily overlay
// skips materials and life_science: their daily markup merges items together.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		restaurants: defaultRestaurants,
		corners:     defaultCorners,
		prices:      defaultPrices,
		dailyExclude: map[core.RestaurantID]bool{
			core.RestaurantMaterials:   true,
			core.RestaurantLifeScience: true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveRestaurant maps a view identifier to a restaurant.
// Weekly container IDs (shop-week-X) are rewritten to slide IDs (shop-X) first.
func (c *Catalog) ResolveRestaurant(viewID string) (core.RestaurantID, bool) {
	id, ok := c.restaurants[ShopID(viewID)]
	return id, ok
}

// ShopID rewrites a weekly container ID into the slide ID key space.
func ShopID(viewID string) string {
	if strings.HasPrefix(viewID, weekViewPrefix) {
		return shopPrefix + strings.TrimPrefix(viewID, weekViewPrefix)
	}
	return viewID
}

// ResolveCorner maps a category label to a corner of restaurant.
// It returns core.CornerUnknown when nothing matches.
func (c *Catalog) ResolveCorner(label string, restaurant core.RestaurantID) core.CornerID {
	if restaurant == core.RestaurantLifeScience {
		return lifeScienceCorner(label)
	}
	if id, ok := c.corners[label]; ok {
		return id
	}
	return core.CornerUnknown
}

func lifeScienceCorner(label string) core.CornerID {
	lunch := strings.Contains(label, lunchMarker)
	switch {
	case lunch && strings.Contains(label, damAMarker):
		return core.CornerDamALunch
	case lunch && strings.Contains(label, pangeosMarker):
		return core.CornerPangeosLunch
	case strings.Contains(label, dinnerMarker) && strings.Contains(label, damAMarker):
		return core.CornerDamADinner
	default:
		return core.CornerUnknown
	}
}

// PriceFor returns the listed price, or 0 when the pair is not listed.
// Callers price the breakfast corner with BreakfastPrice instead.
func (c *Catalog) PriceFor(restaurant core.RestaurantID, corner core.CornerID) int {
	return c.prices[restaurant][corner]
}

// DailyExcluded reports whether the daily overlay must leave restaurant alone.
func (c *Catalog) DailyExcluded(restaurant core.RestaurantID) bool {
	return c.dailyExclude[restaurant]
}

// ParseRestaurantID validates a configured restaurant name.
func ParseRestaurantID(s string) (core.RestaurantID, bool) {
	for _, id := range core.Restaurants {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

package core

import "sort"

// RestaurantID identifies a campus restaurant independently of the view it was read from.
type RestaurantID string

const (
	RestaurantPlaza       RestaurantID = "hanyang_plaza"
	RestaurantMaterials   RestaurantID = "materials"
	RestaurantLifeScience RestaurantID = "life_science"
)

// Restaurants lists every known restaurant in display order.
var Restaurants = []RestaurantID{RestaurantPlaza, RestaurantMaterials, RestaurantLifeScience}

// CornerID identifies a meal station inside a restaurant.
type CornerID string

const (
	CornerBreakfast    CornerID = "breakfast_1000"
	CornerKorean       CornerID = "korean"
	CornerWestern      CornerID = "western"
	CornerInstant      CornerID = "instant"
	CornerCupbap       CornerID = "cupbap"
	CornerRamen        CornerID = "ramen"
	CornerSetMeal      CornerID = "set_meal"
	CornerSingleDish   CornerID = "single_dish"
	CornerRiceBowl     CornerID = "rice_bowl"
	CornerDinner       CornerID = "dinner"
	CornerDamALunch    CornerID = "dam_a_lunch"
	CornerPangeosLunch CornerID = "pangeos_lunch"
	CornerDamADinner   CornerID = "dam_a_dinner"

	// CornerUnknown marks a label that did not resolve. It is never stored.
	CornerUnknown CornerID = "unknown"
)

// Corners lists every storable corner in display order.
var Corners = []CornerID{
	CornerBreakfast, CornerKorean, CornerWestern, CornerInstant, CornerCupbap, CornerRamen,
	CornerSetMeal, CornerSingleDish, CornerRiceBowl, CornerDinner,
	CornerDamALunch, CornerPangeosLunch, CornerDamADinner,
}

// Variant is one selectable sub-menu of a multi-choice corner.
type Variant struct {
	MainMenuName string   `json:"mainMenuName"`
	Items        []string `json:"items"`
}

// Record is the canonical menu entry for one corner of one restaurant on one date.
type Record struct {
	RestaurantID      RestaurantID `json:"restaurantId"`
	CornerID          CornerID     `json:"cornerId"`
	CornerDisplayName string       `json:"cornerDisplayName"`
	MainMenuName      string       `json:"mainMenuName"`
	PriceWon          int          `json:"priceWon"`
	Items             []string     `json:"items"`
	Variants          []Variant    `json:"variants,omitempty"`
}

// Overlay merges a more authoritative reading of the same corner into r.
// Identity, display name, main menu and items are replaced; the price is
// only filled when r has none; variants are left alone.
func (r *Record) Overlay(src Record) {
	r.RestaurantID = src.RestaurantID
	r.CornerID = src.CornerID
	r.CornerDisplayName = src.CornerDisplayName
	r.MainMenuName = src.MainMenuName
	r.Items = src.Items
	if r.PriceWon == 0 {
		r.PriceWon = src.PriceWon
	}
}

// DayMenu maps restaurant → corner → record for a single date.
type DayMenu map[RestaurantID]map[CornerID]Record

// Get returns the record stored for (restaurant, corner), if any.
func (d DayMenu) Get(restaurant RestaurantID, corner CornerID) (Record, bool) {
	rec, ok := d[restaurant][corner]
	return rec, ok
}

// DailyMenuSet accumulates records per ISO date for one run.
// It is owned by a single run and is not safe for concurrent use.
type DailyMenuSet struct {
	days map[string]DayMenu
}

// NewDailyMenuSet creates an empty set.
func NewDailyMenuSet() *DailyMenuSet {
	return &DailyMenuSet{days: make(map[string]DayMenu)}
}

// AddDate registers a date with no records yet. Existing data is kept.
func (s *DailyMenuSet) AddDate(date string) {
	if _, ok := s.days[date]; !ok {
		s.days[date] = make(DayMenu)
	}
}

// Put stores rec under date, replacing any record with the same
// (restaurant, corner) key.
func (s *DailyMenuSet) Put(date string, rec Record) {
	s.AddDate(date)
	day := s.days[date]
	if day[rec.RestaurantID] == nil {
		day[rec.RestaurantID] = make(map[CornerID]Record)
	}
	day[rec.RestaurantID][rec.CornerID] = rec
}

// Get returns the record stored for (date, restaurant, corner), if any.
func (s *DailyMenuSet) Get(date string, restaurant RestaurantID, corner CornerID) (Record, bool) {
	return s.days[date].Get(restaurant, corner)
}

// Day returns the menu for date, or nil if the date is not present.
func (s *DailyMenuSet) Day(date string) DayMenu {
	return s.days[date]
}

// Dates returns every registered date in ascending order.
func (s *DailyMenuSet) Dates() []string {
	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	// ISO dates sort chronologically as strings.
	sort.Strings(dates)
	return dates
}

// Len returns the number of stored records across all dates.
func (s *DailyMenuSet) Len() int {
	n := 0
	for _, day := range s.days {
		for _, corners := range day {
			n += len(corners)
		}
	}
	return n
}

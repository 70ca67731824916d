package extract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/render"
)

func sampleWeek() string {
	return weeklyPage("2024-05-20",
		weekContainer(plazaID,
			daySection("월",
				menuItem{category: "한식", desc: "제육볶음 김치 계란국"},
				menuItem{category: "천원의 아침밥", desc: "[A]x y [B]z"},
				menuItem{category: "분식", desc: "떡볶이"},
			),
			daySection("화", menuItem{category: "양식", desc: "돈까스 샐러드"}),
			daySection("토"),
		),
		weekContainer(materialsID,
			daySection("월", menuItem{category: "정식", desc: "불고기 잡채"}),
		),
		weekContainer(lifeScienceID,
			daySection("수요일",
				menuItem{category: "중식 Dam-A", desc: "비빔밥 된장국"},
				menuItem{category: "간식", desc: "빵"},
			),
		),
		weekContainer("not-a-shop",
			daySection("월", menuItem{category: "한식", desc: "유령메뉴"}),
		),
	)
}

func TestWeeklyScenario(t *testing.T) {
	e := New(Config{})

	set, err := e.Weekly(sampleWeek())
	if err != nil {
		t.Fatal(err)
	}

	rec, ok := set.Get("2024-05-20", core.RestaurantPlaza, core.CornerKorean)
	if !ok {
		t.Fatal("expected plaza korean on Monday")
	}
	want := core.Record{
		RestaurantID:      core.RestaurantPlaza,
		CornerID:          core.CornerKorean,
		CornerDisplayName: "한식",
		MainMenuName:      "제육볶음",
		PriceWon:          4200,
		Items:             []string{"김치", "계란국"},
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("got %+v, want %+v", rec, want)
	}

	breakfast, ok := set.Get("2024-05-20", core.RestaurantPlaza, core.CornerBreakfast)
	if !ok || len(breakfast.Variants) != 2 || breakfast.PriceWon != 1000 {
		t.Errorf("unexpected breakfast %+v", breakfast)
	}

	if _, ok := set.Get("2024-05-21", core.RestaurantPlaza, core.CornerWestern); !ok {
		t.Error("expected plaza western on Tuesday")
	}
	if _, ok := set.Get("2024-05-20", core.RestaurantMaterials, core.CornerSetMeal); !ok {
		t.Error("expected materials set meal on Monday")
	}
	if _, ok := set.Get("2024-05-22", core.RestaurantLifeScience, core.CornerDamALunch); !ok {
		t.Error("expected life science Dam-A lunch on Wednesday")
	}
}

func TestWeeklyCoversAnchorWeek(t *testing.T) {
	set, err := New(Config{}).Weekly(sampleWeek())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"2024-05-20", "2024-05-21", "2024-05-22", "2024-05-23",
		"2024-05-24", "2024-05-25", "2024-05-26",
	}
	if got := set.Dates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Dates = %v, want %v", got, want)
	}
}

func TestWeeklyNoMenuLeavesPairAbsent(t *testing.T) {
	set, err := New(Config{}).Weekly(sampleWeek())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set.Day("2024-05-25")[core.RestaurantPlaza]; ok {
		t.Error("Saturday without menu should have no plaza entry")
	}

	// The marker text wins even when items are present.
	page := weeklyPage("2024-05-20", weekContainer(plazaID,
		`<div class="day-container"><div class="day"><span>월</span></div>`+
			menuItem{category: "한식", desc: "등록된 메뉴가 없습니다"}.html()+`</div>`))
	set, err = New(Config{}).Weekly(page)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Day("2024-05-20")) != 0 {
		t.Errorf("expected no records, got %+v", set.Day("2024-05-20"))
	}
}

func TestWeeklyDropsUnknown(t *testing.T) {
	set, err := New(Config{}).Weekly(sampleWeek())
	if err != nil {
		t.Fatal(err)
	}
	for _, date := range set.Dates() {
		for restaurant, corners := range set.Day(date) {
			if restaurant != core.RestaurantPlaza && restaurant != core.RestaurantMaterials &&
				restaurant != core.RestaurantLifeScience {
				t.Errorf("%s: unexpected restaurant %q", date, restaurant)
			}
			if _, ok := corners[core.CornerUnknown]; ok {
				t.Errorf("%s/%s: unknown corner stored", date, restaurant)
			}
		}
	}
	if set.Len() != 5 {
		t.Errorf("Len = %d, want 5", set.Len())
	}
}

func TestWeeklyIdempotent(t *testing.T) {
	r := render.NewJSONRenderer()
	page := sampleWeek()

	first, err := New(Config{}).Weekly(page)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(Config{}).Weekly(page)
	if err != nil {
		t.Fatal(err)
	}
	for _, date := range first.Dates() {
		a, err := r.Render(date, first.Day(date))
		if err != nil {
			t.Fatal(err)
		}
		b, err := r.Render(date, second.Day(date))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("%s: outputs differ\n%s\n%s", date, a, b)
		}
	}
}

func TestWeeklyAnchorMissing(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"no element", `<html><body><div class="shop-week-container"></div></body></html>`},
		{"no date", `<html><body><div class="first-day"><p>이번 주</p></div></body></html>`},
		{"bad date", `<html><body><div class="first-day"><p>2024-13-45</p></div></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Config{}).Weekly(tt.page)
			if !errors.Is(err, core.ErrAnchorMissing) {
				t.Errorf("err = %v, want ErrAnchorMissing", err)
			}
		})
	}
}

func TestWeeklySkipsMalformedItems(t *testing.T) {
	page := weeklyPage("2024-05-20", weekContainer(plazaID,
		`<div class="day-container"><div class="day"><span>월</span></div>`+
			`<div class="content-item"><span class="category">한식</span></div>`+
			menuItem{category: "양식", desc: "파스타"}.html()+`</div>`,
		daySection("??", menuItem{category: "한식", desc: "김밥"}),
	))

	set, err := New(Config{}).Weekly(page)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set.Get("2024-05-20", core.RestaurantPlaza, core.CornerKorean); ok {
		t.Error("item without description should be skipped")
	}
	if _, ok := set.Get("2024-05-20", core.RestaurantPlaza, core.CornerWestern); !ok {
		t.Error("sibling item should survive")
	}
	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
}

func TestDayOffset(t *testing.T) {
	tests := []struct {
		label  string
		offset int
		ok     bool
	}{
		{"월", 0, true},
		{"일", 6, true},
		{"금요일", 4, true},
		{"", 0, false},
		{"Mon", 0, false},
	}
	for _, tt := range tests {
		offset, ok := dayOffset(tt.label)
		if offset != tt.offset || ok != tt.ok {
			t.Errorf("dayOffset(%q) = %d, %v; want %d, %v", tt.label, offset, ok, tt.offset, tt.ok)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"br separates lines", `<p> [A]쌀밥<br>국 <b>김치</b> </p>`, "[A]쌀밥 국 김치"},
		{"inline markup joins", `<p>제육<b>볶음</b> 김치</p>`, "제육볶음 김치"},
		{"nested blocks", `<p><span>불고기</span><div>된장국</div></p>`, "불고기 된장국"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parse(`<div id="root">` + tt.markup + `</div>`)
			if err != nil {
				t.Fatal(err)
			}
			if got := text(doc.Find("#root")); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

package segment

import (
	"reflect"
	"testing"

	"github.com/gaurav-prasanna/hyeat/core"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Segment
	}{
		{"none", "kimchi rice soup", nil},
		{"empty", "", nil},
		{"two markers", "[A]x y [B]z", []Segment{{"[A]", "x y "}, {"[B]", "z"}}},
		{"lead dropped", "intro [A]x", []Segment{{"[A]", "x"}}},
		{"empty content", "[A][B]z", []Segment{{"[A]", ""}, {"[B]", "z"}}},
		{"empty marker skipped", "[]x [A]y", []Segment{{"[A]", "y"}}},
		{"nested rejected", "[a[b]c", []Segment{{"[b]", "c"}}},
		{"unclosed", "[A]x [oops", []Segment{{"[A]", "x "}}},
		{"korean", "[백반식 130식]쌀밥 된장국", []Segment{{"[백반식 130식]", "쌀밥 된장국"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestVariants(t *testing.T) {
	got := Variants("[A]x y [B]z")
	want := []core.Variant{
		{MainMenuName: "[A]x", Items: []string{"y"}},
		{MainMenuName: "[B]z", Items: []string{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Variants = %#v, want %#v", got, want)
	}

	got = Variants("★품절 [백반식 130식] 쌀밥, 된장국  김치 [간편식 50식]")
	want = []core.Variant{
		{MainMenuName: "[백반식 130식]쌀밥", Items: []string{"된장국", "김치"}},
		{MainMenuName: "[간편식 50식]", Items: []string{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Variants with badge = %#v, want %#v", got, want)
	}

	if got := Variants("no markers here"); got != nil {
		t.Fatalf("expected nil for text without markers, got %#v", got)
	}
}

func TestWhole(t *testing.T) {
	v, ok := Whole("kimchi rice soup")
	if !ok {
		t.Fatal("expected a variant")
	}
	want := core.Variant{MainMenuName: "kimchi", Items: []string{"rice", "soup"}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Whole = %#v, want %#v", v, want)
	}

	if _, ok := Whole("  ★품절 "); ok {
		t.Error("expected no variant from badge-only text")
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("제육볶음,김치  계란국\n, ")
	want := []string{"제육볶음", "김치", "계란국"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %q, want %q", got, want)
	}
	if got := Tokens(""); got == nil || len(got) != 0 {
		t.Errorf("Tokens(\"\") = %#v, want empty non-nil", got)
	}
}

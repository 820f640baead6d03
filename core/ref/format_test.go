package ref

import (
	"testing"

	"github.com/viaifoundation/firstlight/core/errors"
)

func TestFormatChapters(t *testing.T) {
	tests := []struct {
		name     string
		chapters []string
		locale   Locale
		want     string
	}{
		{
			name:     "range and singleton english",
			chapters: []string{"1:1", "1:2", "1:3", "1:5"},
			locale:   English,
			want:     "Genesis 1-3; Genesis 5",
		},
		{
			name:     "range and singleton simplified",
			chapters: []string{"1:1", "1:2", "1:3", "1:5"},
			locale:   SimplifiedChinese,
			want:     "创世记1-3；创世记5",
		},
		{
			name:     "traditional chinese",
			chapters: []string{"19:119"},
			locale:   TraditionalChinese,
			want:     "詩篇119",
		},
		{
			name:     "book boundary breaks run",
			chapters: []string{"1:1", "1:2", "2:3", "2:4"},
			locale:   English,
			want:     "Genesis 1-2; Exodus 3-4",
		},
		{
			name:     "same book reappearing starts new group",
			chapters: []string{"1:1", "2:1", "1:2"},
			locale:   English,
			want:     "Genesis 1; Exodus 1; Genesis 2",
		},
		{
			name:     "two chapter run",
			chapters: []string{"43:3", "43:4"},
			locale:   English,
			want:     "John 3-4",
		},
		{
			name:     "out of range book renders number",
			chapters: []string{"99:2"},
			locale:   English,
			want:     "99 2",
		},
		{
			name:     "malformed entries skipped",
			chapters: []string{"1:1", "bogus", "1:2"},
			locale:   English,
			want:     "Genesis 1-2",
		},
		{
			name:     "empty",
			chapters: nil,
			locale:   English,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatChapters(tt.chapters, tt.locale)
			if err != nil {
				t.Fatalf("FormatChapters: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatChapters(%v, %s) = %q, want %q", tt.chapters, tt.locale, got, tt.want)
			}
		})
	}
}

func TestFormatChaptersUnknownLocale(t *testing.T) {
	_, err := FormatChapters([]string{"1:1"}, Locale("fr"))
	if err == nil {
		t.Fatal("expected error for unknown locale")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("error %v does not unwrap to ErrInvalidInput", err)
	}
	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error %v is not a ValidationError", err)
	}
}

func TestBookName(t *testing.T) {
	if name, err := BookName(1, SimplifiedChinese); err != nil || name != "创世记" {
		t.Errorf("BookName(1, zh_cn) = %q, %v", name, err)
	}
	if name, err := BookName(66, English); err != nil || name != "Revelation" {
		t.Errorf("BookName(66, en) = %q, %v", name, err)
	}
	if name, err := BookName(99, English); err != nil || name != "99" {
		t.Errorf("BookName(99, en) = %q, %v", name, err)
	}
	if _, err := BookName(1, Locale("de")); err == nil {
		t.Error("expected error for unknown locale")
	}
}

// Rendering a canonical list with the English formatter and re-normalizing
// it must reproduce the list exactly.
func TestRoundTrip(t *testing.T) {
	lists := [][]string{
		{"1:1", "1:2", "1:3", "2:4", "2:5", "2:6"},
		{"19:119"},
		{"65:1"},
		{"1:1", "1:3", "1:5"},
		{"9:1", "10:1", "62:3", "43:3"},
		{"40:28", "41:1", "41:2", "41:3", "40:1"},
		{"22:1", "22:2", "25:3"},
		{"36:1", "38:2", "38:3"},
	}
	for _, list := range lists {
		rendered, err := FormatChapters(list, English)
		if err != nil {
			t.Fatalf("FormatChapters(%v): %v", list, err)
		}
		back := NormalizeDayText(rendered)
		if len(back) != len(list) {
			t.Fatalf("round trip of %v via %q = %v", list, rendered, back)
		}
		for i := range list {
			if back[i] != list[i] {
				t.Fatalf("round trip of %v via %q = %v", list, rendered, back)
			}
		}
	}
}

func TestScenarioRoundTrip(t *testing.T) {
	chapters := NormalizeDayText("Genesis 1-3; Exodus 4-6")
	want := []string{"1:1", "1:2", "1:3", "2:4", "2:5", "2:6"}
	if len(chapters) != len(want) {
		t.Fatalf("NormalizeDayText = %v", chapters)
	}
	for i := range want {
		if chapters[i] != want[i] {
			t.Fatalf("NormalizeDayText = %v", chapters)
		}
	}
	out, err := FormatChapters(chapters, English)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Genesis 1-3; Exodus 4-6" {
		t.Errorf("FormatChapters = %q", out)
	}
}

package main

import (
	"testing"

	"github.com/viaifoundation/firstlight/core/errors"
)

func TestParseBookRange(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		wantErr    bool
	}{
		{"all", 1, 66, false},
		{"", 1, 66, false},
		{"19", 19, 19, false},
		{"1-5", 1, 5, false},
		{" 40 - 66 ", 40, 66, false},
		{"0", 0, 0, true},
		{"5-2", 0, 0, true},
		{"1-99", 0, 0, true},
		{"genesis", 0, 0, true},
	}
	for _, tt := range tests {
		start, end, err := parseBookRange(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("parseBookRange(%q) err = %v, want ErrInvalidInput", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseBookRange(%q): %v", tt.in, err)
			continue
		}
		if start != tt.start || end != tt.end {
			t.Errorf("parseBookRange(%q) = %d-%d, want %d-%d", tt.in, start, end, tt.start, tt.end)
		}
	}
}

func TestDayFileName(t *testing.T) {
	tests := []struct {
		plan string
		day  int
		want string
	}{
		{"chronological-1year", 12, "历史读经第12天"},
		{"chronological-90days", 1, "90天历史读经第1天"},
		{"classic-1year", 7, "读经第7天"},
	}
	for _, tt := range tests {
		if got := dayFileName(tt.plan, tt.day); got != tt.want {
			t.Errorf("dayFileName(%s, %d) = %s, want %s", tt.plan, tt.day, got, tt.want)
		}
	}
}

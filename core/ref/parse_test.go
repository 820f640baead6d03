package ref

import (
	"reflect"
	"testing"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name   string
		clause string
		want   []Chapter
	}{
		{
			name:   "single chapter",
			clause: "Genesis 1",
			want:   []Chapter{{1, 1}},
		},
		{
			name:   "chapter range",
			clause: "Genesis 1-3",
			want:   []Chapter{{1, 1}, {1, 2}, {1, 3}},
		},
		{
			name:   "en dash range",
			clause: "Genesis 1–3",
			want:   []Chapter{{1, 1}, {1, 2}, {1, 3}},
		},
		{
			name:   "spaced range",
			clause: "Genesis 1 - 3",
			want:   []Chapter{{1, 1}, {1, 2}, {1, 3}},
		},
		{
			name:   "verse range collapses to chapter",
			clause: "Psalm 119:1-88",
			want:   []Chapter{{19, 119}},
		},
		{
			name:   "single verse collapses to chapter",
			clause: "John 3:16",
			want:   []Chapter{{43, 3}},
		},
		{
			name:   "chapter range with verse suffix",
			clause: "Exodus 4-6:12",
			want:   []Chapter{{2, 4}, {2, 5}, {2, 6}},
		},
		{
			name:   "whole book",
			clause: "Jude",
			want:   []Chapter{{65, 1}},
		},
		{
			name:   "comma separated",
			clause: "Genesis 1, Exodus 2",
			want:   []Chapter{{1, 1}, {2, 2}},
		},
		{
			name:   "and separated",
			clause: "Exod 4:1-10 and Ps 119",
			want:   []Chapter{{2, 4}, {19, 119}},
		},
		{
			name:   "mixed separators",
			clause: "Genesis 1-3; Exod 4:1-10 and Ps 119",
			want:   []Chapter{{1, 1}, {1, 2}, {1, 3}, {2, 4}, {19, 119}},
		},
		{
			name:   "unrecognized book dropped",
			clause: "Frobnicate 9",
			want:   nil,
		},
		{
			name:   "unrecognized clause among valid ones",
			clause: "Genesis 1, Frobnicate 9, Exodus 2",
			want:   []Chapter{{1, 1}, {2, 2}},
		},
		{
			name:   "malformed span dropped",
			clause: "Genesis :5",
			want:   nil,
		},
		{
			name:   "trailing noise ignored",
			clause: "Genesis 3 see notes",
			want:   []Chapter{{1, 3}},
		},
		{
			name:   "dangling dash",
			clause: "Genesis 2-",
			want:   []Chapter{{1, 2}},
		},
		{
			name:   "space-separated trailing number ignored",
			clause: "Genesis 1 2",
			want:   []Chapter{{1, 1}},
		},
		{
			name:   "range with trailing number keeps the range",
			clause: "Exodus 1-3 5",
			want:   []Chapter{{2, 1}, {2, 2}, {2, 3}},
		},
		{
			name:   "verse span with trailing number",
			clause: "Psalm 119:1-88 90",
			want:   []Chapter{{19, 119}},
		},
		{
			name:   "inverted range emits nothing",
			clause: "Genesis 5-3",
			want:   nil,
		},
		{
			name:   "duplicates preserved at this layer",
			clause: "Genesis 1, Genesis 1",
			want:   []Chapter{{1, 1}, {1, 1}},
		},
		{
			name:   "empty",
			clause: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReference(tt.clause)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseReference(%q) = %v, want %v", tt.clause, got, tt.want)
			}
		})
	}
}

func TestParseChapter(t *testing.T) {
	ch, err := ParseChapter("19:119")
	if err != nil {
		t.Fatalf("ParseChapter: %v", err)
	}
	if ch != (Chapter{19, 119}) {
		t.Errorf("ParseChapter = %v", ch)
	}
	if ch.String() != "19:119" {
		t.Errorf("String = %q", ch.String())
	}

	for _, bad := range []string{"", "19", "a:1", "1:b"} {
		if _, err := ParseChapter(bad); err == nil {
			t.Errorf("ParseChapter(%q) expected error", bad)
		}
	}
}

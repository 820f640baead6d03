package ref

import (
	"strconv"
	"strings"

	"github.com/viaifoundation/firstlight/core/errors"
)

// localeFormat holds the rendering conventions of one display locale.
type localeFormat struct {
	outer       string // between citation groups
	inner       string // between chapter numbers in a non-contiguous group
	spaceBefore bool   // space between book name and chapter number
}

var localeFormats = map[Locale]localeFormat{
	English:            {outer: "; ", inner: ", ", spaceBefore: true},
	SimplifiedChinese:  {outer: "；", inner: "、", spaceBefore: false},
	TraditionalChinese: {outer: "；", inner: "、", spaceBefore: false},
}

// FormatChapters renders an ordered, deduplicated list of interchange
// strings as a localized citation string, run-length compressing
// consecutive same-book chapters into ranges ("Genesis 1-3; Genesis 5").
//
// The input is assumed to be canonical: already deduplicated and in
// display order. Entries that are not valid interchange strings are
// skipped. A requested locale with no table is a contract violation and
// fails with a ValidationError rather than defaulting.
func FormatChapters(chapters []string, loc Locale) (string, error) {
	names, ok := displayNames(loc)
	if !ok {
		return "", &errors.ValidationError{
			Field:   "locale",
			Value:   string(loc),
			Message: "no display-name table for locale",
		}
	}
	format := localeFormats[loc]

	refs := make([]Chapter, 0, len(chapters))
	for _, s := range chapters {
		ch, err := ParseChapter(s)
		if err != nil {
			continue
		}
		refs = append(refs, ch)
	}

	sp := ""
	if format.spaceBefore {
		sp = " "
	}

	var parts []string
	for i := 0; i < len(refs); {
		book := refs[i].Book
		nums := []int{refs[i].Number}
		j := i + 1
		for j < len(refs) && refs[j].Book == book && refs[j].Number == nums[len(nums)-1]+1 {
			nums = append(nums, refs[j].Number)
			j++
		}
		i = j

		name := strconv.Itoa(book)
		if book >= 1 && book <= bookCount {
			name = names[book]
		}

		switch {
		case len(nums) == 1:
			parts = append(parts, name+sp+strconv.Itoa(nums[0]))
		case contiguous(nums):
			parts = append(parts, name+sp+strconv.Itoa(nums[0])+"-"+strconv.Itoa(nums[len(nums)-1]))
		default:
			// Unreachable for runs built above (every absorbed step is
			// +1) but kept for data that bypassed the normalizer.
			strs := make([]string, len(nums))
			for k, n := range nums {
				strs[k] = strconv.Itoa(n)
			}
			parts = append(parts, name+sp+strings.Join(strs, format.inner))
		}
	}
	return strings.Join(parts, format.outer), nil
}

func contiguous(nums []int) bool {
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[i-1]+1 {
			return false
		}
	}
	return true
}

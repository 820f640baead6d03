package ref

import (
	"regexp"
	"strings"
)

// blockSplit separates a day's reading text into blocks on semicolons,
// swallowing surrounding whitespace.
var blockSplit = regexp.MustCompile(`\s*;\s*`)

// NormalizeDayText parses a full day's reading text (e.g. "Genesis 1-3;
// Exodus 4-6") into interchange strings "<book>:<chapter>".
//
// The output contains no duplicate reference and preserves the order in
// which each distinct reference was first encountered scanning left to
// right. Empty or fully unrecognizable input yields an empty (nil) slice,
// never an error.
func NormalizeDayText(text string) []string {
	text = normalizeDashes(text)

	seen := make(map[Chapter]struct{})
	var out []string
	for _, block := range blockSplit.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		for _, ch := range ParseReference(block) {
			if _, dup := seen[ch]; dup {
				continue
			}
			seen[ch] = struct{}{}
			out = append(out, ch.String())
		}
	}
	return out
}

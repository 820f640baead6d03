package ref

import (
	"fmt"
	"strconv"
	"strings"
)

// Chapter is a canonical chapter reference: a book number 1-66 and a
// chapter number >= 1. Chapter numbers are not validated against the
// book's actual chapter count; out-of-range chapters pass through
// unchanged.
type Chapter struct {
	Book   int
	Number int
}

// String renders the interchange form "<book>:<chapter>".
func (c Chapter) String() string {
	return strconv.Itoa(c.Book) + ":" + strconv.Itoa(c.Number)
}

// ParseChapter parses an interchange string "<book>:<chapter>".
func ParseChapter(s string) (Chapter, error) {
	book, num, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Chapter{}, fmt.Errorf("malformed chapter reference %q", s)
	}
	b, err := strconv.Atoi(strings.TrimSpace(book))
	if err != nil {
		return Chapter{}, fmt.Errorf("malformed book number in %q: %w", s, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Chapter{}, fmt.Errorf("malformed chapter number in %q: %w", s, err)
	}
	return Chapter{Book: b, Number: n}, nil
}

// Strings renders a chapter list as interchange strings.
func Strings(chapters []Chapter) []string {
	out := make([]string, len(chapters))
	for i, c := range chapters {
		out[i] = c.String()
	}
	return out
}

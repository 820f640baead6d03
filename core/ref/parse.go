package ref

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// clauseSplit separates a citation clause into sub-clauses on commas,
// semicolons, or the word "and".
var clauseSplit = regexp.MustCompile(`(?i)[,;]| and `)

// chapterSpan is the grammar for the text following a matched book name:
// a start chapter, an optional "-end" chapter, and an optional ":verse"
// or ":verse-verse" suffix. Verse-level references resolve to their
// containing chapter, so the verse numbers are captured only to consume
// them.
type chapterSpan struct {
	Start      int  `parser:"@Number"`
	End        *int `parser:"( '-' @Number )?"`
	VerseStart *int `parser:"( ':' @Number"`
	VerseEnd   *int `parser:"  ( '-' @Number )? )?"`
}

var spanLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var spanParser = participle.MustBuild[chapterSpan](
	participle.Lexer(spanLexer),
	participle.Elide("Whitespace"),
)

// spanPrefix cuts remainder down to the leading run of characters that can
// belong to a chapter span (digits, dashes, colons, spaces), then trims
// trailing punctuation so "3 and then some" and "12-" both reduce to a
// parseable span. Scraped text routinely carries trailing noise; the span
// itself is whatever well-formed prefix is present.
func spanPrefix(remainder string) string {
	end := len(remainder)
	for i, r := range remainder {
		if (r < '0' || r > '9') && r != '-' && r != ':' && r != ' ' && r != '\t' {
			end = i
			break
		}
	}
	return trimSpanTail(remainder[:end])
}

// trimSpanTail drops trailing characters that cannot end a span, so "12-"
// and "3 :" both reduce to their last complete number.
func trimSpanTail(prefix string) string {
	for len(prefix) > 0 {
		last := prefix[len(prefix)-1]
		if last >= '0' && last <= '9' {
			break
		}
		prefix = prefix[:len(prefix)-1]
	}
	return strings.TrimSpace(prefix)
}

// parseSpan parses the longest leading well-formed span in prefix. The
// grammar rejects trailing tokens, so on failure the prefix is cut back at
// its last space and retried; "1 2" resolves to the span "1" the way a
// leading-anchored regex match would.
func parseSpan(prefix string) (*chapterSpan, bool) {
	for prefix != "" {
		span, err := spanParser.ParseString("", prefix)
		if err == nil {
			return span, true
		}
		cut := strings.LastIndexAny(prefix, " \t")
		if cut < 0 {
			return nil, false
		}
		prefix = trimSpanTail(prefix[:cut])
	}
	return nil, false
}

// ParseReference parses one citation clause ("Genesis 1-3", "Psalm
// 119:1-88", "Exod 4 and Ps 23") into canonical chapter references.
//
// The clause is split on commas, semicolons, and the word "and"; each
// sub-clause is resolved independently. Sub-clauses with no recognized
// book name or no parseable chapter span are dropped silently: input is
// best-effort text harvested from scraped pages, and malformed fragments
// are expected. A bare book name emits chapter 1 only. Duplicates across
// sub-clauses are preserved; dedup happens in NormalizeDayText.
func ParseReference(clause string) []Chapter {
	clause = normalizeDashes(clause)

	var result []Chapter
	for _, part := range clauseSplit.Split(clause, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		book, rest, ok := FindBook(part)
		if !ok {
			continue
		}
		if rest == "" {
			// Whole-book citation: chapter 1 only. Enumerating every
			// chapter would reshape persisted plan data.
			result = append(result, Chapter{Book: book, Number: 1})
			continue
		}
		prefix := spanPrefix(rest)
		if prefix == "" {
			continue
		}
		span, ok := parseSpan(prefix)
		if !ok {
			continue
		}
		start, end := span.Start, span.Start
		if span.End != nil {
			end = *span.End
		}
		for ch := start; ch <= end; ch++ {
			result = append(result, Chapter{Book: book, Number: ch})
		}
	}
	return result
}

// normalizeDashes folds en-dash and em-dash range punctuation into the
// plain hyphen before parsing.
func normalizeDashes(s string) string {
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	return s
}

package ref

import "strings"

// FindBook finds a recognized book name at the start of text.
// Name forms are tried longest first, case-insensitively, so "1 John 3"
// resolves to 1 John rather than a shorter prefix. On a match it returns
// the book number and the remaining text with surrounding whitespace
// stripped. If no name form matches it returns (0, text, false) with the
// trimmed input.
func FindBook(text string) (book int, remainder string, ok bool) {
	text = strings.TrimSpace(text)
	for _, name := range matchNames {
		if len(text) < len(name) {
			continue
		}
		// Name forms are ASCII, so a byte-length prefix slice is safe
		// even when the remainder holds multi-byte text.
		if strings.EqualFold(text[:len(name)], name) {
			return nameIndex[name], strings.TrimSpace(text[len(name):]), true
		}
	}
	return 0, text, false
}

// Package library manages the local chapter-audio library: downloading
// Everest Audio Bible ZIP archives, arranging one MP3 per chapter, and
// indexing the arranged files in SQLite.
package library

import "fmt"

// DefaultBaseURL is the Everest Audio Bible mirror serving one ZIP per book.
const DefaultBaseURL = "https://www.everestaudiobible.org/mp3/website/Everest_Audio_Bible_48k"

// everestCodes holds the Everest archive basename ("NN_XXX") for each
// book 1-66. Index 0 is unused.
var everestCodes = [67]string{
	"", "01_GEN", "02_EXO", "03_LEV", "04_NUM", "05_DEU", "06_JOS", "07_JDG", "08_RUT",
	"09_1SA", "10_2SA", "11_1KI", "12_2KI", "13_1CH", "14_2CH", "15_EZR", "16_NEH",
	"17_EST", "18_JOB", "19_PSA", "20_PRO", "21_ECC", "22_SNG", "23_ISA", "24_JER",
	"25_LAM", "26_EZK", "27_DAN", "28_HOS", "29_JOL", "30_AMO", "31_OBA", "32_JON",
	"33_MIC", "34_NAM", "35_HAB", "36_ZEP", "37_HAG", "38_ZEC", "39_MAL", "40_MAT",
	"41_MRK", "42_LUK", "43_JHN", "44_ACT", "45_ROM", "46_1CO", "47_2CO", "48_GAL",
	"49_EPH", "50_PHP", "51_COL", "52_1TH", "53_2TH", "54_1TI", "55_2TI", "56_TIT",
	"57_PHM", "58_HEB", "59_JAS", "60_1PE", "61_2PE", "62_1JN", "63_2JN", "64_3JN",
	"65_JUD", "66_REV",
}

// bookChapters holds the chapter count of each book 1-66. Index 0 is
// unused. Used only to warn about incomplete archives; the resolver
// itself never validates chapter numbers.
var bookChapters = [67]int{
	0, 50, 40, 27, 36, 34, 24, 21, 4, 31, 24, 22, 25, 29, 36, 10, 13, 10, 42, 150,
	31, 12, 8, 66, 52, 5, 48, 12, 14, 3, 9, 1, 4, 7, 3, 3, 3, 2, 14, 4, 28, 16, 24,
	21, 28, 16, 16, 13, 6, 6, 4, 4, 5, 3, 6, 4, 3, 1, 13, 5, 5, 3, 5, 1, 1, 1, 22,
}

// BookCode returns the Everest archive code for a book, e.g. "01_GEN".
func BookCode(book int) (string, bool) {
	if book < 1 || book >= len(everestCodes) || everestCodes[book] == "" {
		return "", false
	}
	return everestCodes[book], true
}

// ChapterCount returns the expected chapter count of a book, or 0 when
// the book number is out of range.
func ChapterCount(book int) int {
	if book < 1 || book >= len(bookChapters) {
		return 0
	}
	return bookChapters[book]
}

// ChapterFileName returns the arranged file name for a chapter,
// "BBB_CCC.mp3" with zero-padded book and chapter numbers. The padding is
// a file-layout convention only; the interchange form stays unpadded.
func ChapterFileName(book, chapter int) string {
	return fmt.Sprintf("%03d_%03d.mp3", book, chapter)
}

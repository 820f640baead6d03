// Package ref resolves free-form scripture citation text into canonical
// (book, chapter) references and renders canonical references back into
// localized citation strings.
//
// Books are identified by their canonical number 1-66 (Genesis=1 through
// Revelation=66). A chapter reference travels between components as the
// interchange string "<book>:<chapter>".
package ref

import (
	"sort"
	"strconv"
	"strings"

	"github.com/viaifoundation/firstlight/core/errors"
)

// Locale selects a display-name table for citation formatting.
type Locale string

const (
	// English uses ESV/standard English book names.
	English Locale = "en"
	// SimplifiedChinese uses 和合本 Simplified Chinese book names.
	SimplifiedChinese Locale = "zh_cn"
	// TraditionalChinese uses 和合本 Traditional Chinese book names.
	TraditionalChinese Locale = "zh_tw"
)

// bookCount is the number of canonical books.
const bookCount = 66

// Display names, index 1-66. Index 0 is unused.
var booksEnglish = [bookCount + 1]string{
	"", "Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy", "Joshua", "Judges",
	"Ruth", "1 Samuel", "2 Samuel", "1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles",
	"Ezra", "Nehemiah", "Esther", "Job", "Psalms", "Proverbs", "Ecclesiastes", "Song of Solomon",
	"Isaiah", "Jeremiah", "Lamentations", "Ezekiel", "Daniel", "Hosea", "Joel",
	"Amos", "Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah",
	"Haggai", "Zechariah", "Malachi", "Matthew", "Mark", "Luke", "John",
	"Acts", "Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians", "Philippians",
	"Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy", "2 Timothy", "Titus",
	"Philemon", "Hebrews", "James", "1 Peter", "2 Peter", "1 John", "2 John",
	"3 John", "Jude", "Revelation",
}

var booksSimplified = [bookCount + 1]string{
	"", "创世记", "出埃及记", "利未记", "民数记", "申命记", "约书亚记", "士师记",
	"路得记", "撒母耳记上", "撒母耳记下", "列王纪上", "列王纪下", "历代志上", "历代志下",
	"以斯拉记", "尼希米记", "以斯帖记", "约伯记", "诗篇", "箴言", "传道书", "雅歌",
	"以赛亚书", "耶利米书", "耶利米哀歌", "以西结书", "但以理书", "何西阿书", "约珥书",
	"阿摩司书", "俄巴底亚书", "约拿书", "弥迦书", "那鸿书", "哈巴谷书", "西番雅书",
	"哈该书", "撒迦利亚书", "玛拉基书", "马太福音", "马可福音", "路加福音", "约翰福音",
	"使徒行传", "罗马书", "哥林多前书", "哥林多后书", "加拉太书", "以弗所书", "腓立比书",
	"歌罗西书", "帖撒罗尼迦前书", "帖撒罗尼迦后书", "提摩太前书", "提摩太后书", "提多书",
	"腓利门书", "希伯来书", "雅各书", "彼得前书", "彼得后书", "约翰一书", "约翰二书",
	"约翰三书", "犹大书", "启示录",
}

var booksTraditional = [bookCount + 1]string{
	"", "創世記", "出埃及記", "利未記", "民數記", "申命記", "約書亞記", "士師記",
	"路得記", "撒母耳記上", "撒母耳記下", "列王紀上", "列王紀下", "歷代志上", "歷代志下",
	"以斯拉記", "尼希米記", "以斯帖記", "約伯記", "詩篇", "箴言", "傳道書", "雅歌",
	"以賽亞書", "耶利米書", "耶利米哀歌", "以西結書", "但以理書", "何西阿書", "約珥書",
	"阿摩司書", "俄巴底亞書", "約拿書", "彌迦書", "那鴻書", "哈巴谷書", "西番雅書",
	"哈該書", "撒迦利亞書", "瑪拉基書", "馬太福音", "馬可福音", "路加福音", "約翰福音",
	"使徒行傳", "羅馬書", "哥林多前書", "哥林多後書", "加拉太書", "以弗所書", "腓立比書",
	"歌羅西書", "帖撒羅尼迦前書", "帖撒羅尼迦後書", "提摩太前書", "提摩太後書", "提多書",
	"腓利門書", "希伯來書", "雅各書", "彼得前書", "彼得後書", "約翰一書", "約翰二書",
	"約翰三書", "猶大書", "啟示錄",
}

// nameIndex maps every recognized English name form (full names, scholarly
// abbreviations, and the short forms Bible Study Tools and bible.com use)
// to its book number. Matching is case-insensitive; keys keep their
// conventional capitalization for readability only.
var nameIndex = map[string]int{
	// Full names.
	"1 Chronicles": 13, "1 Corinthian": 46, "1 Corinthians": 46,
	"1 John": 62, "1 Kings": 11, "1 Peter": 60, "1 Samuel": 9,
	"1 Thessalonians": 52, "1 Timothy": 54,
	"2 Chronicles": 14, "2 Corinthians": 47, "2 John": 63,
	"2 Kings": 12, "2 Peter": 61, "2 Samuel": 10, "2 Thessalonians": 53,
	"2 Timothy": 55, "3 John": 64,
	"Acts": 44, "Amos": 30,
	"Colossians": 51,
	"Daniel": 27, "Deuteronomy": 5,
	"Ecclesiastes": 21, "Ephesians": 49, "Esther": 17, "Exodus": 2,
	"Ezekiel": 26, "Ezra": 15,
	"Galatians": 48, "Genesis": 1,
	"Habakkuk": 35, "Haggai": 37, "Hebrews": 58, "Hosea": 28,
	"Isaiah": 23,
	"James": 59, "Jeremiah": 24, "Job": 18, "Joel": 29, "John": 43,
	"Jonah": 32, "Joshua": 6, "Jude": 65, "Judges": 7,
	"Lamentations": 25, "Leviticus": 3, "Luke": 42,
	"Malachi": 39, "Mark": 41, "Matthew": 40, "Micah": 33,
	"Nahum": 34, "Nehemiah": 16, "Numbers": 4,
	"Obadiah": 31,
	"Philippians": 50, "Philemon": 57, "Proverbs": 20,
	"Psalm": 19, "Psalms": 19,
	"Revelation": 66, "Romans": 45, "Ruth": 8,
	"Song of Solomon": 22, "Song of Songs": 22,
	"Zechariah": 38, "Zephaniah": 36,

	// Short forms (Bible Study Tools, bible.com), with and without
	// internal spaces.
	"1 Sam": 9, "2 Sam": 10, "2Sam": 10, "1 Kin": 11, "2 Kin": 12,
	"1 Chr": 13, "2 Chr": 14, "1 Cor": 46, "2 Cor": 47,
	"1 Thess": 52, "2 Thess": 53, "1 Tim": 54, "2 Tim": 55,
	"1 Pet": 60, "2 Pet": 61,
	"Song of Sol": 22, "Phil": 50, "Phlm": 57,
	"1Chr": 13, "1Cor": 46, "1Jn": 62, "1Kgs": 11, "1Pet": 60,
	"1Sam": 9, "1Thess": 52, "1Tim": 54,
	"2Chr": 14, "2Cor": 47, "2Jn": 63, "2Kgs": 12, "2Pet": 61,
	"2Thess": 53, "2Tim": 55, "3Jn": 64,
	"Col": 51, "Dan": 27, "Deut": 5,
	"Eccl": 21, "Eph": 49, "Esth": 17, "Exod": 2, "Ezek": 26,
	"Gal": 48, "Gen": 1, "Hab": 35, "Hag": 37,
	"Heb": 58, "Hos": 28, "Isa": 23, "Jas": 59, "Jer": 24,
	"Josh": 6, "Judg": 7, "Lam": 25, "Lev": 3,
	"Mal": 39, "Matt": 40, "Mic": 33, "Nah": 34,
	"Neh": 16, "Num": 4, "Obad": 31,
	"Prov": 20, "Ps": 19, "Rev": 66,
	"Song": 22, "Zech": 38, "Zeph": 36,
}

// siteCodes maps the uppercase USFM-style codes bible.com embeds in
// chapter hrefs ("/GEN.1.ESV") to book numbers. Lookup is exact after
// upper-casing.
var siteCodes = map[string]int{
	"GEN": 1, "EXOD": 2, "LEV": 3, "NUM": 4, "DEUT": 5, "JOSH": 6,
	"JDG": 7, "RUTH": 8, "1SAM": 9, "2SAM": 10, "1KGS": 11, "2KGS": 12,
	"1CHR": 13, "2CHR": 14, "EZRA": 15, "NEH": 16, "ESTH": 17, "JOB": 18,
	"PS": 19, "PROV": 20, "ECCL": 21, "SONG": 22, "ISA": 23, "JER": 24,
	"LAM": 25, "EZK": 26, "DAN": 27, "HOS": 28, "JOEL": 29, "AMOS": 30,
	"OBA": 31, "JON": 32, "MIC": 33, "NAH": 34, "HAB": 35, "ZEP": 36,
	"HAG": 37, "ZEC": 38, "MAL": 39, "MATT": 40, "MARK": 41, "LUKE": 42,
	"JOHN": 43, "ACTS": 44, "ROM": 45, "1CO": 46, "2CO": 47, "GAL": 48,
	"EPH": 49, "PHP": 50, "COL": 51, "1TH": 52, "2TH": 53, "1TI": 54,
	"2TI": 55, "TIT": 56, "PHM": 57, "HEB": 58, "JAS": 59, "1PE": 60,
	"2PE": 61, "1JN": 62, "2JN": 63, "3JN": 64, "JUDE": 65, "REV": 66,
}

// matchNames holds every key of nameIndex sorted by length descending,
// ties broken lexicographically. The matcher scans this list in order so
// the longest applicable name always wins ("1 John" before "1 Jo"-style
// prefixes) and any future equal-length collision resolves
// deterministically. Built once; never mutated after init.
var matchNames = buildMatchNames()

func buildMatchNames() []string {
	names := make([]string, 0, len(nameIndex))
	for name := range nameIndex {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// LookupName returns the book number for a recognized name form.
// The comparison is case-insensitive and exact (no prefix matching;
// use FindBook for that).
func LookupName(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if n, ok := nameIndex[name]; ok {
		return n, true
	}
	for candidate, n := range nameIndex {
		if strings.EqualFold(candidate, name) {
			return n, true
		}
	}
	return 0, false
}

// LookupSiteCode returns the book number for a bible.com href code such
// as "GEN" or "1CO".
func LookupSiteCode(code string) (int, bool) {
	n, ok := siteCodes[strings.ToUpper(strings.TrimSpace(code))]
	return n, ok
}

func displayNames(loc Locale) (*[bookCount + 1]string, bool) {
	switch loc {
	case English:
		return &booksEnglish, true
	case SimplifiedChinese:
		return &booksSimplified, true
	case TraditionalChinese:
		return &booksTraditional, true
	default:
		return nil, false
	}
}

// BookName returns the display name of a book in the given locale.
// A book number outside 1-66 renders as the bare number, matching the
// formatter's pass-through policy for out-of-range data.
func BookName(book int, loc Locale) (string, error) {
	names, ok := displayNames(loc)
	if !ok {
		return "", &errors.ValidationError{
			Field:   "locale",
			Value:   string(loc),
			Message: "no display-name table for locale",
		}
	}
	if book < 1 || book > bookCount {
		return strconv.Itoa(book), nil
	}
	return names[book], nil
}

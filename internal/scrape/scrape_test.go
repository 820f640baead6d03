package scrape

import (
	"reflect"
	"testing"

	"github.com/viaifoundation/firstlight/core/errors"
)

const bstFixture = `<html><body>
<h1>Chronological Bible Reading Plan</h1>
<p>Read the Bible in the order its events happened.</p>
<div><strong>Day 1</strong> Genesis 1-3 <a href="/passage/genesis-1">Read</a></div>
<div><strong>Day 2</strong> Genesis 4-7; Psalm 29</div>
<div><strong>Day 3</strong> Subscribe to our newsletter for more</div>
<div><strong>Day 4</strong> Job 1&ndash;5</div>
</body></html>`

func TestParseBSTDays(t *testing.T) {
	entries, err := ParseBSTDays(bstFixture, 365)
	if err != nil {
		t.Fatalf("ParseBSTDays: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3 (day 3 has no chapters): %+v", len(entries), entries)
	}
	if entries[0].Day != 1 || !reflect.DeepEqual(entries[0].Chapters, []string{"1:1", "1:2", "1:3"}) {
		t.Errorf("day 1 = %+v", entries[0])
	}
	if entries[1].Day != 2 || !reflect.DeepEqual(entries[1].Chapters, []string{"1:4", "1:5", "1:6", "1:7", "19:29"}) {
		t.Errorf("day 2 = %+v", entries[1])
	}
	if entries[2].Day != 4 || !reflect.DeepEqual(entries[2].Chapters, []string{"18:1", "18:2", "18:3", "18:4", "18:5"}) {
		t.Errorf("day 4 = %+v", entries[2])
	}
}

func TestParseBSTDaysMaxDay(t *testing.T) {
	entries, err := ParseBSTDays(bstFixture, 1)
	if err != nil {
		t.Fatalf("ParseBSTDays: %v", err)
	}
	if len(entries) != 1 || entries[0].Day != 1 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParseBSTDaysEmptyPage(t *testing.T) {
	entries, err := ParseBSTDays("<html><body><p>Nothing here</p></body></html>", 365)
	if err != nil {
		t.Fatalf("ParseBSTDays: %v", err)
	}
	if entries != nil {
		t.Errorf("entries = %+v, want none", entries)
	}
}

const bibleComTextFixture = `<html><body>
<nav><a href="/reading-plans">All plans</a></nav>
<main>
<a href="/bible/111/GEN.1.NIV">Genesis 1</a>
<a href="/bible/111/GEN.2.NIV">Genesis 2</a>
<a href="/next">Next Day</a>
</main>
</body></html>`

const bibleComHrefFixture = `<html><body>
<a href="/bible/111/GEN.1.NIV"><img src="x.png"/></a>
<a href="/bible/111/GEN.1.NIV"><img src="y.png"/></a>
<a href="/bible/111/PS.23.NIV"><img src="z.png"/></a>
<a href="/bible/111/1CO.13.NIV"><img src="w.png"/></a>
</body></html>`

func TestParseBibleComDayAnchorText(t *testing.T) {
	chapters, err := ParseBibleComDay(bibleComTextFixture)
	if err != nil {
		t.Fatalf("ParseBibleComDay: %v", err)
	}
	if !reflect.DeepEqual(chapters, []string{"1:1", "1:2"}) {
		t.Errorf("chapters = %v", chapters)
	}
}

func TestParseBibleComDayHrefFallback(t *testing.T) {
	chapters, err := ParseBibleComDay(bibleComHrefFixture)
	if err != nil {
		t.Fatalf("ParseBibleComDay: %v", err)
	}
	if !reflect.DeepEqual(chapters, []string{"1:1", "19:23", "46:13"}) {
		t.Errorf("chapters = %v", chapters)
	}
}

func TestParseBibleComDayNoLinks(t *testing.T) {
	chapters, err := ParseBibleComDay("<html><body><p>No links</p></body></html>")
	if err != nil {
		t.Fatalf("ParseBibleComDay: %v", err)
	}
	if chapters != nil {
		t.Errorf("chapters = %v, want none", chapters)
	}
}

func TestCatalog(t *testing.T) {
	entries := Catalog()
	if len(entries) != 9 {
		t.Fatalf("catalog has %d entries, want 9", len(entries))
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.ID] {
			t.Errorf("duplicate catalog ID %s", e.ID)
		}
		seen[e.ID] = true
		if e.Days != 365 && e.Days != 90 {
			t.Errorf("plan %s has odd day count %d", e.ID, e.Days)
		}
	}

	entry, err := FindCatalogEntry("chronological-90days")
	if err != nil {
		t.Fatalf("FindCatalogEntry: %v", err)
	}
	if entry.Source != SourceBibleCom {
		t.Errorf("chronological-90days source = %s", entry.Source)
	}

	_, err = FindCatalogEntry("no-such-plan")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("FindCatalogEntry missing = %v, want ErrNotFound", err)
	}
}

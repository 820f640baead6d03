package library

import (
	"path/filepath"
	"testing"

	"github.com/viaifoundation/firstlight/core/errors"
	"github.com/viaifoundation/firstlight/core/ref"
)

func TestBookCode(t *testing.T) {
	tests := []struct {
		book int
		want string
		ok   bool
	}{
		{1, "01_GEN", true},
		{19, "19_PSA", true},
		{66, "66_REV", true},
		{0, "", false},
		{67, "", false},
	}
	for _, tt := range tests {
		got, ok := BookCode(tt.book)
		if got != tt.want || ok != tt.ok {
			t.Errorf("BookCode(%d) = %q, %v, want %q, %v", tt.book, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChapterCounts(t *testing.T) {
	// The canon holds 1189 chapters; a mismatch means a table typo.
	total := 0
	for book := 1; book <= 66; book++ {
		n := ChapterCount(book)
		if n < 1 {
			t.Errorf("book %d has chapter count %d", book, n)
		}
		total += n
	}
	if total != 1189 {
		t.Errorf("total chapters = %d, want 1189", total)
	}
	if ChapterCount(19) != 150 {
		t.Errorf("Psalms count = %d, want 150", ChapterCount(19))
	}
	if ChapterCount(0) != 0 || ChapterCount(99) != 0 {
		t.Error("out-of-range book should count 0")
	}
}

func TestChapterFileName(t *testing.T) {
	if got := ChapterFileName(1, 1); got != "001_001.mp3" {
		t.Errorf("ChapterFileName(1,1) = %q", got)
	}
	if got := ChapterFileName(19, 119); got != "019_119.mp3" {
		t.Errorf("ChapterFileName(19,119) = %q", got)
	}
}

func TestIndex(t *testing.T) {
	ix, err := OpenIndex(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("OpenIndex: %v", err)
	}
	defer ix.Close()

	rec := Record{Book: 1, Chapter: 1, Path: "/audio/001_001.mp3", Size: 1234, Blake3: "ab"}
	if err := ix.Upsert(rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := ix.Lookup(1, 1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Path != rec.Path || got.Size != rec.Size || got.Blake3 != rec.Blake3 {
		t.Errorf("Lookup = %+v", got)
	}

	// Upsert replaces on the same key.
	rec.Path = "/audio/replaced.mp3"
	if err := ix.Upsert(rec); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}
	got, err = ix.Lookup(1, 1)
	if err != nil {
		t.Fatalf("Lookup after replace: %v", err)
	}
	if got.Path != "/audio/replaced.mp3" {
		t.Errorf("Lookup after replace = %+v", got)
	}

	if n, err := ix.Count(); err != nil || n != 1 {
		t.Errorf("Count = %d, %v", n, err)
	}

	_, err = ix.Lookup(2, 1)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Lookup missing = %v, want ErrNotFound", err)
	}
}

func TestIndexMissing(t *testing.T) {
	ix, err := OpenIndex(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("OpenIndex: %v", err)
	}
	defer ix.Close()

	if err := ix.Upsert(Record{Book: 1, Chapter: 1, Path: "p", Blake3: "b"}); err != nil {
		t.Fatal(err)
	}

	missing, err := ix.Missing([]ref.Chapter{{Book: 1, Number: 1}, {Book: 1, Number: 2}, {Book: 2, Number: 4}})
	if err != nil {
		t.Fatalf("Missing: %v", err)
	}
	want := []ref.Chapter{{Book: 1, Number: 2}, {Book: 2, Number: 4}}
	if len(missing) != len(want) {
		t.Fatalf("Missing = %v", missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("Missing = %v, want %v", missing, want)
		}
	}
}

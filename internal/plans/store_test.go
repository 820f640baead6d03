package plans

import (
	"testing"

	"github.com/viaifoundation/firstlight/core/errors"
)

func testPlan() *Plan {
	return &Plan{
		ID:     "ninety-day-challenge",
		Name:   "Ninety-Day Challenge (Sequential)",
		Days:   90,
		Source: "https://www.biblestudytools.com/bible-reading-plan/ninety-day-challenge.html",
		Entries: []Entry{
			{Day: 1, Chapters: []string{"1:1", "1:2", "1:3"}},
			{Day: 2, Chapters: []string{"1:4", "1:5", "1:6"}},
			{Day: 5, Chapters: []string{"2:1"}},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	plan := testPlan()

	if err := store.Save(plan); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(plan.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != plan.Name || loaded.Days != plan.Days || loaded.Source != plan.Source {
		t.Errorf("loaded metadata %+v, want %+v", loaded, plan)
	}
	if len(loaded.Entries) != 3 {
		t.Fatalf("loaded %d entries, want 3", len(loaded.Entries))
	}
	if got := loaded.Entries[0].Chapters[0]; got != "1:1" {
		t.Errorf("first chapter = %q", got)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load("no-such-plan")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error %v does not unwrap to ErrNotFound", err)
	}
}

func TestStoreSaveEmptyID(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Save(&Plan{}); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Save with empty ID = %v, want ErrInvalidInput", err)
	}
}

func TestStoreList(t *testing.T) {
	store := NewStore(t.TempDir())
	ids, err := store.List()
	if err != nil || ids != nil {
		t.Fatalf("List on empty dir = %v, %v", ids, err)
	}

	for _, id := range []string{"chronological-1year", "busy-life-1year"} {
		p := testPlan()
		p.ID = id
		if err := store.Save(p); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}
	ids, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 || ids[0] != "busy-life-1year" || ids[1] != "chronological-1year" {
		t.Errorf("List = %v", ids)
	}
}

func TestPlanHelpers(t *testing.T) {
	plan := testPlan()
	if e := plan.Entry(2); e == nil || e.Chapters[0] != "1:4" {
		t.Errorf("Entry(2) = %+v", e)
	}
	if e := plan.Entry(3); e != nil {
		t.Errorf("Entry(3) = %+v, want nil", e)
	}
	if got := plan.MaxDay(); got != 5 {
		t.Errorf("MaxDay = %d", got)
	}
	if got := (&Plan{}).MaxDay(); got != 0 {
		t.Errorf("MaxDay on empty plan = %d", got)
	}
}

// Package scrape fetches reading plans from Bible Study Tools and
// bible.com pages and normalizes their citation text into canonical
// chapter lists. Markup handling stops here; the reference resolver only
// ever sees plain text.
package scrape

import "github.com/viaifoundation/firstlight/core/errors"

// Source identifies which site a catalog entry is scraped from.
type Source string

const (
	// SourceBST is a Bible Study Tools reading-plan page.
	SourceBST Source = "biblestudytools"
	// SourceBibleCom is a bible.com (YouVersion) reading plan with one
	// page per day.
	SourceBibleCom Source = "bible.com"
)

// CatalogEntry describes one fetchable reading plan.
type CatalogEntry struct {
	Rank   int
	ID     string
	Name   string
	Days   int
	Source Source
	// Slug is the BST page name, or the bible.com plan path.
	Slug string
}

// catalog lists the plans this tool knows how to fetch: the top yearly
// plans from Bible Study Tools plus the 90-day plans.
var catalog = []CatalogEntry{
	{1, "chronological-1year", "Chronological Bible (1 Year)", 365, SourceBST, "chronological.html"},
	{2, "book-order-1year", "Book Order Bible (1 Year)", 365, SourceBST, "book-order.html"},
	{3, "ot-and-nt-1year", "Old and New Testament (1 Year)", 365, SourceBST, "old-testament-and-new-testament.html"},
	{4, "classic-1year", "Classic Bible (1 Year)", 365, SourceBST, "classic.html"},
	{5, "one-year-immersion", "One-Year Immersion (OT 1x, NT 3x)", 365, SourceBST, "one-year-immersion-plan.html"},
	{6, "stay-on-track", "Stay-on-Track Bible (1 Year)", 365, SourceBST, "stay-on-track.html"},
	{7, "busy-life-1year", "The Busy-Life Bible (1 Year)", 365, SourceBST, "busy-life-plan.html"},
	{8, "ninety-day-challenge", "Ninety-Day Challenge (Sequential)", 90, SourceBST, "ninety-day-challenge.html"},
	{9, "chronological-90days", "Chronological in 90 Days", 90, SourceBibleCom, "40606-chronological-in-90-days"},
}

// Catalog returns all fetchable plans in rank order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// FindCatalogEntry returns the catalog entry with the given plan ID.
func FindCatalogEntry(id string) (CatalogEntry, error) {
	for _, e := range catalog {
		if e.ID == id {
			return e, nil
		}
	}
	return CatalogEntry{}, &errors.NotFoundError{Resource: "catalog plan", ID: id}
}

package scrape

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"

	"github.com/viaifoundation/firstlight/core/ref"
	"github.com/viaifoundation/firstlight/internal/logging"
	"github.com/viaifoundation/firstlight/internal/plans"
)

const bibleComBaseURL = "https://www.bible.com/reading-plans/"

// anchorExpr selects every link on a bible.com day page. Scripture links
// carry citations like "Genesis 1" as text and "/GEN.1.ESV" codes in
// their hrefs.
var anchorExpr = xpath.MustCompile("//a")

// hrefCode matches USFM-style chapter codes embedded in hrefs,
// e.g. "/GEN.1.ESV" or "/1CO.13.NIV".
var hrefCode = regexp.MustCompile(`(?i)/(\d?[A-Za-z]+)\.(\d+)\.`)

// FetchBibleComPlan fetches a bible.com reading plan one day page at a
// time. Every day gets an entry, even when a page yields no chapters, so
// gaps are visible in the stored plan.
func FetchBibleComPlan(ctx context.Context, client *http.Client, entry CatalogEntry) (*plans.Plan, error) {
	source := bibleComBaseURL + entry.Slug
	var dayEntries []plans.Entry
	for day := 1; day <= entry.Days; day++ {
		url := fmt.Sprintf("%s/day/%d", source, day)
		body, err := fetch(ctx, client, url)
		if err != nil {
			return nil, err
		}
		chapters, err := ParseBibleComDay(body)
		if err != nil {
			return nil, fmt.Errorf("parse day %d: %w", day, err)
		}
		if len(chapters) == 0 {
			logging.WarnContext(ctx, "day page yielded no chapters", "plan", entry.ID, "day", day)
		}
		dayEntries = append(dayEntries, plans.Entry{Day: day, Chapters: chapters})
		logging.Debug("day fetched", "plan", entry.ID, "day", day, "chapters", len(chapters))
	}
	return &plans.Plan{
		ID:      entry.ID,
		Name:    entry.Name,
		Days:    entry.Days,
		Source:  source,
		Entries: dayEntries,
	}, nil
}

// ParseBibleComDay extracts the canonical chapter list from one bible.com
// day page. Anchor text citations are preferred; if none resolve, the
// USFM codes in anchor hrefs are used instead.
func ParseBibleComDay(htmlText string) ([]string, error) {
	doc, err := htmlquery.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	anchors := htmlquery.QuerySelectorAll(doc, anchorExpr)

	var texts []string
	for _, a := range anchors {
		if t := strings.TrimSpace(htmlquery.InnerText(a)); t != "" {
			texts = append(texts, t)
		}
	}
	if chapters := ref.NormalizeDayText(strings.Join(texts, "; ")); len(chapters) > 0 {
		return chapters, nil
	}

	// Fallback: resolve href codes like /GEN.1.ESV.
	seen := make(map[string]struct{})
	var chapters []string
	for _, a := range anchors {
		href := htmlquery.SelectAttr(a, "href")
		for _, m := range hrefCode.FindAllStringSubmatch(href, -1) {
			book, ok := ref.LookupSiteCode(m[1])
			if !ok {
				continue
			}
			chapter, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			s := ref.Chapter{Book: book, Number: chapter}.String()
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			chapters = append(chapters, s)
		}
	}
	return chapters, nil
}

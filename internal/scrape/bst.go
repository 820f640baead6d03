package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"

	"github.com/viaifoundation/firstlight/core/ref"
	"github.com/viaifoundation/firstlight/internal/logging"
	"github.com/viaifoundation/firstlight/internal/plans"
)

const bstBaseURL = "https://www.biblestudytools.com/bible-reading-plan/"

// dayMarker locates "Day N" headings in the flattened page text.
var dayMarker = regexp.MustCompile(`Day\s+(\d+)\s+`)

// FetchBSTPlan fetches a Bible Study Tools reading-plan page and parses
// its day entries.
func FetchBSTPlan(ctx context.Context, client *http.Client, entry CatalogEntry) (*plans.Plan, error) {
	url := bstBaseURL + entry.Slug
	body, err := fetch(ctx, client, url)
	if err != nil {
		return nil, err
	}
	entries, err := ParseBSTDays(body, entry.Days)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	logging.InfoContext(ctx, "plan fetched", "plan", entry.ID, "days", len(entries))
	return &plans.Plan{
		ID:      entry.ID,
		Name:    entry.Name,
		Days:    entry.Days,
		Source:  url,
		Entries: entries,
	}, nil
}

// ParseBSTDays extracts "Day N <readings>" blocks from a BST plan page.
// The page markup is flattened to text first; day blocks run from one
// "Day N" marker to the next. Days whose text yields no recognizable
// chapters are dropped (the page intersperses promotional copy that
// parses to nothing).
func ParseBSTDays(htmlText string, maxDay int) ([]plans.Entry, error) {
	doc, err := htmlquery.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	text := strings.Join(strings.Fields(htmlquery.InnerText(doc)), " ")

	marks := dayMarker.FindAllStringSubmatchIndex(text, -1)
	var entries []plans.Entry
	for i, m := range marks {
		day, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		if day > maxDay {
			break
		}
		start := m[1]
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		chapters := ref.NormalizeDayText(strings.TrimSpace(text[start:end]))
		if len(chapters) == 0 {
			continue
		}
		entries = append(entries, plans.Entry{Day: day, Chapters: chapters})
	}
	return entries, nil
}

func fetch(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

package library

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/viaifoundation/firstlight/internal/archive"
	"github.com/viaifoundation/firstlight/internal/logging"
)

// Downloader fetches Everest book ZIPs and arranges their chapters.
type Downloader struct {
	Client      *http.Client
	BaseURL     string
	ZipDir      string // downloaded archives, kept for re-runs
	ChaptersDir string // arranged BBB_CCC.mp3 files
	Index       *Index
	DryRun      bool
}

// DownloadBook ensures the ZIP for one book is present, extracts it, and
// arranges its chapters as BBB_CCC.mp3 files recorded in the index.
// Returns the number of chapters arranged.
func (d *Downloader) DownloadBook(ctx context.Context, book int) (int, error) {
	code, ok := BookCode(book)
	if !ok {
		return 0, fmt.Errorf("no archive code for book %d", book)
	}
	zipName := code + ".zip"
	zipPath := filepath.Join(d.ZipDir, zipName)

	if d.DryRun {
		logging.InfoContext(ctx, "would download", "book", book, "code", code,
			"chapters", ChapterCount(book))
		return 0, nil
	}

	if _, err := os.Stat(zipPath); os.IsNotExist(err) {
		if err := d.fetchZip(ctx, zipName, zipPath); err != nil {
			return 0, err
		}
	} else {
		logging.InfoContext(ctx, "zip already downloaded", "book", book, "zip", zipName)
	}

	return d.arrange(ctx, book, zipPath)
}

// DownloadRange downloads books start..end inclusive. Individual book
// failures are logged and collected; the rest of the range still runs.
func (d *Downloader) DownloadRange(ctx context.Context, start, end int) error {
	var failed []string
	for book := start; book <= end; book++ {
		if _, ok := BookCode(book); !ok {
			continue
		}
		if _, err := d.DownloadBook(ctx, book); err != nil {
			logging.ErrorContext(ctx, "book download failed", "book", book, "error", err)
			failed = append(failed, fmt.Sprintf("%d", book))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed books: %s", strings.Join(failed, " "))
	}
	return nil
}

func (d *Downloader) fetchZip(ctx context.Context, zipName, zipPath string) error {
	if err := os.MkdirAll(d.ZipDir, 0755); err != nil {
		return fmt.Errorf("create zip directory: %w", err)
	}
	url := d.BaseURL + "/" + zipName
	logging.InfoContext(ctx, "downloading", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	// Stream to a temp file and rename so an interrupted download never
	// leaves a half-written ZIP behind for the next run to trust.
	tmp, err := os.CreateTemp(d.ZipDir, ".download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", zipName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, zipPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename zip: %w", err)
	}
	return nil
}

func (d *Downloader) arrange(ctx context.Context, book int, zipPath string) (int, error) {
	if err := os.MkdirAll(d.ChaptersDir, 0755); err != nil {
		return 0, fmt.Errorf("create chapters directory: %w", err)
	}
	tempDir, err := os.MkdirTemp("", "everest-extract-*")
	if err != nil {
		return 0, fmt.Errorf("create extract directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	extracted, err := archive.ExtractZip(zipPath, tempDir)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", zipPath, err)
	}
	var mp3s []string
	for _, path := range extracted {
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			mp3s = append(mp3s, path)
		}
	}
	if len(mp3s) == 0 {
		return 0, fmt.Errorf("no MP3 files in %s", zipPath)
	}
	if expect := ChapterCount(book); len(mp3s) != expect {
		logging.WarnContext(ctx, "unexpected chapter count",
			"book", book, "expected", expect, "found", len(mp3s))
	}

	// Archive members sort in chapter order; chapter numbers are
	// assigned by position.
	for i, src := range mp3s {
		chapter := i + 1
		dest := filepath.Join(d.ChaptersDir, ChapterFileName(book, chapter))
		sum, size, err := copyAndHash(src, dest)
		if err != nil {
			return 0, err
		}
		if d.Index != nil {
			if err := d.Index.Upsert(Record{
				Book: book, Chapter: chapter,
				Path: dest, Size: size, Blake3: sum,
			}); err != nil {
				return 0, err
			}
		}
	}
	logging.InfoContext(ctx, "chapters arranged", "book", book, "count", len(mp3s))
	return len(mp3s), nil
}

// copyAndHash copies src to dest and returns the BLAKE3 checksum and size
// of the content.
func copyAndHash(src, dest string) (string, int64, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", 0, fmt.Errorf("write %s: %w", dest, err)
	}
	sum := blake3.Sum256(data)
	return fmt.Sprintf("%x", sum), int64(len(data)), nil
}

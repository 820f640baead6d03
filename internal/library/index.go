package library

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/viaifoundation/firstlight/core/errors"
	"github.com/viaifoundation/firstlight/core/ref"
)

const schema = `
CREATE TABLE IF NOT EXISTS chapters (
	book       INTEGER NOT NULL,
	chapter    INTEGER NOT NULL,
	path       TEXT NOT NULL,
	size       INTEGER NOT NULL,
	blake3     TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (book, chapter)
);
`

// Record is one arranged chapter file in the inventory.
type Record struct {
	Book    int
	Chapter int
	Path    string
	Size    int64
	Blake3  string
}

// Index is the SQLite inventory of arranged chapter audio files.
type Index struct {
	db *sql.DB
}

// OpenIndex opens (and if necessary initializes) the inventory database
// at path.
func OpenIndex(path string) (*Index, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open index (%s driver): %w", driverType, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize index schema: %w", err)
	}
	return &Index{db: db}, nil
}

// Close closes the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Upsert inserts or replaces the record for its (book, chapter) key.
func (ix *Index) Upsert(rec Record) error {
	_, err := ix.db.Exec(`
		INSERT INTO chapters (book, chapter, path, size, blake3, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (book, chapter) DO UPDATE SET
			path = excluded.path,
			size = excluded.size,
			blake3 = excluded.blake3,
			updated_at = excluded.updated_at`,
		rec.Book, rec.Chapter, rec.Path, rec.Size, rec.Blake3,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert chapter %d:%d: %w", rec.Book, rec.Chapter, err)
	}
	return nil
}

// Lookup returns the record for a chapter, or a NotFoundError when the
// chapter has not been downloaded.
func (ix *Index) Lookup(book, chapter int) (*Record, error) {
	var rec Record
	err := ix.db.QueryRow(`
		SELECT book, chapter, path, size, blake3
		FROM chapters WHERE book = ? AND chapter = ?`,
		book, chapter).Scan(&rec.Book, &rec.Chapter, &rec.Path, &rec.Size, &rec.Blake3)
	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{
			Resource: "chapter audio",
			ID:       strconv.Itoa(book) + ":" + strconv.Itoa(chapter),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup chapter %d:%d: %w", book, chapter, err)
	}
	return &rec, nil
}

// Missing returns the subset of chapters with no inventory record,
// preserving input order.
func (ix *Index) Missing(chapters []ref.Chapter) ([]ref.Chapter, error) {
	var missing []ref.Chapter
	for _, ch := range chapters {
		_, err := ix.Lookup(ch.Book, ch.Number)
		if err == nil {
			continue
		}
		if errors.Is(err, errors.ErrNotFound) {
			missing = append(missing, ch)
			continue
		}
		return nil, err
	}
	return missing, nil
}

// Count returns the number of indexed chapters.
func (ix *Index) Count() (int, error) {
	var n int
	if err := ix.db.QueryRow(`SELECT COUNT(*) FROM chapters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count chapters: %w", err)
	}
	return n, nil
}

// Package csvfile persists expense records as one flat CSV file: a fixed
// header followed by one row per expense, insertion order preserved.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"pennywise/internal/core"
	"pennywise/internal/store"
)

var header = []string{"Date", "Amount", "Category", "Description"}

// Store reads and writes the expense file. A mutex serializes the
// read-modify-write append so concurrent requests within the process cannot
// lose each other's rows. Nothing guards against a second process.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the expense file.
func (s *Store) Path() string {
	return s.path
}

// Append reads the existing file fully, appends one row, and rewrites the
// whole file. The file is created lazily on the first append.
func (s *Store) Append(ctx context.Context, r core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil && err != store.ErrNoData {
		return err
	}
	records = append(records, r)

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create expense file directory: %w", err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open expense file for writing: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write([]string{rec.Date, rec.Amount, rec.Category, rec.Description}); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush expense file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close expense file: %w", err)
	}

	slog.InfoContext(ctx, "Expense appended to file",
		"path", s.path,
		"rows", len(records),
		"category", r.Category)
	return nil
}

// Load returns every stored record in file order. A missing file is the
// empty state, reported as store.ErrNoData rather than an error.
func (s *Store) Load(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]core.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNoData
		}
		return nil, fmt.Errorf("open expense file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate short rows, they are skipped below

	// Header line
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []core.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) < 4 {
			continue
		}
		records = append(records, core.Record{
			Date:        row[0],
			Amount:      row[1],
			Category:    row[2],
			Description: row[3],
		})
	}
	return records, nil
}

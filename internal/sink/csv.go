// Package sink persists accepted records. Sinks are append-only: a crash
// mid-run must leave previously appended records intact.
package sink

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/profile-scout/internal/model"
)

var csvHeader = []string{"name", "profile_url", "search_keyword", "category"}

// CSV appends records to a CSV file, one flush per record so every accepted
// row is durable before the engine moves on.
type CSV struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewCSV opens (or creates) the file at path for appending and writes the
// header row when the file is new or empty.
func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, eris.Wrapf(err, "sink: open csv %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close() //nolint:errcheck
		return nil, eris.Wrapf(err, "sink: stat csv %s", path)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			f.Close() //nolint:errcheck
			return nil, eris.Wrap(err, "sink: write csv header")
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close() //nolint:errcheck
			return nil, eris.Wrap(err, "sink: flush csv header")
		}
	}

	return &CSV{path: path, f: f, w: w}, nil
}

// Append writes one record and flushes it to disk.
func (c *CSV) Append(_ context.Context, rec model.Record) error {
	row := []string{rec.Name, rec.ProfileURL, rec.Keyword, rec.Category}
	if err := c.w.Write(row); err != nil {
		return eris.Wrapf(err, "sink: write csv row %s", rec.ProfileURL)
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return eris.Wrapf(err, "sink: flush csv row %s", rec.ProfileURL)
	}
	return nil
}

// Name returns the output file path.
func (c *CSV) Name() string {
	return c.path
}

// Close closes the underlying file.
func (c *CSV) Close() error {
	return c.f.Close()
}

// SeedKeys reads the profile URLs from a previous output file so a resumed
// run can skip already-collected identities. A missing file yields no keys.
func SeedKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "sink: open csv %s", path)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sink: read csv header %s", path)
	}

	urlIdx := -1
	for i, h := range header {
		if h == "profile_url" {
			urlIdx = i
			break
		}
	}
	if urlIdx < 0 {
		return nil, eris.Errorf("sink: %s has no profile_url column", path)
	}

	var keys []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "sink: read csv row %s", path)
		}
		if urlIdx < len(row) && row[urlIdx] != "" {
			keys = append(keys, row[urlIdx])
		}
	}
	return keys, nil
}

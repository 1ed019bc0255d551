package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInputFile is returned when the data directory holds no CSV file.
var ErrNoInputFile = errors.New("no csv file found")

// Dataset is one CSV file held in memory: the normalized header plus every
// data row as raw strings. Coercion and filtering happen downstream; the
// loader only guarantees rectangular shape (each row has one cell per
// column).
type Dataset struct {
	Path    string     // source file path
	Columns []string   // header labels, trimmed and upper-cased, original order
	Rows    [][]string // raw cells, len(Rows[i]) == len(Columns)
}

// DiscoverCSV returns the path of the first *.csv file in dir, in
// lexicographic order. Sorting makes the "first CSV" pick deterministic
// regardless of how the OS lists the directory.
//
// Returns ErrNoInputFile (wrapped) when the directory has no CSV.
func DiscoverCSV(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoInputFile, dir)
	}
	sort.Strings(names)

	return filepath.Join(dir, names[0]), nil
}

// LoadFile reads one CSV file into a Dataset.
//
// Behavior:
//   - Header labels are normalized (trim + uppercase) on read.
//   - Short rows are padded with empty cells and long rows truncated, so the
//     dataset is always rectangular. Cell-level validity is the coercer's
//     concern, not the loader's.
//   - ctx is checked between rows so a canceled request stops a large read.
//
// Returns:
//   - *Dataset: the in-memory table.
//   - error: open/read failures, or an empty file (no header).
func LoadFile(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file %s", path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	ds := &Dataset{Path: path, Columns: columns}
	line := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return ds, nil
			}
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		row := make([]string, len(columns))
		copy(row, rec)
		ds.Rows = append(ds.Rows, row)
	}
}

// Load discovers the first CSV in dir and reads it. Convenience for callers
// that do not pin an explicit file path.
func Load(ctx context.Context, dir string) (*Dataset, error) {
	path, err := DiscoverCSV(dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(ctx, path)
}

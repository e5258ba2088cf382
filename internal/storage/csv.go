package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CSVLog is an append-only tabular store. The schema may grow over time:
// appending a row that carries columns the existing header does not know
// migrates the file in place (merged header plus all previous rows, padded),
// keeping previously written columns at their original positions.
type CSVLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

// Append writes one row. columns gives the preferred column order for any
// fields the existing header does not yet carry.
func (l *CSVLog) Append(row map[string]string, columns []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	header, records, err := l.readAll()
	if err != nil {
		return err
	}

	if len(header) == 0 {
		// Fresh file: the preferred order is the header.
		header = append(header, columns...)
		return l.rewrite(header, nil, row)
	}

	known := make(map[string]bool, len(header))
	for _, col := range header {
		known[col] = true
	}
	var added []string
	for _, col := range columns {
		if !known[col] {
			added = append(added, col)
			known[col] = true
		}
	}

	if len(added) == 0 {
		return l.appendRow(header, row)
	}
	return l.rewrite(append(header, added...), records, row)
}

// Rows returns the header and all rows as maps keyed by column name.
func (l *CSVLog) Rows() ([]string, []map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	header, records, err := l.readAll()
	if err != nil {
		return nil, nil, err
	}
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				m[col] = rec[i]
			}
		}
		rows = append(rows, m)
	}
	return header, rows, nil
}

func (l *CSVLog) readAll() (header []string, records [][]string, err error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("open %s: %w", filepath.Base(l.path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", filepath.Base(l.path), err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

func (l *CSVLog) appendRow(header []string, row map[string]string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(l.path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(project(header, row)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (l *CSVLog) rewrite(header []string, records [][]string, row map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp := l.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(tmp), err)
	}

	w := csv.NewWriter(f)
	werr := w.Write(header)
	for _, rec := range records {
		if werr != nil {
			break
		}
		// Pad previously written rows out to the migrated header width.
		padded := make([]string, len(header))
		copy(padded, rec)
		werr = w.Write(padded)
	}
	if werr == nil {
		werr = w.Write(project(header, row))
	}
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), werr)
	}
	return os.Rename(tmp, l.path)
}

func project(header []string, row map[string]string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		out[i] = row[col]
	}
	return out
}

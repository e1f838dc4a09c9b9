package util

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSVAtomic writes a header row plus data rows to path via a temp file
// and rename, so a crashed run never leaves a half-written artifact behind.
func WriteCSVAtomic(path string, headers []string, rows [][]string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "tmp-*.csv")
	if err != nil {
		return fmt.Errorf("create temp csv: %w", err)
	}
	w := csv.NewWriter(tmp)
	if err := w.Write(headers); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp csv: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp csv: %w", err)
	}
	return nil
}

// ReadCSV loads a CSV file into a header slice and row slices. Ragged rows
// are tolerated; callers index defensively.
func ReadCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

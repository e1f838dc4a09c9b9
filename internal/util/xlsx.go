package util

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSXSheet loads one worksheet into a header slice and row slices.
// An empty sheet name selects the workbook's first sheet; a named sheet
// that does not exist also falls back to the first sheet, which covers
// workbooks produced by other tools that rename the default sheet.
func ReadXLSXSheet(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := sheet
	if idx, err := f.GetSheetIndex(name); name == "" || err != nil || idx < 0 {
		name = f.GetSheetName(0)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

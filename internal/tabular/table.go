package tabular

import "strings"

// Provenance column names appended by extraction when metadata is requested.
// They identify where a row came from and are stripped before schema mapping.
const (
	SourcePageColumn  = "source_page"
	TableNumberColumn = "table_number"
)

// Table is one rectangular table lifted out of a document: an ordered header
// row plus ordered body rows. Cells are strings; the empty string stands for
// a missing value.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`

	// 1-based origin of the table inside the source document.
	Page  int `json:"page"`
	Index int `json:"index"`
}

// ColumnIndex returns the position of the first header matching name via
// the supplied normalizer, or -1.
func (t Table) ColumnIndex(name string, normalize func(string) string) int {
	want := normalize(name)
	for i, h := range t.Headers {
		if normalize(h) == want {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" when the row is ragged.
func (t Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// DropColumns returns a copy of t without the named header columns.
func (t Table) DropColumns(names ...string) Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	keep := make([]int, 0, len(t.Headers))
	headers := make([]string, 0, len(t.Headers))
	for i, h := range t.Headers {
		if drop[h] {
			continue
		}
		keep = append(keep, i)
		headers = append(headers, h)
	}
	rows := make([][]string, 0, len(t.Rows))
	for r := range t.Rows {
		row := make([]string, 0, len(keep))
		for _, i := range keep {
			row = append(row, t.Cell(r, i))
		}
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows, Page: t.Page, Index: t.Index}
}

// Merge concatenates tables into one, aligning columns by header name the way
// spreadsheet concatenation does: the merged header set is the union of all
// headers in first-appearance order, and rows are padded with empty cells for
// headers their source table lacks.
func Merge(tables []Table) Table {
	var headers []string
	seen := map[string]int{}
	for _, t := range tables {
		for _, h := range t.Headers {
			if _, ok := seen[h]; !ok {
				seen[h] = len(headers)
				headers = append(headers, h)
			}
		}
	}
	merged := Table{Headers: headers}
	for _, t := range tables {
		cols := make([]int, len(t.Headers))
		for i, h := range t.Headers {
			cols[i] = seen[h]
		}
		for r := range t.Rows {
			row := make([]string, len(headers))
			for i := range t.Headers {
				row[cols[i]] = t.Cell(r, i)
			}
			merged.Rows = append(merged.Rows, row)
		}
	}
	return merged
}

// RowText joins the non-empty cells of a row with single spaces, trimmed.
// Used by content-based row filters.
func RowText(row []string) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

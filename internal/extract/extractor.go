package extract

import (
	"fmt"
	"path/filepath"
	"strconv"

	"roflow/internal/tabular"
	"roflow/internal/util"

	"github.com/ledongthuc/pdf"
)

// Options controls per-extraction behavior.
type Options struct {
	// IncludeProvenance appends source_page and table_number columns
	// (1-based) to every table. They are carried for traceability and must
	// be stripped before schema mapping.
	IncludeProvenance bool
}

// Source yields the tables of a document. Cleaners depend on this interface
// rather than the concrete extractor.
type Source interface {
	ExtractFile(path string, opts Options) ([]tabular.Table, error)
}

// Extractor parses a PDF's pages and runs a Detector over each one,
// producing tables in page-then-table order.
type Extractor struct {
	detector Detector
}

func New(detector Detector) *Extractor {
	if detector == nil {
		detector = NewGeometricDetector()
	}
	return &Extractor{detector: detector}
}

// ExtractFile returns every table detected in the document. A document with
// no detectable tables at all is unprocessable and yields ErrNoTables.
func (e *Extractor) ExtractFile(path string, opts Options) ([]tabular.Table, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var tables []tabular.Table
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		words := pageWords(page)
		grids := e.detector.Tables(Page{Number: pageNum, Words: words})
		for tblIdx, grid := range grids {
			if len(grid) == 0 {
				continue
			}
			t := normalizeGrid(grid)
			t.Page = pageNum
			t.Index = tblIdx + 1
			if opts.IncludeProvenance {
				t = withProvenance(t)
			}
			tables = append(tables, t)
		}
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), util.ErrNoTables)
	}
	return tables, nil
}

// pageWords merges the page's raw text runs into words: consecutive runs on
// the same baseline with no meaningful horizontal gap belong together.
func pageWords(page pdf.Page) []Word {
	content := page.Content()
	words := make([]Word, 0, len(content.Text))
	const joinGap = 1.5
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		if n := len(words); n > 0 {
			prev := &words[n-1]
			if prev.Y == t.Y && t.X-(prev.X+prev.W) < joinGap {
				prev.Text += t.S
				prev.W = t.X + t.W - prev.X
				continue
			}
		}
		words = append(words, Word{X: t.X, Y: t.Y, W: t.W, Text: t.S})
	}
	for i := range words {
		words[i].Text = util.SanitizeText(words[i].Text)
	}
	return words
}

// normalizeGrid applies the header rules: a fully populated first row
// becomes the header and the body is padded or truncated to its width;
// otherwise generic col_N labels are synthesized at the widest row's width
// and every row, including the first, is padded to match.
func normalizeGrid(grid [][]string) tabular.Table {
	header := grid[0]
	if fullyPopulated(header) {
		width := len(header)
		rows := make([][]string, 0, len(grid)-1)
		for _, row := range grid[1:] {
			rows = append(rows, fitWidth(row, width))
		}
		return tabular.Table{Headers: append([]string(nil), header...), Rows: rows}
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	headers := make([]string, width)
	for i := range headers {
		headers[i] = "col_" + strconv.Itoa(i+1)
	}
	rows := make([][]string, 0, len(grid))
	for _, row := range grid {
		rows = append(rows, fitWidth(row, width))
	}
	return tabular.Table{Headers: headers, Rows: rows}
}

func fullyPopulated(row []string) bool {
	if len(row) == 0 {
		return false
	}
	for _, c := range row {
		if c == "" {
			return false
		}
	}
	return true
}

func fitWidth(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func withProvenance(t tabular.Table) tabular.Table {
	t.Headers = append(t.Headers, tabular.SourcePageColumn, tabular.TableNumberColumn)
	page := strconv.Itoa(t.Page)
	idx := strconv.Itoa(t.Index)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], page, idx)
	}
	return t
}

package extract

import (
	"sort"
	"strings"
)

// Word is a positioned run of text on a page, in PDF user-space coordinates
// (origin bottom-left, Y increasing upward).
type Word struct {
	X, Y, W float64
	Text    string
}

// Page holds the positioned words of one document page.
type Page struct {
	Number int
	Words  []Word
}

// Detector finds the tables on a single page and returns each as a grid of
// cell values in reading order. Splitting detection out behind an interface
// keeps the extractor testable and leaves room for a line/grid based
// detector later.
type Detector interface {
	Tables(p Page) [][][]string
}

// GeometricDetector detects tables from text positions alone: words are
// clustered into lines by Y, lines into cells by horizontal gaps, and runs
// of multi-cell lines into tables by vertical proximity. Column boundaries
// come from clustering cell start positions across the whole run.
type GeometricDetector struct {
	LineTolerance float64 // max Y delta for words on the same line
	CellGap       float64 // min X gap separating two cells
	TableGap      float64 // max Y distance between consecutive table rows
	MinColumns    int     // rows with fewer cells are not table rows
	MinRows       int     // runs shorter than this are discarded
}

func NewGeometricDetector() *GeometricDetector {
	return &GeometricDetector{
		LineTolerance: 2.0,
		CellGap:       12.0,
		TableGap:      18.0,
		MinColumns:    2,
		MinRows:       2,
	}
}

type cell struct {
	x    float64
	end  float64
	text string
}

type line struct {
	y     float64
	cells []cell
}

func (d *GeometricDetector) Tables(p Page) [][][]string {
	lines := d.buildLines(p.Words)

	// Keep only lines that look like table rows.
	rows := make([]line, 0, len(lines))
	for _, ln := range lines {
		if len(ln.cells) >= d.MinColumns {
			rows = append(rows, ln)
		}
	}
	if len(rows) < d.MinRows {
		return nil
	}

	// Split the candidate rows into vertical runs.
	var tables [][][]string
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && rows[i-1].y-rows[i].y <= d.TableGap {
			continue
		}
		if run := rows[start:i]; len(run) >= d.MinRows {
			tables = append(tables, d.gridFromRun(run))
		}
		start = i
	}
	return tables
}

// buildLines clusters words into lines ordered top to bottom, each line's
// words ordered left to right and merged into cells on gaps >= CellGap.
func (d *GeometricDetector) buildLines(words []Word) []line {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []line
	for _, w := range sorted {
		if strings.TrimSpace(w.Text) == "" {
			continue
		}
		c := cell{x: w.X, end: w.X + w.W, text: w.Text}
		if n := len(lines); n > 0 && lines[n-1].y-w.Y <= d.LineTolerance {
			lines[n-1].cells = append(lines[n-1].cells, c)
			continue
		}
		lines = append(lines, line{y: w.Y, cells: []cell{c}})
	}

	for i := range lines {
		sort.SliceStable(lines[i].cells, func(a, b int) bool {
			return lines[i].cells[a].x < lines[i].cells[b].x
		})
		lines[i].cells = d.mergeCells(lines[i].cells)
	}
	return lines
}

func (d *GeometricDetector) mergeCells(in []cell) []cell {
	if len(in) == 0 {
		return in
	}
	out := []cell{in[0]}
	for _, c := range in[1:] {
		prev := &out[len(out)-1]
		if c.x-prev.end < d.CellGap {
			prev.text += " " + c.text
			if c.end > prev.end {
				prev.end = c.end
			}
		} else {
			out = append(out, c)
		}
	}
	return out
}

// gridFromRun assigns each run cell to the nearest of the run's column
// boundaries and emits a rectangular grid.
func (d *GeometricDetector) gridFromRun(run []line) [][]string {
	var xs []float64
	for _, ln := range run {
		for _, c := range ln.cells {
			xs = append(xs, c.x)
		}
	}
	sort.Float64s(xs)
	var cols []float64
	for _, x := range xs {
		if len(cols) == 0 || x-cols[len(cols)-1] > d.CellGap*0.75 {
			cols = append(cols, x)
		}
	}

	grid := make([][]string, len(run))
	for r, ln := range run {
		row := make([]string, len(cols))
		for _, c := range ln.cells {
			idx := nearestColumn(cols, c.x)
			if row[idx] == "" {
				row[idx] = c.text
			} else {
				row[idx] += " " + c.text
			}
		}
		grid[r] = row
	}
	return grid
}

func nearestColumn(cols []float64, x float64) int {
	best := 0
	for i := range cols {
		if abs(x-cols[i]) < abs(x-cols[best]) {
			best = i
		}
	}
	return best
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

package clean

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"roflow/internal/extract"
	"roflow/internal/tabular"
	"roflow/internal/util"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// AllTablesSheet is the combined sheet written first into the rework workbook.
const AllTablesSheet = "All Tables"

var monthTokens = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug",
	"sep", "sept", "oct", "nov", "dec",
}

type SheetStats struct {
	Sheet       string `json:"sheet"`
	InitialRows int    `json:"initial_rows"`
	FinalRows   int    `json:"final_rows"`
	Restored    bool   `json:"restored,omitempty"`
}

type ReworkResult struct {
	InputFile   string       `json:"input_file"`
	OutputFile  string       `json:"output_file"`
	Tables      int          `json:"tables"`
	InitialRows int          `json:"initial_rows"`
	FinalRows   int          `json:"final_rows"`
	Sheets      []SheetStats `json:"sheets"`
}

// ReworkCleaner processes the repeat-repair report. Summary rows (totals and
// month labels) are stripped from each extracted table, and the survivors are
// written into a multi-sheet workbook with a combined sheet up front.
type ReworkCleaner struct {
	source extract.Source
	log    *zap.SugaredLogger
}

func NewReworkCleaner(source extract.Source, log *zap.SugaredLogger) *ReworkCleaner {
	return &ReworkCleaner{source: source, log: log}
}

func (c *ReworkCleaner) Clean(ctx context.Context, pdfPath, outDir string) (ReworkResult, error) {
	_ = ctx
	if err := util.EnsureDir(outDir); err != nil {
		return ReworkResult{}, err
	}

	tables, err := c.source.ExtractFile(pdfPath, extract.Options{})
	if err != nil {
		return ReworkResult{}, fmt.Errorf("rework report extraction: %w", err)
	}

	res := ReworkResult{InputFile: pdfPath, Tables: len(tables)}

	// The filter runs once over the concatenation of all tables and once per
	// individual table; each sheet carries its own restore guard.
	combined := tabular.Merge(tables)
	res.InitialRows = len(combined.Rows)
	combinedStats := SheetStats{Sheet: AllTablesSheet, InitialRows: len(combined.Rows)}
	combined.Rows = c.filterSheet(pdfPath, AllTablesSheet, combined.Rows, &combinedStats)
	res.FinalRows = len(combined.Rows)
	res.Sheets = append(res.Sheets, combinedStats)

	cleaned := make([]tabular.Table, len(tables))
	for i, t := range tables {
		stats := SheetStats{Sheet: fmt.Sprintf("Table_%d", i+1), InitialRows: len(t.Rows)}
		kept := c.filterSheet(pdfPath, stats.Sheet, t.Rows, &stats)
		cleaned[i] = tabular.Table{Headers: t.Headers, Rows: kept, Page: t.Page, Index: t.Index}
		res.Sheets = append(res.Sheets, stats)
	}

	outFile := filepath.Join(outDir, fileStem(pdfPath)+"_cleaned.xlsx")
	if err := writeWorkbook(outFile, combined, cleaned); err != nil {
		return ReworkResult{}, fmt.Errorf("write rework artifact: %w", err)
	}
	res.OutputFile = outFile

	c.log.Infow("rework report cleaned",
		"file", filepath.Base(pdfPath),
		"tables", res.Tables,
		"rows_dropped", res.InitialRows-res.FinalRows,
		"final_rows", res.FinalRows,
	)
	return res, nil
}

// filterSheet drops summary rows from one sheet's rows. A sheet reduced to
// nothing was probably all data after all; the original rows are kept and the
// restore is flagged rather than emitting an empty sheet.
func (c *ReworkCleaner) filterSheet(pdfPath, sheet string, rows [][]string, stats *SheetStats) [][]string {
	kept, _ := dropRows(rows, summaryRow)
	if len(kept) == 0 && len(rows) > 0 {
		stats.FinalRows = len(rows)
		stats.Restored = true
		c.log.Warnw("rework filter removed every row, keeping original sheet",
			"file", filepath.Base(pdfPath), "sheet", sheet)
		return rows
	}
	stats.FinalRows = len(kept)
	return kept
}

// summaryRow reports whether a row is a total or month heading rather than
// repair data. Matching is a substring test over the lowercased row text, so
// "Grand Total" and "Sept 2024" both qualify.
func summaryRow(row []string) bool {
	text := strings.ToLower(tabular.RowText(row))
	if text == "" {
		return false
	}
	if strings.Contains(text, "total") {
		return true
	}
	for _, m := range monthTokens {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func writeWorkbook(path string, combined tabular.Table, tables []tabular.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), AllTablesSheet); err != nil {
		return err
	}
	if err := writeSheet(f, AllTablesSheet, combined.Headers, combined.Rows); err != nil {
		return err
	}
	for i, t := range tables {
		name := fmt.Sprintf("Table_%d", i+1)
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeSheet(f, name, t.Headers, t.Rows); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	write := func(rowIdx int, cells []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		vals := make([]any, len(cells))
		for i, c := range cells {
			vals[i] = c
		}
		return f.SetSheetRow(sheet, cell, &vals)
	}
	if err := write(1, headers); err != nil {
		return err
	}
	for i, r := range rows {
		if err := write(i+2, r); err != nil {
			return err
		}
	}
	return nil
}

package clean

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"roflow/internal/convert"
	"roflow/internal/schema"
	"roflow/internal/util"

	"go.uber.org/zap"
)

// TechnicianStats records how many rows each cleaning step dropped.
type TechnicianStats struct {
	MissingRONo       int `json:"missing_ro_no"`
	MissingRegNo      int `json:"missing_reg_no"`
	ZeroJobs          int `json:"zero_jobs"`
	NoTechnicianOrBay int `json:"no_technician_or_bay"`
	Duplicates        int `json:"duplicates"`
	UnmeasurableTimes int `json:"unmeasurable_times"`
}

type TechnicianResult struct {
	InputFile   string          `json:"input_file"`
	OutputFile  string          `json:"output_file"`
	InitialRows int             `json:"initial_rows"`
	FinalRows   int             `json:"final_rows"`
	DroppedRows int             `json:"dropped_rows"`
	Stats       TechnicianStats `json:"statistics"`
}

// TechnicianCleaner processes the technician timesheet: the PDF goes through
// the external conversion service, the resulting workbook is filtered and
// deduplicated, and the survivors land in a {stem}_cleaned.csv artifact.
type TechnicianCleaner struct {
	converter convert.Converter
	log       *zap.SugaredLogger
}

func NewTechnicianCleaner(converter convert.Converter, log *zap.SugaredLogger) *TechnicianCleaner {
	return &TechnicianCleaner{converter: converter, log: log}
}

// Required business columns, matched by normalized label.
var technicianRequired = []string{
	"RO No", "Reg. No", "No. of Jobs", "Technician Name", "Bay",
	"P.Lead Time", "Overall Lead Time",
}

func (c *TechnicianCleaner) Clean(ctx context.Context, pdfPath, outDir string) (TechnicianResult, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return TechnicianResult{}, fmt.Errorf("technician report input: %w", err)
	}
	if err := util.EnsureDir(outDir); err != nil {
		return TechnicianResult{}, err
	}

	stem := fileStem(pdfPath)
	tempXLSX := filepath.Join(outDir, stem+"_temp.xlsx")
	if err := c.converter.ConvertToXLSX(ctx, pdfPath, tempXLSX); err != nil {
		return TechnicianResult{}, fmt.Errorf("convert technician report: %w", err)
	}
	defer os.Remove(tempXLSX)

	headers, rows, err := util.ReadXLSXSheet(tempXLSX, "")
	if err != nil {
		return TechnicianResult{}, fmt.Errorf("read converted workbook: %w", err)
	}

	cols, err := requireColumns(headers, technicianRequired)
	if err != nil {
		return TechnicianResult{}, err
	}
	roCol := cols["RO No"]
	regCol := cols["Reg. No"]
	jobsCol := cols["No. of Jobs"]
	techCol := cols["Technician Name"]
	bayCol := cols["Bay"]
	pLeadCol := cols["P.Lead Time"]
	overallCol := cols["Overall Lead Time"]

	res := TechnicianResult{InputFile: pdfPath, InitialRows: len(rows)}
	c.log.Infow("cleaning technician report", "file", filepath.Base(pdfPath), "rows", len(rows))

	rows, res.Stats.MissingRONo = dropRows(rows, func(r []string) bool {
		return blank(r, roCol)
	})
	rows, res.Stats.MissingRegNo = dropRows(rows, func(r []string) bool {
		return blank(r, regCol)
	})
	rows, res.Stats.ZeroJobs = dropRows(rows, func(r []string) bool {
		return blank(r, jobsCol) || isZero(cellAt(r, jobsCol))
	})
	rows, res.Stats.NoTechnicianOrBay = dropRows(rows, func(r []string) bool {
		return !isZero(cellAt(r, jobsCol)) && blank(r, techCol) && blank(r, bayCol)
	})
	rows, res.Stats.Duplicates = dedupeByColumn(rows, roCol)
	rows, res.Stats.UnmeasurableTimes = dropRows(rows, func(r []string) bool {
		return blank(r, pLeadCol) || blank(r, overallCol)
	})

	res.FinalRows = len(rows)
	res.DroppedRows = res.InitialRows - res.FinalRows
	c.log.Infow("technician report cleaned",
		"missing_ro_no", res.Stats.MissingRONo,
		"missing_reg_no", res.Stats.MissingRegNo,
		"zero_jobs", res.Stats.ZeroJobs,
		"no_technician_or_bay", res.Stats.NoTechnicianOrBay,
		"duplicates", res.Stats.Duplicates,
		"unmeasurable_times", res.Stats.UnmeasurableTimes,
		"final_rows", res.FinalRows,
	)

	outFile := filepath.Join(outDir, stem+"_cleaned.csv")
	if err := util.WriteCSVAtomic(outFile, headers, padRows(rows, len(headers))); err != nil {
		return TechnicianResult{}, fmt.Errorf("write technician artifact: %w", err)
	}
	res.OutputFile = outFile
	return res, nil
}

// requireColumns resolves each wanted label to a column index by normalized
// match, failing loudly on the first absentee. Missing business columns are
// never silently defaulted.
func requireColumns(headers []string, wanted []string) (map[string]int, error) {
	byKey := make(map[string]int, len(headers))
	for i, h := range headers {
		key := schema.NormalizeColumn(h)
		if _, ok := byKey[key]; !ok {
			byKey[key] = i
		}
	}
	out := make(map[string]int, len(wanted))
	for _, w := range wanted {
		idx, ok := byKey[schema.NormalizeColumn(w)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", util.ErrMissingColumn, w)
		}
		out[w] = idx
	}
	return out, nil
}

func dropRows(rows [][]string, drop func([]string) bool) ([][]string, int) {
	kept := rows[:0:0]
	for _, r := range rows {
		if !drop(r) {
			kept = append(kept, r)
		}
	}
	return kept, len(rows) - len(kept)
}

// dedupeByColumn removes later rows sharing an earlier row's key, keeping
// extraction order.
func dedupeByColumn(rows [][]string, col int) ([][]string, int) {
	seen := make(map[string]bool, len(rows))
	kept := rows[:0:0]
	for _, r := range rows {
		key := strings.TrimSpace(cellAt(r, col))
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, r)
	}
	return kept, len(rows) - len(kept)
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func blank(row []string, col int) bool {
	return strings.TrimSpace(cellAt(row, col)) == ""
}

func isZero(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f == 0
}

func padRows(rows [][]string, width int) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) >= width {
			out[i] = r[:width]
			continue
		}
		padded := make([]string, width)
		copy(padded, r)
		out[i] = padded
	}
	return out
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

package clean

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"roflow/internal/extract"
	"roflow/internal/schema"
	"roflow/internal/tabular"
	"roflow/internal/util"

	"go.uber.org/zap"
)

const canonicalDateTime = "2006-01-02 15:04:05"

type DailyResult struct {
	InputFile         string         `json:"input_file"`
	OutputFile        string         `json:"output_file"`
	TablesExtracted   int            `json:"tables_extracted"`
	InitialRows       int            `json:"initial_rows"`
	FinalRows         int            `json:"final_rows"`
	DuplicatesRemoved int            `json:"duplicates_removed"`
	StatusCounts      map[string]int `json:"status_distribution"`
}

// DailyCleaner processes the daily service report: tables come from the
// internal extractor, duplicate repair orders are collapsed, the two
// punctuality datetimes are parsed leniently, and every surviving row gains
// a derived status column.
type DailyCleaner struct {
	source extract.Source
	log    *zap.SugaredLogger
}

func NewDailyCleaner(source extract.Source, log *zap.SugaredLogger) *DailyCleaner {
	return &DailyCleaner{source: source, log: log}
}

func (c *DailyCleaner) Clean(ctx context.Context, pdfPath, outDir string) (DailyResult, error) {
	_ = ctx
	if err := util.EnsureDir(outDir); err != nil {
		return DailyResult{}, err
	}

	tables, err := c.source.ExtractFile(pdfPath, extract.Options{IncludeProvenance: true})
	if err != nil {
		return DailyResult{}, fmt.Errorf("daily report extraction: %w", err)
	}

	merged := tabular.Merge(tables)
	res := DailyResult{
		InputFile:       pdfPath,
		TablesExtracted: len(tables),
		InitialRows:     len(merged.Rows),
		StatusCounts:    map[string]int{},
	}
	merged = merged.DropColumns(tabular.SourcePageColumn, tabular.TableNumberColumn)

	roCol := merged.ColumnIndex("ro_no", schema.NormalizeColumn)
	if roCol < 0 {
		return DailyResult{}, fmt.Errorf("%w: %q", util.ErrMissingColumn, "RO No")
	}
	recvCol := merged.ColumnIndex("receiving_date_time", schema.NormalizeColumn)
	if recvCol < 0 {
		return DailyResult{}, fmt.Errorf("%w: %q", util.ErrMissingColumn, "RECEIVING_DATE_TIME")
	}
	promCol := merged.ColumnIndex("promised_date_time", schema.NormalizeColumn)
	if promCol < 0 {
		return DailyResult{}, fmt.Errorf("%w: %q", util.ErrMissingColumn, "PROMISED_DATE_TIME")
	}

	rows, dups := dedupeByColumn(merged.Rows, roCol)
	res.DuplicatesRemoved = dups

	// Parse the two datetimes (unparseable degrades to empty, never errors),
	// rewrite them canonically, and classify.
	unparseable := 0
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, len(merged.Headers)+1)
		for i := 0; i < len(merged.Headers) && i < len(r); i++ {
			row[i] = r[i]
		}

		receiving, recvOK := parseLenient(cellAt(r, recvCol))
		promised, promOK := parseLenient(cellAt(r, promCol))
		if strings.TrimSpace(cellAt(r, recvCol)) != "" && !recvOK {
			unparseable++
		}
		if strings.TrimSpace(cellAt(r, promCol)) != "" && !promOK {
			unparseable++
		}
		row[recvCol] = formatLenient(receiving)
		row[promCol] = formatLenient(promised)

		status := ClassifyStatus(receiving, promised)
		row[len(row)-1] = string(status)
		res.StatusCounts[string(status)]++
		out = append(out, row)
	}
	if unparseable > 0 {
		c.log.Warnw("daily report datetimes degraded to null", "file", filepath.Base(pdfPath), "values", unparseable)
	}

	res.FinalRows = len(out)
	c.log.Infow("daily report cleaned",
		"file", filepath.Base(pdfPath),
		"tables", res.TablesExtracted,
		"duplicates_removed", dups,
		"final_rows", res.FinalRows,
		"status_distribution", res.StatusCounts,
	)

	headers := append(append([]string(nil), merged.Headers...), "status")
	outFile := filepath.Join(outDir, fileStem(pdfPath)+"_cleaned.csv")
	if err := util.WriteCSVAtomic(outFile, headers, out); err != nil {
		return DailyResult{}, fmt.Errorf("write daily artifact: %w", err)
	}
	res.OutputFile = outFile
	return res, nil
}

func parseLenient(s string) (*time.Time, bool) {
	t, ok := schema.ParseDateTime(s)
	if !ok {
		return nil, false
	}
	return &t, true
}

func formatLenient(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(canonicalDateTime)
}

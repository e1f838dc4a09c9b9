// Package dbsync loads cleaned report artifacts into the report tables.
// Reading an artifact back from disk rather than piping cleaner output
// straight to the database keeps the two stages independently retryable.
package dbsync

import (
	"context"
	"fmt"
	"path/filepath"

	"roflow/internal/clean"
	"roflow/internal/models"
	"roflow/internal/schema"
	"roflow/internal/util"

	"go.uber.org/zap"
)

// Repository is the subset of the report store the syncer needs.
type Repository interface {
	InsertTechnicianReports(ctx context.Context, records []schema.Record) (models.TableLoad, error)
	InsertDailyCPUSReports(ctx context.Context, records []schema.Record) (models.TableLoad, error)
	UpsertRepeatRepairs(ctx context.Context, rows []models.RepeatRepair) (models.TableLoad, error)
}

type SyncResult struct {
	Loads []models.TableLoad `json:"loads"`
}

func (r SyncResult) TotalRows() int64 {
	var n int64
	for _, l := range r.Loads {
		n += l.RowsInserted
	}
	return n
}

type Syncer struct {
	repo Repository
	log  *zap.SugaredLogger
}

func NewSyncer(repo Repository, log *zap.SugaredLogger) *Syncer {
	return &Syncer{repo: repo, log: log}
}

// SyncTechnicianCSV loads a cleaned technician report artifact.
func (s *Syncer) SyncTechnicianCSV(ctx context.Context, path string) (models.TableLoad, error) {
	headers, rows, err := util.ReadCSV(path)
	if err != nil {
		return models.TableLoad{}, fmt.Errorf("read technician artifact: %w", err)
	}
	records := schema.BuildRecords(schema.TechnicianReportColumns, headers, rows)
	load, err := s.repo.InsertTechnicianReports(ctx, records)
	if err != nil {
		return load, err
	}
	s.log.Infow("technician report loaded",
		"file", filepath.Base(path), "rows", load.RowsInserted, "statements", load.Statements)
	return load, nil
}

// SyncDailyCSV loads a cleaned daily CPUS report artifact.
func (s *Syncer) SyncDailyCSV(ctx context.Context, path string) (models.TableLoad, error) {
	headers, rows, err := util.ReadCSV(path)
	if err != nil {
		return models.TableLoad{}, fmt.Errorf("read daily artifact: %w", err)
	}
	records := schema.BuildRecords(schema.DailyCPUSReportColumns, headers, rows)
	load, err := s.repo.InsertDailyCPUSReports(ctx, records)
	if err != nil {
		return load, err
	}
	s.log.Infow("daily report loaded",
		"file", filepath.Base(path), "rows", load.RowsInserted, "statements", load.Statements)
	return load, nil
}

// SyncRepeatRepairXLSX loads a cleaned repeat-repair workbook. The combined
// sheet is preferred; a workbook without one falls back to its first sheet.
func (s *Syncer) SyncRepeatRepairXLSX(ctx context.Context, path string) (models.TableLoad, error) {
	headers, rows, err := util.ReadXLSXSheet(path, clean.AllTablesSheet)
	if err != nil {
		return models.TableLoad{}, fmt.Errorf("read repeat repair artifact: %w", err)
	}
	parsed, skipped := ParseRepeatRepairs(headers, rows)
	if skipped > 0 {
		s.log.Warnw("repeat repair rows skipped", "file", filepath.Base(path), "skipped", skipped)
	}
	load, err := s.repo.UpsertRepeatRepairs(ctx, parsed)
	if err != nil {
		return load, err
	}
	s.log.Infow("repeat repair report loaded",
		"file", filepath.Base(path), "rows", load.RowsInserted)
	return load, nil
}

// SyncAll loads every artifact it is given; empty paths are skipped. All
// loads are attempted even when an earlier one fails.
func (s *Syncer) SyncAll(ctx context.Context, technicianCSV, dailyCSV, repeatXLSX string) (SyncResult, error) {
	var res SyncResult
	var errs []error
	if technicianCSV != "" {
		load, err := s.SyncTechnicianCSV(ctx, technicianCSV)
		res.Loads = append(res.Loads, load)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if dailyCSV != "" {
		load, err := s.SyncDailyCSV(ctx, dailyCSV)
		res.Loads = append(res.Loads, load)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if repeatXLSX != "" {
		load, err := s.SyncRepeatRepairXLSX(ctx, repeatXLSX)
		res.Loads = append(res.Loads, load)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return res, fmt.Errorf("sync finished with %d failures: %w", len(errs), errs[0])
	}
	return res, nil
}

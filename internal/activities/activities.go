package activities

import (
	"context"

	"roflow/internal/clean"
	"roflow/internal/config"
	"roflow/internal/convert"
	"roflow/internal/dbsync"
	"roflow/internal/extract"
	"roflow/internal/storage"

	"go.uber.org/zap"
)

type Activities struct {
	cfg        config.Config
	technician *clean.TechnicianCleaner
	daily      *clean.DailyCleaner
	rework     *clean.ReworkCleaner
	syncer     *dbsync.Syncer
}

func New(cfg config.Config, db *storage.DB, log *zap.SugaredLogger) *Activities {
	converter := convert.NewAPIConverter(cfg.ConvertAPIBase, cfg.ConvertAPIToken)
	source := extract.New(nil)
	repo := storage.NewReportRepo(db, cfg.InsertChunkSize)
	return &Activities{
		cfg:        cfg,
		technician: clean.NewTechnicianCleaner(converter, log),
		daily:      clean.NewDailyCleaner(source, log),
		rework:     clean.NewReworkCleaner(source, log),
		syncer:     dbsync.NewSyncer(repo, log),
	}
}

func (a *Activities) ProcessTechnicianActivity(ctx context.Context, in ProcessTechnicianInput) (ProcessTechnicianOutput, error) {
	res, err := a.technician.Clean(ctx, in.PDFPath, a.outDir(in.OutDir))
	if err != nil {
		return ProcessTechnicianOutput{}, err
	}
	return ProcessTechnicianOutput{Result: res}, nil
}

func (a *Activities) ProcessDailyActivity(ctx context.Context, in ProcessDailyInput) (ProcessDailyOutput, error) {
	res, err := a.daily.Clean(ctx, in.PDFPath, a.outDir(in.OutDir))
	if err != nil {
		return ProcessDailyOutput{}, err
	}
	return ProcessDailyOutput{Result: res}, nil
}

func (a *Activities) ProcessReworkActivity(ctx context.Context, in ProcessReworkInput) (ProcessReworkOutput, error) {
	res, err := a.rework.Clean(ctx, in.PDFPath, a.outDir(in.OutDir))
	if err != nil {
		return ProcessReworkOutput{}, err
	}
	return ProcessReworkOutput{Result: res}, nil
}

func (a *Activities) SyncDatabaseActivity(ctx context.Context, in SyncDatabaseInput) (SyncDatabaseOutput, error) {
	res, err := a.syncer.SyncAll(ctx, in.TechnicianCSV, in.DailyCSV, in.RepeatXLSX)
	if err != nil {
		return SyncDatabaseOutput{Result: res}, err
	}
	return SyncDatabaseOutput{Result: res}, nil
}

func (a *Activities) outDir(dir string) string {
	if dir != "" {
		return dir
	}
	return a.cfg.CleanedRoot
}

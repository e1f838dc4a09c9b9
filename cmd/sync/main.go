package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"roflow/internal/config"
	"roflow/internal/dbsync"
	"roflow/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Discovers the newest cleaned artifact per report category in a folder and
// loads them into Postgres. Meant for operators re-running a load without
// going through the workflow.
func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	dir := flag.String("dir", cfg.CleanedRoot, "directory holding cleaned artifacts")
	keep := flag.Bool("keep", false, "keep artifacts after a successful load")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.IngestTimeoutSecs)*time.Second)
	defer cancel()

	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	technicianCSV, dailyCSV, repeatXLSX, err := discover(*dir)
	if err != nil {
		log.Fatal(err)
	}
	if technicianCSV == "" && dailyCSV == "" && repeatXLSX == "" {
		logger.Infow("no cleaned artifacts found", "dir", *dir)
		return
	}
	logger.Infow("artifacts discovered",
		"technician", technicianCSV, "daily", dailyCSV, "repeat", repeatXLSX)

	syncer := dbsync.NewSyncer(storage.NewReportRepo(db, cfg.InsertChunkSize), logger)
	res, err := syncer.SyncAll(ctx, technicianCSV, dailyCSV, repeatXLSX)
	if err != nil {
		log.Fatal(err)
	}
	logger.Infow("sync complete", "rows", res.TotalRows())

	if !*keep {
		for _, p := range []string{technicianCSV, dailyCSV, repeatXLSX} {
			if p == "" {
				continue
			}
			if err := os.Remove(p); err != nil {
				logger.Warnw("could not remove artifact", "path", p, "error", err)
			}
		}
	}
}

// discover picks the lexically latest cleaned artifact per category. Stems
// carry the upload timestamp, so lexical order is chronological order.
func discover(dir string) (technicianCSV, dailyCSV, repeatXLSX string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", "", err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		lower := strings.ToLower(name)
		full := filepath.Join(dir, name)
		switch {
		case strings.HasSuffix(lower, "_cleaned.csv") && strings.Contains(lower, "technician"):
			technicianCSV = full
		case strings.HasSuffix(lower, "_cleaned.csv") && strings.Contains(lower, "daily"):
			dailyCSV = full
		case strings.HasSuffix(lower, "_cleaned.xlsx") && (strings.Contains(lower, "repeat") || strings.Contains(lower, "rework")):
			repeatXLSX = full
		}
	}
	return technicianCSV, dailyCSV, repeatXLSX, nil
}

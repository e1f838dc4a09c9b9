package workflows

import (
	"roflow/internal/clean"
	"roflow/internal/dbsync"
)

// ReportIngestInput names the uploaded PDFs for one ingestion run. Any path
// may be empty; its stage is skipped. Every report that is provided counts
// toward the run's success.
type ReportIngestInput struct {
	TechnicianPDF string `json:"technician_pdf,omitempty"`
	DailyPDF      string `json:"daily_pdf,omitempty"`
	ReworkPDF     string `json:"rework_pdf,omitempty"`
	OutDir        string `json:"out_dir,omitempty"`
	SyncDatabase  bool   `json:"sync_database"`
}

type ReportIngestResult struct {
	Success    bool                    `json:"success"`
	Technician *clean.TechnicianResult `json:"technician,omitempty"`
	Daily      *clean.DailyResult      `json:"daily,omitempty"`
	Rework     *clean.ReworkResult     `json:"rework,omitempty"`
	Sync       *dbsync.SyncResult      `json:"sync,omitempty"`
	Errors     []string                `json:"errors,omitempty"`
}

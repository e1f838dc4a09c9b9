package activities

import (
	"roflow/internal/clean"
	"roflow/internal/dbsync"
)

type ProcessTechnicianInput struct {
	PDFPath string `json:"pdf_path"`
	OutDir  string `json:"out_dir"`
}

type ProcessTechnicianOutput struct {
	Result clean.TechnicianResult `json:"result"`
}

type ProcessDailyInput struct {
	PDFPath string `json:"pdf_path"`
	OutDir  string `json:"out_dir"`
}

type ProcessDailyOutput struct {
	Result clean.DailyResult `json:"result"`
}

type ProcessReworkInput struct {
	PDFPath string `json:"pdf_path"`
	OutDir  string `json:"out_dir"`
}

type ProcessReworkOutput struct {
	Result clean.ReworkResult `json:"result"`
}

type SyncDatabaseInput struct {
	TechnicianCSV string `json:"technician_csv,omitempty"`
	DailyCSV      string `json:"daily_csv,omitempty"`
	RepeatXLSX    string `json:"repeat_xlsx,omitempty"`
}

type SyncDatabaseOutput struct {
	Result dbsync.SyncResult `json:"result"`
}

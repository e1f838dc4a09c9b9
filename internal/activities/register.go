package activities

import "go.temporal.io/sdk/worker"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivity(a.ProcessTechnicianActivity)
	w.RegisterActivity(a.ProcessDailyActivity)
	w.RegisterActivity(a.ProcessReworkActivity)
	w.RegisterActivity(a.SyncDatabaseActivity)
}

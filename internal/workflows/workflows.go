package workflows

import (
	"time"

	"roflow/internal/activities"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const QueryGetIngestProgress = "GetIngestProgress"

type IngestProgress struct {
	Stage  string   `json:"stage"`
	Errors []string `json:"errors,omitempty"`
}

// ReportIngestWorkflow cleans each uploaded report in turn and optionally
// loads the artifacts into Postgres. Stages are independent: a failed report
// is recorded and the remaining reports still run.
func ReportIngestWorkflow(ctx workflow.Context, input ReportIngestInput) (ReportIngestResult, error) {
	progress := IngestProgress{Stage: "starting"}
	if err := workflow.SetQueryHandler(ctx, QueryGetIngestProgress, func() (IngestProgress, error) {
		return progress, nil
	}); err != nil {
		return ReportIngestResult{}, err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	result := ReportIngestResult{Success: true}
	fail := func(stage string, err error) {
		progress.Errors = append(progress.Errors, stage+": "+err.Error())
		result.Errors = append(result.Errors, stage+": "+err.Error())
	}

	if input.TechnicianPDF != "" {
		progress.Stage = "technician"
		var out activities.ProcessTechnicianOutput
		err := workflow.ExecuteActivity(ctx, "ProcessTechnicianActivity", activities.ProcessTechnicianInput{
			PDFPath: input.TechnicianPDF, OutDir: input.OutDir,
		}).Get(ctx, &out)
		if err != nil {
			fail("technician", err)
			result.Success = false
		} else {
			result.Technician = &out.Result
		}
	}

	if input.DailyPDF != "" {
		progress.Stage = "daily"
		var out activities.ProcessDailyOutput
		err := workflow.ExecuteActivity(ctx, "ProcessDailyActivity", activities.ProcessDailyInput{
			PDFPath: input.DailyPDF, OutDir: input.OutDir,
		}).Get(ctx, &out)
		if err != nil {
			fail("daily", err)
			result.Success = false
		} else {
			result.Daily = &out.Result
		}
	}

	if input.ReworkPDF != "" {
		progress.Stage = "rework"
		var out activities.ProcessReworkOutput
		err := workflow.ExecuteActivity(ctx, "ProcessReworkActivity", activities.ProcessReworkInput{
			PDFPath: input.ReworkPDF, OutDir: input.OutDir,
		}).Get(ctx, &out)
		if err != nil {
			fail("rework", err)
			result.Success = false
		} else {
			result.Rework = &out.Result
		}
	}

	if input.SyncDatabase {
		progress.Stage = "sync"
		in := activities.SyncDatabaseInput{}
		if result.Technician != nil {
			in.TechnicianCSV = result.Technician.OutputFile
		}
		if result.Daily != nil {
			in.DailyCSV = result.Daily.OutputFile
		}
		if result.Rework != nil {
			in.RepeatXLSX = result.Rework.OutputFile
		}
		var out activities.SyncDatabaseOutput
		err := workflow.ExecuteActivity(ctx, "SyncDatabaseActivity", in).Get(ctx, &out)
		if err != nil {
			fail("sync", err)
			result.Success = false
		} else {
			result.Sync = &out.Result
		}
	}

	progress.Stage = "done"
	return result, nil
}

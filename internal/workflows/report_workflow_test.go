package workflows

import (
	"context"
	"errors"
	"testing"

	"roflow/internal/activities"
	"roflow/internal/clean"
	"roflow/internal/dbsync"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
)

func registerActivityName[T any](env *testsuite.TestWorkflowEnvironment, name string, fn T) {
	env.RegisterActivityWithOptions(fn, activity.RegisterOptions{Name: name})
}

func newIngestEnv() *testsuite.TestWorkflowEnvironment {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(ReportIngestWorkflow)
	registerActivityName(env, "ProcessTechnicianActivity", func(context.Context, activities.ProcessTechnicianInput) (activities.ProcessTechnicianOutput, error) {
		return activities.ProcessTechnicianOutput{}, nil
	})
	registerActivityName(env, "ProcessDailyActivity", func(context.Context, activities.ProcessDailyInput) (activities.ProcessDailyOutput, error) {
		return activities.ProcessDailyOutput{}, nil
	})
	registerActivityName(env, "ProcessReworkActivity", func(context.Context, activities.ProcessReworkInput) (activities.ProcessReworkOutput, error) {
		return activities.ProcessReworkOutput{}, nil
	})
	registerActivityName(env, "SyncDatabaseActivity", func(context.Context, activities.SyncDatabaseInput) (activities.SyncDatabaseOutput, error) {
		return activities.SyncDatabaseOutput{}, nil
	})
	return env
}

func TestReportIngestWorkflowAllStages(t *testing.T) {
	env := newIngestEnv()
	env.OnActivity("ProcessTechnicianActivity", mock.Anything, activities.ProcessTechnicianInput{PDFPath: "/in/tech.pdf", OutDir: "/out"}).
		Return(activities.ProcessTechnicianOutput{Result: clean.TechnicianResult{OutputFile: "/out/tech_cleaned.csv", FinalRows: 10}}, nil)
	env.OnActivity("ProcessDailyActivity", mock.Anything, activities.ProcessDailyInput{PDFPath: "/in/daily.pdf", OutDir: "/out"}).
		Return(activities.ProcessDailyOutput{Result: clean.DailyResult{OutputFile: "/out/daily_cleaned.csv", FinalRows: 20}}, nil)
	env.OnActivity("ProcessReworkActivity", mock.Anything, activities.ProcessReworkInput{PDFPath: "/in/rework.pdf", OutDir: "/out"}).
		Return(activities.ProcessReworkOutput{Result: clean.ReworkResult{OutputFile: "/out/rework_cleaned.xlsx"}}, nil)
	env.OnActivity("SyncDatabaseActivity", mock.Anything, activities.SyncDatabaseInput{
		TechnicianCSV: "/out/tech_cleaned.csv",
		DailyCSV:      "/out/daily_cleaned.csv",
		RepeatXLSX:    "/out/rework_cleaned.xlsx",
	}).Return(activities.SyncDatabaseOutput{Result: dbsync.SyncResult{}}, nil)

	env.ExecuteWorkflow(ReportIngestWorkflow, ReportIngestInput{
		TechnicianPDF: "/in/tech.pdf",
		DailyPDF:      "/in/daily.pdf",
		ReworkPDF:     "/in/rework.pdf",
		OutDir:        "/out",
		SyncDatabase:  true,
	})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result ReportIngestResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.True(t, result.Success)
	require.Empty(t, result.Errors)
	require.Equal(t, 10, result.Technician.FinalRows)
	require.Equal(t, 20, result.Daily.FinalRows)
	require.NotNil(t, result.Sync)
}

func TestReportIngestWorkflowDailyFailureStillRunsRest(t *testing.T) {
	env := newIngestEnv()
	env.OnActivity("ProcessTechnicianActivity", mock.Anything, mock.Anything).
		Return(activities.ProcessTechnicianOutput{Result: clean.TechnicianResult{OutputFile: "/out/tech_cleaned.csv"}}, nil)
	env.OnActivity("ProcessDailyActivity", mock.Anything, mock.Anything).
		Return(activities.ProcessDailyOutput{}, errors.New("no tables detected"))
	env.OnActivity("ProcessReworkActivity", mock.Anything, mock.Anything).
		Return(activities.ProcessReworkOutput{Result: clean.ReworkResult{OutputFile: "/out/rework_cleaned.xlsx"}}, nil)
	env.OnActivity("SyncDatabaseActivity", mock.Anything, activities.SyncDatabaseInput{
		TechnicianCSV: "/out/tech_cleaned.csv",
		RepeatXLSX:    "/out/rework_cleaned.xlsx",
	}).Return(activities.SyncDatabaseOutput{}, nil)

	env.ExecuteWorkflow(ReportIngestWorkflow, ReportIngestInput{
		TechnicianPDF: "/in/tech.pdf",
		DailyPDF:      "/in/daily.pdf",
		ReworkPDF:     "/in/rework.pdf",
		SyncDatabase:  true,
	})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result ReportIngestResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "daily")
	require.Nil(t, result.Daily)
	require.NotNil(t, result.Technician)
	require.NotNil(t, result.Rework)
}

func TestReportIngestWorkflowReworkFailureFailsRun(t *testing.T) {
	env := newIngestEnv()
	env.OnActivity("ProcessReworkActivity", mock.Anything, mock.Anything).
		Return(activities.ProcessReworkOutput{}, errors.New("no tables detected"))

	env.ExecuteWorkflow(ReportIngestWorkflow, ReportIngestInput{ReworkPDF: "/in/rework.pdf"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result ReportIngestResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "rework")
	require.Nil(t, result.Rework)
}

func TestReportIngestWorkflowSkipsMissingReports(t *testing.T) {
	env := newIngestEnv()
	env.OnActivity("ProcessDailyActivity", mock.Anything, mock.Anything).
		Return(activities.ProcessDailyOutput{Result: clean.DailyResult{FinalRows: 5}}, nil)

	env.ExecuteWorkflow(ReportIngestWorkflow, ReportIngestInput{DailyPDF: "/in/daily.pdf"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result ReportIngestResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.True(t, result.Success)
	require.Nil(t, result.Technician)
	require.Nil(t, result.Sync)
	require.Equal(t, 5, result.Daily.FinalRows)
}

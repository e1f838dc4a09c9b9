package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"roflow/internal/config"
	"roflow/internal/workflows"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	technician := flag.String("technician", "", "technician report PDF path")
	daily := flag.String("daily", "", "daily CPUS report PDF path")
	rework := flag.String("rework", "", "repeat repair report PDF path")
	outDir := flag.String("out", cfg.CleanedRoot, "directory for cleaned artifacts")
	sync := flag.Bool("sync", false, "load cleaned artifacts into postgres")
	wait := flag.Bool("wait", true, "block until the workflow completes")
	flag.Parse()

	if *technician == "" && *daily == "" && *rework == "" {
		fmt.Fprintln(os.Stderr, "at least one of -technician, -daily, -rework is required")
		flag.Usage()
		os.Exit(2)
	}

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.IngestTimeoutSecs)*time.Second)
	defer cancel()

	workflowID := "report-ingest-" + uuid.NewString()
	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: cfg.TemporalTaskQueue,
	}, workflows.ReportIngestWorkflow, workflows.ReportIngestInput{
		TechnicianPDF: *technician,
		DailyPDF:      *daily,
		ReworkPDF:     *rework,
		OutDir:        *outDir,
		SyncDatabase:  *sync,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("started workflow id=%s run=%s", run.GetID(), run.GetRunID())

	if !*wait {
		desc, err := c.DescribeWorkflowExecution(ctx, run.GetID(), run.GetRunID())
		if err != nil {
			log.Fatal(err)
		}
		status := desc.GetWorkflowExecutionInfo().GetStatus()
		if status == enumspb.WORKFLOW_EXECUTION_STATUS_RUNNING {
			log.Printf("workflow running in background id=%s", run.GetID())
		} else {
			log.Printf("workflow status: %s", status)
		}
		return
	}
	var result workflows.ReportIngestResult
	if err := run.Get(ctx, &result); err != nil {
		log.Fatal(err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
	if !result.Success {
		os.Exit(1)
	}
}

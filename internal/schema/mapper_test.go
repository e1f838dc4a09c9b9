package schema

import "testing"

func TestMapColumnsNormalizedEquality(t *testing.T) {
	source := []string{"RO No", "No. of\nJobs", "Technician Name", "Unrelated"}
	m := MapColumns([]string{"ro_no", "no_of_jobs", "technician_name", "bay"}, source)

	if m["ro_no"] != "RO No" {
		t.Fatalf("ro_no mapped to %q", m["ro_no"])
	}
	if m["no_of_jobs"] != "No. of\nJobs" {
		t.Fatalf("no_of_jobs mapped to %q", m["no_of_jobs"])
	}
	if _, ok := m["bay"]; ok {
		t.Fatal("bay should be unmapped")
	}
}

func TestMapColumnsAliasBeatsEquality(t *testing.T) {
	// The misspelled source header must satisfy the correctly spelled field.
	m := MapColumns([]string{"service_advisor_name"}, []string{"SERVICE_AVISOR_NAME"})
	if m["service_advisor_name"] != "SERVICE_AVISOR_NAME" {
		t.Fatalf("alias not applied: %+v", m)
	}
}

func TestMapColumnsFirstSourceWins(t *testing.T) {
	m := MapColumns([]string{"reg_no"}, []string{"Reg. No", "REG NO"})
	if m["reg_no"] != "Reg. No" {
		t.Fatalf("expected first duplicate to win, got %q", m["reg_no"])
	}
}

func TestBuildRecords(t *testing.T) {
	headers := []string{"RO No", "Bay"}
	rows := [][]string{
		{" 237270 ", "B1"},
		{"", "B2"},
		{"555"},
	}
	recs := BuildRecords([]string{"ro_no", "bay", "remarks"}, headers, rows)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records got %d", len(recs))
	}
	if recs[0].StringField("ro_no") != "237270" {
		t.Fatalf("expected trimmed value, got %q", recs[0].StringField("ro_no"))
	}
	if recs[0]["remarks"] != nil {
		t.Fatal("unmapped field must be nil")
	}
	if recs[1]["ro_no"] != nil {
		t.Fatal("blank cell must be nil")
	}
	if recs[2].StringField("bay") != "" {
		t.Fatal("short row must read as null")
	}
}

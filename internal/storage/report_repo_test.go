package storage

import (
	"testing"
	"time"
)

func TestInsertStatement(t *testing.T) {
	got := insertStatement("t", []string{"a", "b"}, 2)
	want := "INSERT INTO t (a, b) VALUES ($1, $2), ($3, $4)"
	if got != want {
		t.Fatalf("insertStatement = %q, want %q", got, want)
	}
}

func TestTechnicianValue(t *testing.T) {
	if v := technicianValue("ro_no", "237270.0"); v != "237270" {
		t.Fatalf("ro_no = %v", v)
	}
	if v := technicianValue("creation_time", "9:05 PM"); v != "21:05:00" {
		t.Fatalf("creation_time = %v", v)
	}
	if v := technicianValue("creation_time", "not a time"); v != nil {
		t.Fatalf("bad clock should be nil, got %v", v)
	}
	if v := technicianValue("mileage", "12000"); v != int64(12000) {
		t.Fatalf("mileage = %v", v)
	}
	if v := technicianValue("mileage", "12,000"); v != nil {
		t.Fatalf("dirty mileage should be nil, got %v", v)
	}
	if v := technicianValue("remarks", " ok "); v != "ok" {
		t.Fatalf("remarks = %v", v)
	}
	if v := technicianValue("remarks", "  "); v != nil {
		t.Fatalf("blank should be nil, got %v", v)
	}
}

func TestDailyValue(t *testing.T) {
	if v := dailyValue("service_date", "01/03/2024"); v == nil {
		t.Fatal("service_date should parse")
	} else if ts := v.(time.Time); ts.Month() != time.March {
		t.Fatalf("service_date = %v", ts)
	}
	if v := dailyValue("receiving_date_time", "2024-03-01 08:30:00.000"); v == nil {
		t.Fatal("receiving_date_time should parse")
	}
	if v := dailyValue("labour_sales", "1234.50"); v != "1234.5" {
		t.Fatalf("labour_sales = %v", v)
	}
	if v := dailyValue("odometer_reading", "3.0"); v != nil {
		t.Fatalf("float odometer should be nil, got %v", v)
	}
	if v := dailyValue("status", "On-time"); v != "On-time" {
		t.Fatalf("status = %v", v)
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (x INT);\n\nCREATE INDEX i ON a (x);\n")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements got %d", len(stmts))
	}
}

func TestEmbeddedSchemaStatements(t *testing.T) {
	stmts := splitStatements(schemaSQL)
	if len(stmts) < 5 {
		t.Fatalf("expected report tables and indexes, got %d statements", len(stmts))
	}
}

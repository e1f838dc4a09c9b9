package storage

import (
	"context"
	"fmt"
	"strings"

	"roflow/internal/models"
	"roflow/internal/schema"
)

const defaultChunkSize = 500

// ReportRepo loads cleaned report records into Postgres. Each table load runs
// in its own transaction so one report failing does not roll back another.
type ReportRepo struct {
	db        *DB
	chunkSize int
}

func NewReportRepo(db *DB, chunkSize int) *ReportRepo {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &ReportRepo{db: db, chunkSize: chunkSize}
}

func (r *ReportRepo) InsertTechnicianReports(ctx context.Context, records []schema.Record) (models.TableLoad, error) {
	return r.bulkInsert(ctx, schema.TechnicianReportsTable, schema.TechnicianReportColumns, records, technicianValue)
}

func (r *ReportRepo) InsertDailyCPUSReports(ctx context.Context, records []schema.Record) (models.TableLoad, error) {
	return r.bulkInsert(ctx, schema.DailyCPUSReportsTable, schema.DailyCPUSReportColumns, records, dailyValue)
}

func (r *ReportRepo) UpsertRepeatRepairs(ctx context.Context, rows []models.RepeatRepair) (models.TableLoad, error) {
	load := models.TableLoad{Table: schema.RepeatRepairsTable}
	if len(rows) == 0 {
		return load, nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return load, fmt.Errorf("begin repeat repair load: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rr := range rows {
		tag, err := tx.Exec(ctx, `
INSERT INTO repeat_repairs (date, total_vehicle_delivered, repeat_repair_count, repeat_repair_percentage, updated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (date)
DO UPDATE SET
  total_vehicle_delivered = EXCLUDED.total_vehicle_delivered,
  repeat_repair_count = EXCLUDED.repeat_repair_count,
  repeat_repair_percentage = EXCLUDED.repeat_repair_percentage,
  updated_at = NOW()`,
			rr.Date, rr.TotalDelivered, rr.RepeatCount, rr.RepeatPercentage.String(),
		)
		if err != nil {
			return load, fmt.Errorf("upsert repeat repair %s: %w", rr.Date.Format("2006-01-02"), err)
		}
		load.RowsInserted += tag.RowsAffected()
		load.Statements++
	}
	if err := tx.Commit(ctx); err != nil {
		return load, fmt.Errorf("commit repeat repair load: %w", err)
	}
	return load, nil
}

func (r *ReportRepo) bulkInsert(ctx context.Context, table string, cols []string, records []schema.Record, value func(col, raw string) any) (models.TableLoad, error) {
	load := models.TableLoad{Table: table}
	if len(records) == 0 {
		return load, nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return load, fmt.Errorf("begin %s load: %w", table, err)
	}
	defer tx.Rollback(ctx)

	for start := 0; start < len(records); start += r.chunkSize {
		end := start + r.chunkSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]
		args := make([]any, 0, len(batch)*len(cols))
		for _, rec := range batch {
			for _, col := range cols {
				args = append(args, value(col, rec.StringField(col)))
			}
		}
		tag, err := tx.Exec(ctx, insertStatement(table, cols, len(batch)), args...)
		if err != nil {
			return load, fmt.Errorf("insert %s rows %d-%d: %w", table, start, end, err)
		}
		load.RowsInserted += tag.RowsAffected()
		load.Statements++
	}
	if err := tx.Commit(ctx); err != nil {
		return load, fmt.Errorf("commit %s load: %w", table, err)
	}
	return load, nil
}

// insertStatement builds a multi-row INSERT with positional placeholders.
func insertStatement(table string, cols []string, nRows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES ")
	p := 1
	for row := 0; row < nRows; row++ {
		if row > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := range cols {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", p)
			p++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// technicianValue coerces one technician report cell for its column. Values
// that fail coercion load as NULL rather than failing the batch.
func technicianValue(col, raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	switch {
	case col == "ro_no":
		return schema.CleanRONumber(raw)
	case schema.TechnicianClockColumns[col]:
		if v, ok := schema.ParseClock(raw); ok {
			return v
		}
		return nil
	case schema.TechnicianIntColumns[col]:
		if n, ok := schema.ParseInt(raw); ok {
			return n
		}
		return nil
	default:
		return raw
	}
}

func dailyValue(col, raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	switch {
	case col == "ro_no":
		return schema.CleanRONumber(raw)
	case schema.DailyDateColumns[col]:
		if t, ok := schema.ParseDate(raw); ok {
			return t
		}
		return nil
	case schema.DailyDateTimeColumns[col]:
		if t, ok := schema.ParseDateTime(raw); ok {
			return t
		}
		return nil
	case schema.DailyCurrencyColumns[col]:
		if d, ok := schema.ParseDecimal(raw); ok {
			return d.String()
		}
		return nil
	case schema.DailyIntColumns[col]:
		if n, ok := schema.ParseInt(raw); ok {
			return n
		}
		return nil
	default:
		return raw
	}
}

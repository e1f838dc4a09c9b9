package dbsync

import (
	"strings"

	"roflow/internal/models"
	"roflow/internal/schema"

	"github.com/shopspring/decimal"
)

// Header labels accepted for each repeat-repair field, compared after
// normalization. Upstream workbooks are inconsistent about the date label.
var repeatHeaderCandidates = map[string][]string{
	"date":                     {"date", "service_date"},
	"total_vehicle_delivered":  {"total_vehicle_delivered", "total_vehicles_delivered"},
	"repeat_repair_count":      {"repeat_repair_count", "repeat_repairs"},
	"repeat_repair_percentage": {"repeat_repair_percentage", "repeat_repair_%age", "repeat_repair_pct"},
}

// ParseRepeatRepairs turns combined-sheet rows into daily repeat-repair
// entries. Rows without a parseable date are skipped and counted; missing
// counts load as null and a missing percentage defaults to zero.
func ParseRepeatRepairs(headers []string, rows [][]string) ([]models.RepeatRepair, int) {
	idx := map[string]int{}
	for field, candidates := range repeatHeaderCandidates {
		idx[field] = findHeader(headers, candidates)
	}

	out := make([]models.RepeatRepair, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		date, ok := schema.ParseDate(cell(row, idx["date"]))
		if !ok {
			skipped++
			continue
		}
		rr := models.RepeatRepair{Date: date, RepeatPercentage: decimal.Zero}
		if n, ok := schema.ParseInt(cell(row, idx["total_vehicle_delivered"])); ok {
			rr.TotalDelivered = &n
		}
		if n, ok := schema.ParseInt(cell(row, idx["repeat_repair_count"])); ok {
			rr.RepeatCount = &n
		}
		if d, ok := schema.ParseDecimal(cell(row, idx["repeat_repair_percentage"])); ok {
			rr.RepeatPercentage = d
		}
		out = append(out, rr)
	}
	return out, skipped
}

func findHeader(headers []string, candidates []string) int {
	for _, c := range candidates {
		for i, h := range headers {
			if schema.NormalizeColumn(h) == c {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepeatRepair is one day of repeat-repair totals. Date is the natural key;
// a second load for the same day replaces the earlier counts.
type RepeatRepair struct {
	Date             time.Time       `json:"date"`
	TotalDelivered   *int64          `json:"total_vehicle_delivered,omitempty"`
	RepeatCount      *int64          `json:"repeat_repair_count,omitempty"`
	RepeatPercentage decimal.Decimal `json:"repeat_repair_percentage"`
}

// TableLoad summarizes one bulk insert into a report table.
type TableLoad struct {
	Table        string `json:"table"`
	RowsInserted int64  `json:"rows_inserted"`
	Statements   int    `json:"statements"`
}

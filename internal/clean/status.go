package clean

import "time"

// Status is the punctuality classification derived for a daily-report row.
// It is never supplied by the source document.
type Status string

const (
	StatusOnTime  Status = "On-time"
	StatusGrace   Status = "Grace"
	StatusLate    Status = "Late"
	StatusUnknown Status = "Unknown"
)

// GracePeriod is the tolerance after the promised time during which a late
// receiving is still classified as Grace.
const GracePeriod = 30 * time.Minute

// ClassifyStatus compares the actual receiving time against the promised
// delivery time. Evaluated once per record; the order of the checks is the
// whole algorithm.
func ClassifyStatus(receiving, promised *time.Time) Status {
	if receiving == nil || promised == nil {
		return StatusUnknown
	}
	if !receiving.After(*promised) {
		return StatusOnTime
	}
	if !receiving.After(promised.Add(GracePeriod)) {
		return StatusGrace
	}
	return StatusLate
}

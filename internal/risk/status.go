// Package risk classifies client documents by expiry and aggregates them into
// a client risk summary. Everything here is a pure function of its inputs and
// of the "today" captured by a Pass; nothing is cached or stored.
package risk

import "time"

// Status is the derived state of one document requirement.
type Status string

const (
	StatusOK      Status = "OK"
	StatusRisk    Status = "RISK"
	StatusExpired Status = "EXPIRED"
	StatusMissing Status = "MISSING"
)

// Level is a client risk severity.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Weight orders levels by severity: HIGH=3, MEDIUM=2, anything else 1.
func (l Level) Weight() int {
	switch l {
	case LevelHigh:
		return 3
	case LevelMedium:
		return 2
	default:
		return 1
	}
}

// WindowDays is how many days ahead of expiry a document is flagged RISK.
const WindowDays = 30

// DaysUntil returns the number of calendar days from today to expiresAt.
// Each argument is reduced to its calendar date in its own location, so the
// time of day never shifts the count. Negative means already past.
func DaysUntil(expiresAt, today time.Time) int {
	return int(dateOf(expiresAt).Sub(dateOf(today)) / (24 * time.Hour))
}

// Classify maps an expiry date to OK, RISK or EXPIRED relative to today.
// A nil expiry is EXPIRED: an upload without a recorded expiry is never trusted.
func Classify(expiresAt *time.Time, today time.Time) Status {
	if expiresAt == nil {
		return StatusExpired
	}
	return classifyDays(DaysUntil(*expiresAt, today))
}

func classifyDays(days int) Status {
	switch {
	case days < 0:
		return StatusExpired
	case days <= WindowDays:
		return StatusRisk
	default:
		return StatusOK
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package attendance

import (
	"time"
)

// ClockKind selects which side of the daily record a clock action sets.
type ClockKind string

const (
	KindEntry ClockKind = "entry"
	KindExit  ClockKind = "exit"
)

func (k ClockKind) Valid() bool {
	return k == KindEntry || k == KindExit
}

// TimeRecord is the daily attendance row, unique per (EmployeeID, Date).
// Clock times are "HH:MM" strings; nil means the side was never set.
type TimeRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *string
	ClockOut   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

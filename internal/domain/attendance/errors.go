package attendance

import "errors"

var (
	// ErrNoRecordForDay is returned when a manual edit targets an employee
	// with no attendance record for today. The operator must register an
	// entry or exit first.
	ErrNoRecordForDay = errors.New("no attendance record for today, register an entry or exit first")

	ErrRecordNotFound = errors.New("attendance record not found")
)

package attendance

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access on the registro_horarios table.
type TimeRecordRepository interface {
	// UpsertClock atomically sets one clock field of the (employee, date)
	// record, inserting the row if it does not exist yet. The other field
	// is never touched.
	UpsertClock(ctx context.Context, employeeID string, date time.Time, kind ClockKind, value string) (TimeRecord, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a date.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error)

	// UpdateTimes rewrites both clock fields of an existing record,
	// allowing either side to be cleared with nil
	UpdateTimes(ctx context.Context, id string, clockIn, clockOut *string) (TimeRecord, error)

	// ListByDate retrieves all records of one date in a single query
	ListByDate(ctx context.Context, date time.Time) ([]TimeRecord, error)
}

// TimeRecordService resolves and mutates daily attendance records.
type TimeRecordService interface {
	// RegisterTime stamps the current wall-clock time on one side of
	// today's record, creating the record on the first action of the day
	RegisterTime(ctx context.Context, req RegisterTimeRequest) (RecordResponse, error)

	// ApplyManualEdit overwrites today's record for an employee; fails
	// with ErrNoRecordForDay when there is nothing to edit
	ApplyManualEdit(ctx context.Context, req ManualEditRequest) (RecordResponse, error)
}

package absence

import (
	"context"
	"time"
)

// AbsenceRepository defines data access on the salidas_autorizadas table.
// There is no update or delete: absences are append-only.
type AbsenceRepository interface {
	// Create appends a new authorized absence
	Create(ctx context.Context, abs AuthorizedAbsence) (AuthorizedAbsence, error)

	// SumHoursInRange sums horas for one employee over [from, to)
	SumHoursInRange(ctx context.Context, employeeID string, from, to time.Time) (float64, error)

	// SumHoursByEmployee sums horas per employee over [from, to) in one query
	SumHoursByEmployee(ctx context.Context, from, to time.Time) (map[string]float64, error)

	// List retrieves all absences newest first, with employee names joined
	List(ctx context.Context) ([]AuthorizedAbsence, error)
}

// AbsenceService tracks the monthly justified-absence budget.
type AbsenceService interface {
	// RecordAbsence validates and appends an absence. The monthly quota is
	// advisory only and never blocks the write.
	RecordAbsence(ctx context.Context, req RecordAbsenceRequest) (AbsenceResponse, error)

	// RemainingHours computes max(0, quota - used) for the calendar month
	// containing referenceDate
	RemainingHours(ctx context.Context, employeeID string, referenceDate time.Time) (float64, error)

	// QuotaOverview returns remaining hours for every employee whose name
	// matches filterText (case-insensitive substring; empty matches all)
	QuotaOverview(ctx context.Context, filterText string, referenceDate time.Time) ([]QuotaStatus, error)

	// ListAbsences returns the registered absences, newest first
	ListAbsences(ctx context.Context) ([]AbsenceResponse, error)
}

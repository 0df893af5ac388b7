package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
)

type TimeRecordServiceImpl struct {
	records   attendance.TimeRecordRepository
	employees employee.EmployeeRepository
	now       func() time.Time
}

func NewTimeRecordService(records attendance.TimeRecordRepository, employees employee.EmployeeRepository) *TimeRecordServiceImpl {
	return &TimeRecordServiceImpl{
		records:   records,
		employees: employees,
		now:       time.Now,
	}
}

// today truncates the wall clock to the local working day.
func (s *TimeRecordServiceImpl) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

func toRecordResponse(rec attendance.TimeRecord) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		ClockIn:    rec.ClockIn,
		ClockOut:   rec.ClockOut,
	}
}

// RegisterTime implements attendance.TimeRecordService. The first clock
// action of the day creates the record with only the requested side set;
// later actions overwrite that side of the same record. Persistence is a
// single atomic upsert, so a failed write leaves no local state behind.
func (s *TimeRecordServiceImpl) RegisterTime(ctx context.Context, req attendance.RegisterTimeRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	clockValue := s.now().Format("15:04")

	rec, err := s.records.UpsertClock(ctx, req.EmployeeID, s.today(), req.Kind, clockValue)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to register %s time: %w", req.Kind, err)
	}

	return toRecordResponse(rec), nil
}

// ApplyManualEdit implements attendance.TimeRecordService. Editing
// requires that a record already exists for today; the caller is told to
// register an entry or exit first otherwise. Either side may be cleared
// independently by sending nil.
func (s *TimeRecordServiceImpl) ApplyManualEdit(ctx context.Context, req attendance.ManualEditRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.records.GetByEmployeeAndDate(ctx, req.EmployeeID, s.today())
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing == nil {
		return attendance.RecordResponse{}, attendance.ErrNoRecordForDay
	}

	rec, err := s.records.UpdateTimes(ctx, existing.ID, req.ClockIn, req.ClockOut)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to apply manual edit: %w", err)
	}

	return toRecordResponse(rec), nil
}

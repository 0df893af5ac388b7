package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordRepo mimics the unique (employee, date) upsert semantics of
// the registro_horarios table in memory.
type fakeRecordRepo struct {
	records map[string]*attendance.TimeRecord
	nextID  int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]*attendance.TimeRecord{}}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeRecordRepo) UpsertClock(ctx context.Context, employeeID string, date time.Time, kind attendance.ClockKind, value string) (attendance.TimeRecord, error) {
	key := recordKey(employeeID, date)
	rec, ok := f.records[key]
	if !ok {
		f.nextID++
		rec = &attendance.TimeRecord{
			ID:         fmt.Sprintf("rec-%d", f.nextID),
			EmployeeID: employeeID,
			Date:       date,
		}
		f.records[key] = rec
	}
	v := value
	if kind == attendance.KindEntry {
		rec.ClockIn = &v
	} else {
		rec.ClockOut = &v
	}
	return *rec, nil
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.TimeRecord, error) {
	rec, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeRecordRepo) UpdateTimes(ctx context.Context, id string, clockIn, clockOut *string) (attendance.TimeRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.ClockIn = clockIn
			rec.ClockOut = clockOut
			return *rec, nil
		}
	}
	return attendance.TimeRecord{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.TimeRecord, error) {
	var out []attendance.TimeRecord
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListOrdered(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeEmployeeRepo) UpdatePhotoKey(ctx context.Context, id string, key string) error {
	return nil
}

func newTestService(records attendance.TimeRecordRepository) (*TimeRecordServiceImpl, *time.Time) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FirstName: "Juan", LastName: "Perez", ScheduledEntry: "06:30"},
	}}
	service := NewTimeRecordService(records, empRepo)
	clock := time.Date(2024, 5, 10, 8, 3, 0, 0, time.UTC)
	service.now = func() time.Time { return clock }
	return service, &clock
}

func TestRegisterTime_EntryThenExitSameRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, clock := newTestService(repo)

	entry, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "emp-1",
		Kind:       attendance.KindEntry,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.ClockIn)
	assert.Equal(t, "08:03", *entry.ClockIn)
	assert.Nil(t, entry.ClockOut)
	assert.Equal(t, "2024-05-10", entry.Date)

	// Later the same day the exit is stamped on the same record.
	*clock = time.Date(2024, 5, 10, 16, 45, 0, 0, time.UTC)

	exit, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "emp-1",
		Kind:       attendance.KindExit,
	})
	require.NoError(t, err)
	assert.Equal(t, entry.ID, exit.ID, "one record per employee per day")
	require.NotNil(t, exit.ClockIn)
	assert.Equal(t, "08:03", *exit.ClockIn)
	require.NotNil(t, exit.ClockOut)
	assert.Equal(t, "16:45", *exit.ClockOut)
	assert.Len(t, repo.records, 1)
}

func TestRegisterTime_RepeatOverwritesSameSide(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, clock := newTestService(repo)

	_, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "emp-1",
		Kind:       attendance.KindEntry,
	})
	require.NoError(t, err)

	*clock = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

	rec, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "emp-1",
		Kind:       attendance.KindEntry,
	})
	require.NoError(t, err)
	require.NotNil(t, rec.ClockIn)
	assert.Equal(t, "08:30", *rec.ClockIn)
	assert.Len(t, repo.records, 1)
}

func TestRegisterTime_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, _ := newTestService(repo)

	_, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "ghost",
		Kind:       attendance.KindEntry,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.records)
}

func TestRegisterTime_InvalidKind(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, _ := newTestService(repo)

	_, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "emp-1",
		Kind:       "lunch",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "kind")
}

func TestApplyManualEdit_NoRecordForDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, _ := newTestService(repo)

	clockIn := "07:00"
	_, err := service.ApplyManualEdit(ctx, attendance.ManualEditRequest{
		EmployeeID: "emp-1",
		ClockIn:    &clockIn,
	})
	assert.ErrorIs(t, err, attendance.ErrNoRecordForDay)
}

func TestApplyManualEdit_OverwritesAndClears(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, _ := newTestService(repo)

	_, err := service.RegisterTime(ctx, attendance.RegisterTimeRequest{
		EmployeeID: "emp-1",
		Kind:       attendance.KindEntry,
	})
	require.NoError(t, err)

	clockIn := "07:15"
	rec, err := service.ApplyManualEdit(ctx, attendance.ManualEditRequest{
		EmployeeID: "emp-1",
		ClockIn:    &clockIn,
		ClockOut:   nil,
	})
	require.NoError(t, err)
	require.NotNil(t, rec.ClockIn)
	assert.Equal(t, "07:15", *rec.ClockIn)
	assert.Nil(t, rec.ClockOut)
}

func TestApplyManualEdit_RejectsBadClockFormat(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecordRepo()
	service, _ := newTestService(repo)

	bad := "25:00"
	_, err := service.ApplyManualEdit(ctx, attendance.ManualEditRequest{
		EmployeeID: "emp-1",
		ClockIn:    &bad,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "clock_in")
}

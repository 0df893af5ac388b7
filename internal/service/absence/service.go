package absence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/absence"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

type AbsenceServiceImpl struct {
	absences  absence.AbsenceRepository
	employees employee.EmployeeRepository
}

func NewAbsenceService(absences absence.AbsenceRepository, employees employee.EmployeeRepository) *AbsenceServiceImpl {
	return &AbsenceServiceImpl{
		absences:  absences,
		employees: employees,
	}
}

// RecordAbsence implements absence.AbsenceService. Validation happens
// before any remote call; the monthly quota is deliberately NOT enforced
// here, it only drives the remaining-hours display.
func (s *AbsenceServiceImpl) RecordAbsence(ctx context.Context, req absence.RecordAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	hours := DeriveHours(req.Departure, req.Return)
	if hours <= 0 {
		return absence.AbsenceResponse{}, validator.ValidationErrors{{
			Field:   "return",
			Message: "return must be after departure",
		}}
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.absences.Create(ctx, absence.AuthorizedAbsence{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Departure:  req.Departure,
		Return:     req.Return,
		Reason:     strings.TrimSpace(req.Reason),
		Hours:      hours,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to record absence: %w", err)
	}

	return absence.AbsenceResponse{
		ID:           created.ID,
		EmployeeID:   created.EmployeeID,
		EmployeeName: emp.FullName(),
		Date:         created.Date.Format("2006-01-02"),
		Departure:    created.Departure,
		Return:       created.Return,
		Reason:       created.Reason,
		Hours:        created.Hours,
	}, nil
}

// RemainingHours implements absence.AbsenceService.
func (s *AbsenceServiceImpl) RemainingHours(ctx context.Context, employeeID string, referenceDate time.Time) (float64, error) {
	from, to := MonthWindow(referenceDate)

	used, err := s.absences.SumHoursInRange(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to compute used hours: %w", err)
	}

	return RemainingFromUsed(used), nil
}

// QuotaOverview implements absence.AbsenceService. One batched sum query
// covers the whole roster instead of a round-trip per employee.
func (s *AbsenceServiceImpl) QuotaOverview(ctx context.Context, filterText string, referenceDate time.Time) ([]absence.QuotaStatus, error) {
	employees, err := s.employees.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	from, to := MonthWindow(referenceDate)
	usedByEmployee, err := s.absences.SumHoursByEmployee(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum used hours: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filterText))

	overview := make([]absence.QuotaStatus, 0, len(employees))
	for _, emp := range employees {
		if needle != "" &&
			!strings.Contains(strings.ToLower(emp.FirstName), needle) &&
			!strings.Contains(strings.ToLower(emp.LastName), needle) {
			continue
		}

		used := usedByEmployee[emp.ID]
		overview = append(overview, absence.QuotaStatus{
			EmployeeID:     emp.ID,
			FirstName:      emp.FirstName,
			LastName:       emp.LastName,
			UsedHours:      used,
			RemainingHours: RemainingFromUsed(used),
		})
	}

	return overview, nil
}

// ListAbsences implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsences(ctx context.Context) ([]absence.AbsenceResponse, error) {
	absences, err := s.absences.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(absences))
	for _, abs := range absences {
		resp := absence.AbsenceResponse{
			ID:         abs.ID,
			EmployeeID: abs.EmployeeID,
			Date:       abs.Date.Format("2006-01-02"),
			Departure:  abs.Departure,
			Return:     abs.Return,
			Reason:     abs.Reason,
			Hours:      abs.Hours,
		}
		if abs.EmployeeLastName != nil && abs.EmployeeFirstName != nil {
			resp.EmployeeName = *abs.EmployeeLastName + ", " + *abs.EmployeeFirstName
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

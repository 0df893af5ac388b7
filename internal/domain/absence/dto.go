package absence

import (
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

type RecordAbsenceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Departure  string `json:"departure"`
	Return     string `json:"return"`
	Reason     string `json:"reason"`
}

// Validate rejects blank fields before any persistence call is made.
func (r *RecordAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if validator.IsEmpty(r.Departure) {
		errs = append(errs, validator.ValidationError{
			Field:   "departure",
			Message: "departure is required",
		})
	} else if !validator.IsValidClockTime(r.Departure) {
		errs = append(errs, validator.ValidationError{
			Field:   "departure",
			Message: "departure must be HH:MM",
		})
	}
	if validator.IsEmpty(r.Return) {
		errs = append(errs, validator.ValidationError{
			Field:   "return",
			Message: "return is required",
		})
	} else if !validator.IsValidClockTime(r.Return) {
		errs = append(errs, validator.ValidationError{
			Field:   "return",
			Message: "return must be HH:MM",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Departure    string  `json:"departure"`
	Return       string  `json:"return"`
	Reason       string  `json:"reason"`
	Hours        float64 `json:"hours"`
}

// QuotaStatus is one row of the remaining-hours overview.
type QuotaStatus struct {
	EmployeeID     string  `json:"employee_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	UsedHours      float64 `json:"used_hours"`
	RemainingHours float64 `json:"remaining_hours"`
}

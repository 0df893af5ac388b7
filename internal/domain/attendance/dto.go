package attendance

import (
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

type RegisterTimeRequest struct {
	EmployeeID string    `json:"employee_id"`
	Kind       ClockKind `json:"kind"`
}

func (r *RegisterTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be entry or exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualEditRequest rewrites both clock fields of today's record. A nil
// field clears the stored value; the two sides are independent.
type ManualEditRequest struct {
	EmployeeID string  `json:"employee_id"`
	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
}

func (r *ManualEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.ClockIn != nil && !validator.IsValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be HH:MM",
		})
	}
	if r.ClockOut != nil && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
}

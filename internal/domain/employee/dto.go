package employee

import (
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Department     *string `json:"department"`
	InternalNumber *string `json:"internal_number"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update; nil fields are left
// untouched. Department and InternalNumber may be cleared by sending an
// empty string.
type UpdateEmployeeRequest struct {
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	Department     *string  `json:"department"`
	InternalNumber *string  `json:"internal_number"`
	ScheduledEntry *string  `json:"scheduled_entry"`
	ScheduledExit  *string  `json:"scheduled_exit"`
	JustifiedHours *float64 `json:"justified_hours"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name cannot be blank",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name cannot be blank",
		})
	}
	if r.ScheduledEntry != nil && *r.ScheduledEntry != "" && !validator.IsValidClockTime(*r.ScheduledEntry) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_entry",
			Message: "scheduled_entry must be HH:MM",
		})
	}
	if r.ScheduledExit != nil && *r.ScheduledExit != "" && !validator.IsValidClockTime(*r.ScheduledExit) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_exit",
			Message: "scheduled_exit must be HH:MM",
		})
	}
	if r.JustifiedHours != nil && *r.JustifiedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "justified_hours",
			Message: "justified_hours cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Department     *string  `json:"department"`
	InternalNumber *string  `json:"internal_number"`
	ScheduledEntry string   `json:"scheduled_entry"`
	ScheduledExit  *string  `json:"scheduled_exit"`
	JustifiedHours float64  `json:"justified_hours"`
	PhotoURL       *string  `json:"photo_url,omitempty"`
}

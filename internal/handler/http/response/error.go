package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/absence"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/auth"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, attendance.ErrNoRecordForDay):
		NotFound(w, "No time record exists for this employee today, register an entry or exit first")
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Authorized absence not found")
	default:
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/absence"
	"github.com/sistemacontrol/asistencia-backend-go/internal/handler/http/response"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

type AbsenceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	QuotaOverview(w http.ResponseWriter, r *http.Request)
	RemainingHours(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// referenceDate reads an optional ?date=YYYY-MM-DD query parameter and
// falls back to the current day.
func referenceDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	parsed, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		}}
	}
	return parsed, nil
}

// Record implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq absence.RecordAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := recordReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	abs, err := h.absenceService.RecordAbsence(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Authorized absence recorded", "employee_id", recordReq.EmployeeID, "hours", abs.Hours)
	response.Created(w, "Absence recorded successfully", abs)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	absences, err := h.absenceService.ListAbsences(r.Context())
	if err != nil {
		slog.Error("List absences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// QuotaOverview implements AbsenceHandler.
func (h *AbsenceHandlerImpl) QuotaOverview(w http.ResponseWriter, r *http.Request) {
	ref, err := referenceDate(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := r.URL.Query().Get("filter")
	overview, err := h.absenceService.QuotaOverview(r.Context(), filter, ref)
	if err != nil {
		slog.Error("Quota overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// RemainingHours implements AbsenceHandler.
func (h *AbsenceHandlerImpl) RemainingHours(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	ref, err := referenceDate(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	remaining, err := h.absenceService.RemainingHours(r.Context(), employeeID, ref)
	if err != nil {
		slog.Error("Remaining hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"employee_id":     employeeID,
		"remaining_hours": remaining,
	})
}

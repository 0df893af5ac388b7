package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/sistemacontrol/asistencia-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RegisterTime(w http.ResponseWriter, r *http.Request)
	ManualEdit(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	recordService attendance.TimeRecordService
}

func NewAttendanceHandler(recordService attendance.TimeRecordService) AttendanceHandler {
	return &AttendanceHandlerImpl{recordService: recordService}
}

// RegisterTime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RegisterTime(w http.ResponseWriter, r *http.Request) {
	var registerReq attendance.RegisterTimeRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterTime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.recordService.RegisterTime(r.Context(), registerReq)
	if err != nil {
		slog.Error("RegisterTime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock time registered", "employee_id", registerReq.EmployeeID, "kind", registerReq.Kind)
	response.SuccessWithMessage(w, "Time registered successfully", record)
}

// ManualEdit implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ManualEdit(w http.ResponseWriter, r *http.Request) {
	var editReq attendance.ManualEditRequest

	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		slog.Error("ManualEdit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := editReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.recordService.ApplyManualEdit(r.Context(), editReq)
	if err != nil {
		slog.Error("ManualEdit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Time record edited manually", "employee_id", editReq.EmployeeID)
	response.SuccessWithMessage(w, "Record updated successfully", record)
}

package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/roster"
	"github.com/sistemacontrol/asistencia-backend-go/internal/handler/http/response"
	"github.com/sistemacontrol/asistencia-backend-go/internal/service/report"
)

type RosterHandler interface {
	View(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.RosterService
	reportService report.RosterReportService
}

func NewRosterHandler(rosterService roster.RosterService, reportService report.RosterReportService) RosterHandler {
	return &RosterHandlerImpl{
		rosterService: rosterService,
		reportService: reportService,
	}
}

// View implements RosterHandler.
func (h *RosterHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	groupByDepartment := r.URL.Query().Get("group_by_department") == "true"

	view, err := h.rosterService.BuildView(r.Context(), filter, groupByDepartment)
	if err != nil {
		slog.Error("Roster view service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// DownloadPDF implements RosterHandler.
func (h *RosterHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	pdfBytes, err := h.reportService.BuildRosterPDF(r.Context(), filter)
	if err != nil {
		slog.Error("Roster PDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("planilla-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		slog.Error("Roster PDF write error", "error", err)
	}
}

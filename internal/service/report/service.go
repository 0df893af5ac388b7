package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/roster"
)

// RosterReportService renders the daily roster sheet ("planilla") as a
// PDF for printing.
type RosterReportService interface {
	BuildRosterPDF(ctx context.Context, filterText string) ([]byte, error)
}

type rosterReportServiceImpl struct {
	roster roster.RosterService
}

func NewRosterReportService(rosterService roster.RosterService) RosterReportService {
	return &rosterReportServiceImpl{roster: rosterService}
}

// BuildRosterPDF implements RosterReportService. The sheet mirrors the
// printed attendance form: one row per employee with today's entry and
// exit times, dashes where no time was registered.
func (s *rosterReportServiceImpl) BuildRosterPDF(ctx context.Context, filterText string) ([]byte, error) {
	view, err := s.roster.BuildView(ctx, filterText, false)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster view: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Planilla de Personal y Horarios", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Planilla de Personal y Horarios", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	const (
		nameWidth = 100
		timeWidth = 40
		rowHeight = 8
	)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(nameWidth, rowHeight, "Apellido y Nombre", "1", 0, "L", true, 0, "")
	pdf.CellFormat(timeWidth, rowHeight, "Hora Entrada", "1", 0, "C", true, 0, "")
	pdf.CellFormat(timeWidth, rowHeight, "Hora Salida", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, entry := range view.Entries {
		pdf.CellFormat(nameWidth, rowHeight, entry.LastName+", "+entry.FirstName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(timeWidth, rowHeight, orDash(entry.ClockIn), "1", 0, "C", false, 0, "")
		pdf.CellFormat(timeWidth, rowHeight, orDash(entry.ClockOut), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render roster PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

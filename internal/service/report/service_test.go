package report

import (
	"context"
	"testing"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRosterService struct {
	view       roster.View
	lastFilter string
}

func (f *fakeRosterService) BuildView(ctx context.Context, filterText string, groupByDepartment bool) (roster.View, error) {
	f.lastFilter = filterText
	return f.view, nil
}

func strPtr(s string) *string { return &s }

func TestBuildRosterPDF(t *testing.T) {
	ctx := context.Background()
	rosterSvc := &fakeRosterService{view: roster.View{Entries: []roster.Entry{
		{EmployeeID: "emp-1", FirstName: "Jane", LastName: "Smith", ClockIn: strPtr("08:00")},
		{EmployeeID: "emp-2", FirstName: "Bob", LastName: "Torres"},
	}}}
	service := NewRosterReportService(rosterSvc)

	pdfBytes, err := service.BuildRosterPDF(ctx, "smi")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
	assert.Equal(t, "smi", rosterSvc.lastFilter)
}

func TestBuildRosterPDF_EmptyRoster(t *testing.T) {
	ctx := context.Background()
	service := NewRosterReportService(&fakeRosterService{})

	pdfBytes, err := service.BuildRosterPDF(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

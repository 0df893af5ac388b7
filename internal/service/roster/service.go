package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/roster"
	"github.com/sistemacontrol/asistencia-backend-go/internal/service/file"
)

type RosterServiceImpl struct {
	employees   employee.EmployeeRepository
	records     attendance.TimeRecordRepository
	fileService file.FileService
	now         func() time.Time
}

func NewRosterService(employees employee.EmployeeRepository, records attendance.TimeRecordRepository, fileService file.FileService) *RosterServiceImpl {
	return &RosterServiceImpl{
		employees:   employees,
		records:     records,
		fileService: fileService,
		now:         time.Now,
	}
}

// BuildView implements roster.RosterService. Each call recomputes the
// projection from scratch: the full roster sorted by last name then first
// name, today's attendance fetched in one batched query and left-joined
// in memory, and photo keys resolved to public URLs.
func (s *RosterServiceImpl) BuildView(ctx context.Context, filterText string, groupByDepartment bool) (roster.View, error) {
	employees, err := s.employees.ListOrdered(ctx)
	if err != nil {
		return roster.View{}, fmt.Errorf("failed to list employees: %w", err)
	}

	n := s.now()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())

	records, err := s.records.ListByDate(ctx, today)
	if err != nil {
		return roster.View{}, fmt.Errorf("failed to list today's records: %w", err)
	}

	recordsByEmployee := make(map[string]attendance.TimeRecord, len(records))
	for _, rec := range records {
		recordsByEmployee[rec.EmployeeID] = rec
	}

	needle := strings.ToLower(strings.TrimSpace(filterText))

	entries := make([]roster.Entry, 0, len(employees))
	for _, emp := range employees {
		if needle != "" &&
			!strings.Contains(strings.ToLower(emp.FirstName), needle) &&
			!strings.Contains(strings.ToLower(emp.LastName), needle) {
			continue
		}

		entry := roster.Entry{
			EmployeeID:     emp.ID,
			FirstName:      emp.FirstName,
			LastName:       emp.LastName,
			Department:     emp.Department,
			InternalNumber: emp.InternalNumber,
		}

		if rec, ok := recordsByEmployee[emp.ID]; ok {
			recordID := rec.ID
			entry.RecordID = &recordID
			entry.ClockIn = rec.ClockIn
			entry.ClockOut = rec.ClockOut
		}

		if emp.PhotoKey != nil && *emp.PhotoKey != "" {
			url, err := s.fileService.GetFileURL(ctx, *emp.PhotoKey, 0)
			if err != nil {
				// A broken photo key degrades the row, not the view.
				slog.Warn("failed to resolve photo URL", "employee_id", emp.ID, "error", err)
			} else {
				entry.PhotoURL = &url
			}
		}

		entries = append(entries, entry)
	}

	if !groupByDepartment {
		return roster.View{Entries: entries}, nil
	}

	return roster.View{Groups: groupEntries(entries)}, nil
}

// groupEntries partitions entries into department buckets, keeping the
// roster sort order inside each group. Buckets are sorted by label with
// Unassigned last.
func groupEntries(entries []roster.Entry) []roster.Group {
	byDepartment := make(map[string][]roster.Entry)
	for _, entry := range entries {
		label := employee.DepartmentUnassigned
		if entry.Department != nil && *entry.Department != "" {
			label = *entry.Department
		}
		byDepartment[label] = append(byDepartment[label], entry)
	}

	labels := make([]string, 0, len(byDepartment))
	for label := range byDepartment {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i] == employee.DepartmentUnassigned {
			return false
		}
		if labels[j] == employee.DepartmentUnassigned {
			return true
		}
		return labels[i] < labels[j]
	})

	groups := make([]roster.Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, roster.Group{
			Department: label,
			Entries:    byDepartment[label],
		})
	}

	return groups
}

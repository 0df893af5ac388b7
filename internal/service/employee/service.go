package employee

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/service/file"
)

// defaultScheduledEntry is the scheduled entry time given to new roster
// rows; operators adjust it per employee afterwards.
const defaultScheduledEntry = "06:30"

type EmployeeServiceImpl struct {
	employees   employee.EmployeeRepository
	fileService file.FileService
}

func NewEmployeeService(employees employee.EmployeeRepository, fileService file.FileService) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employees:   employees,
		fileService: fileService,
	}
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Department:     emp.Department,
		InternalNumber: emp.InternalNumber,
		ScheduledEntry: emp.ScheduledEntry,
		ScheduledExit:  emp.ScheduledExit,
		JustifiedHours: emp.JustifiedHours,
	}
	if emp.PhotoKey != nil && *emp.PhotoKey != "" {
		if url, err := s.fileService.GetFileURL(ctx, *emp.PhotoKey, 0); err == nil {
			resp.PhotoURL = &url
		}
	}
	return resp
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Department:     trimOrNil(req.Department),
		InternalNumber: trimOrNil(req.InternalNumber),
		ScheduledEntry: defaultScheduledEntry,
		JustifiedHours: 0,
	}

	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(ctx, created), nil
}

// UpdateEmployee implements employee.EmployeeService. Concurrent edits
// follow last-write-wins; there is no version check.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employees.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filterText string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employees.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filterText))

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		if needle != "" &&
			!strings.Contains(strings.ToLower(emp.FirstName), needle) &&
			!strings.Contains(strings.ToLower(emp.LastName), needle) {
			continue
		}
		responses = append(responses, s.toResponse(ctx, emp))
	}

	return responses, nil
}

// UploadPhoto implements employee.EmployeeService. The old photo is left
// in storage; keys are unique per upload so stale URLs simply expire from
// the roster.
func (s *EmployeeServiceImpl) UploadPhoto(ctx context.Context, id string, f io.Reader, filename string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	key, err := s.fileService.UploadEmployeePhoto(ctx, emp.ID, f, filename)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	if err := s.employees.UpdatePhotoKey(ctx, emp.ID, key); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.PhotoKey = &key
	return s.toResponse(ctx, emp), nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

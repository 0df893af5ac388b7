package employee

import (
	"context"
	"io"
)

// EmployeeRepository defines data access on the personal table.
type EmployeeRepository interface {
	// Create inserts a new roster row
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves one employee
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListOrdered retrieves the whole roster sorted by last name, first name
	ListOrdered(ctx context.Context) ([]Employee, error)

	// Update applies a partial update; nil fields are skipped
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	// UpdatePhotoKey stores the object-storage key of the employee photo
	UpdatePhotoKey(ctx context.Context, id string, key string) error
}

// EmployeeService defines roster management operations.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filterText string) ([]EmployeeResponse, error)
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (EmployeeResponse, error)
}

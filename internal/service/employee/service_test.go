package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	created   []employee.Employee
	ordered   []employee.Employee
	photoKeys map[string]string
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = fmt.Sprintf("emp-%d", len(f.created)+1)
	f.created = append(f.created, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.created {
		if emp.ID == id {
			return emp, nil
		}
	}
	for _, emp := range f.ordered {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListOrdered(ctx context.Context) ([]employee.Employee, error) {
	return f.ordered, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, err := f.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.JustifiedHours != nil {
		emp.JustifiedHours = *req.JustifiedHours
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) UpdatePhotoKey(ctx context.Context, id string, key string) error {
	if f.photoKeys == nil {
		f.photoKeys = map[string]string{}
	}
	f.photoKeys[id] = key
	return nil
}

type fakeFileService struct {
	uploadedKey string
	uploadErr   error
}

func (f *fakeFileService) UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploadedKey = "photos/" + employeeID + "/photo.jpg"
	return f.uploadedKey, nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	return nil
}

func TestCreateEmployee_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{}
	service := NewEmployeeService(repo, &fakeFileService{})

	dept := "  Accounting  "
	resp, err := service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName:  "  Juan ",
		LastName:   "Perez",
		Department: &dept,
	})

	require.NoError(t, err)
	assert.Equal(t, "Juan", resp.FirstName)
	assert.Equal(t, "06:30", resp.ScheduledEntry)
	assert.Equal(t, 0.0, resp.JustifiedHours)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Accounting", *resp.Department)
	assert.Nil(t, resp.InternalNumber)
}

func TestCreateEmployee_RequiresNames(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{}
	service := NewEmployeeService(repo, &fakeFileService{})

	_, err := service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName: "  ",
		LastName:  "",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "first_name")
	assert.Contains(t, details, "last_name")
	assert.Empty(t, repo.created)
}

func TestCreateEmployee_BlankDepartmentStaysNil(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{}
	service := NewEmployeeService(repo, &fakeFileService{})

	blank := "   "
	resp, err := service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName:  "Juan",
		LastName:   "Perez",
		Department: &blank,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Department)
}

func TestListEmployees_Filter(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{ordered: []employee.Employee{
		{ID: "emp-1", FirstName: "Jane", LastName: "Smith", ScheduledEntry: "06:30"},
		{ID: "emp-2", FirstName: "Ana", LastName: "Torres", ScheduledEntry: "06:30"},
	}}
	service := NewEmployeeService(repo, &fakeFileService{})

	employees, err := service.ListEmployees(ctx, "tor")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "emp-2", employees[0].ID)

	employees, err = service.ListEmployees(ctx, "")
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestUpdateEmployee_RejectsNegativeJustifiedHours(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{ordered: []employee.Employee{
		{ID: "emp-1", FirstName: "Jane", LastName: "Smith", ScheduledEntry: "06:30"},
	}}
	service := NewEmployeeService(repo, &fakeFileService{})

	negative := -1.0
	_, err := service.UpdateEmployee(ctx, "emp-1", employee.UpdateEmployeeRequest{
		JustifiedHours: &negative,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "justified_hours")
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{ordered: []employee.Employee{
		{ID: "emp-1", FirstName: "Jane", LastName: "Smith", ScheduledEntry: "06:30"},
	}}
	files := &fakeFileService{}
	service := NewEmployeeService(repo, files)

	resp, err := service.UploadPhoto(ctx, "emp-1", nil, "face.jpg")
	require.NoError(t, err)
	assert.Equal(t, files.uploadedKey, repo.photoKeys["emp-1"])
	require.NotNil(t, resp.PhotoURL)
	assert.Equal(t, "http://localhost:8080/uploads/"+files.uploadedKey, *resp.PhotoURL)
}

func TestUploadPhoto_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{}
	service := NewEmployeeService(repo, &fakeFileService{})

	_, err := service.UploadPhoto(ctx, "ghost", nil, "face.jpg")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUploadPhoto_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{ordered: []employee.Employee{
		{ID: "emp-1", FirstName: "Jane", LastName: "Smith", ScheduledEntry: "06:30"},
	}}
	files := &fakeFileService{uploadErr: errors.New("disk full")}
	service := NewEmployeeService(repo, files)

	_, err := service.UploadPhoto(ctx, "emp-1", nil, "face.jpg")
	require.Error(t, err)
	assert.Empty(t, repo.photoKeys)
}

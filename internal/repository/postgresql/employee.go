package postgresql

import (
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, nombre, apellido, departamento, nro_interno,
	hora_entrada, hora_salida, horas_justificadas, foto_url, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Department, &emp.InternalNumber,
		&emp.ScheduledEntry, &emp.ScheduledExit, &emp.JustifiedHours, &emp.PhotoKey,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO personal (nombre, apellido, departamento, nro_interno, hora_entrada, horas_justificadas)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Department, emp.InternalNumber,
		emp.ScheduledEntry, emp.JustifiedHours,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM personal WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// ListOrdered implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListOrdered(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM personal ORDER BY apellido ASC, nombre ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository. Only the fields present
// in the request are written; blank department and internal number clear
// the column.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FirstName != nil {
		appendSet("nombre", strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		appendSet("apellido", strings.TrimSpace(*req.LastName))
	}
	if req.Department != nil {
		appendSet("departamento", nullIfBlank(*req.Department))
	}
	if req.InternalNumber != nil {
		appendSet("nro_interno", nullIfBlank(*req.InternalNumber))
	}
	if req.ScheduledEntry != nil {
		appendSet("hora_entrada", *req.ScheduledEntry)
	}
	if req.ScheduledExit != nil {
		appendSet("hora_salida", nullIfBlank(*req.ScheduledExit))
	}
	if req.JustifiedHours != nil {
		appendSet("horas_justificadas", *req.JustifiedHours)
	}

	if len(updates) == 0 {
		return employee.Employee{}, employee.ErrNoFieldsToUpdate
	}

	appendSet("updated_at", time.Now())

	args = append(args, id)
	query := "UPDATE personal SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIdx, employeeColumns)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// UpdatePhotoKey implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdatePhotoKey(ctx context.Context, id string, key string) error {
	q := GetQuerier(ctx, e.db)

	query := `UPDATE personal SET foto_url = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, key, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update photo key: %w", err)
	}

	return nil
}

func nullIfBlank(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

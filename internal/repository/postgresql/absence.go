package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/absence"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepository) Create(ctx context.Context, abs absence.AuthorizedAbsence) (absence.AuthorizedAbsence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salidas_autorizadas (empleado_id, fecha, hora_salida, hora_regreso, motivo, horas)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		abs.EmployeeID, abs.Date, abs.Departure, abs.Return, abs.Reason, abs.Hours,
	).Scan(&abs.ID, &abs.CreatedAt)
	if err != nil {
		return absence.AuthorizedAbsence{}, fmt.Errorf("failed to create authorized absence: %w", err)
	}

	return abs, nil
}

// SumHoursInRange implements absence.AbsenceRepository. The range is
// half-open: [from, to).
func (r *absenceRepository) SumHoursInRange(ctx context.Context, employeeID string, from, to time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(horas), 0)
		FROM salidas_autorizadas
		WHERE empleado_id = $1 AND fecha >= $2 AND fecha < $3
	`

	var sum float64
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum absence hours: %w", err)
	}

	return sum, nil
}

// SumHoursByEmployee implements absence.AbsenceRepository.
func (r *absenceRepository) SumHoursByEmployee(ctx context.Context, from, to time.Time) (map[string]float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT empleado_id, SUM(horas)
		FROM salidas_autorizadas
		WHERE fecha >= $1 AND fecha < $2
		GROUP BY empleado_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum absence hours by employee: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var employeeID string
		var sum float64
		if err := rows.Scan(&employeeID, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan absence sum: %w", err)
		}
		sums[employeeID] = sum
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sums, nil
}

// List implements absence.AbsenceRepository.
func (r *absenceRepository) List(ctx context.Context) ([]absence.AuthorizedAbsence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.empleado_id, s.fecha, s.hora_salida, s.hora_regreso, s.motivo, s.horas, s.created_at,
			p.nombre AS employee_first_name,
			p.apellido AS employee_last_name
		FROM salidas_autorizadas s
		LEFT JOIN personal p ON p.id = s.empleado_id
		ORDER BY s.fecha DESC, s.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.AuthorizedAbsence
	for rows.Next() {
		var abs absence.AuthorizedAbsence
		err := rows.Scan(
			&abs.ID, &abs.EmployeeID, &abs.Date, &abs.Departure, &abs.Return,
			&abs.Reason, &abs.Hours, &abs.CreatedAt,
			&abs.EmployeeFirstName, &abs.EmployeeLastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, abs)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return absences, nil
}

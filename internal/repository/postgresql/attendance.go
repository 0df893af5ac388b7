package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) attendance.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

const recordColumns = `id, empleado_id, fecha, hora_entrada, hora_salida, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.TimeRecord, error) {
	var rec attendance.TimeRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// UpsertClock implements attendance.TimeRecordRepository. The unique
// constraint on (empleado_id, fecha) makes the insert-or-update atomic,
// so the lookup/write race of a find-then-save sequence cannot produce a
// second row for the same day.
func (r *timeRecordRepository) UpsertClock(ctx context.Context, employeeID string, date time.Time, kind attendance.ClockKind, value string) (attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	column := "hora_entrada"
	if kind == attendance.KindExit {
		column = "hora_salida"
	}

	query := fmt.Sprintf(`
		INSERT INTO registro_horarios (empleado_id, fecha, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (empleado_id, fecha)
		DO UPDATE SET %s = EXCLUDED.%s, updated_at = NOW()
		RETURNING %s
	`, column, column, column, recordColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date, value))
	if err != nil {
		return attendance.TimeRecord{}, fmt.Errorf("failed to upsert clock %s: %w", kind, err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM registro_horarios
		WHERE empleado_id = $1 AND fecha = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get record by employee and date: %w", err)
	}

	return &rec, nil
}

// UpdateTimes implements attendance.TimeRecordRepository. Both columns
// are written unconditionally so a nil value clears the stored time.
func (r *timeRecordRepository) UpdateTimes(ctx context.Context, id string, clockIn, clockOut *string) (attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE registro_horarios
		SET hora_entrada = $1, hora_salida = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + recordColumns

	rec, err := scanRecord(q.QueryRow(ctx, query, clockIn, clockOut, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.TimeRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.TimeRecord{}, fmt.Errorf("failed to update record times: %w", err)
	}

	return rec, nil
}

// ListByDate implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM registro_horarios WHERE fecha = $1`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query records by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.TimeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

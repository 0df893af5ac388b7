package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/user"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, google_id, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.GoogleID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// LinkGoogleID implements user.UserRepository.
func (u *userRepositoryImpl) LinkGoogleID(ctx context.Context, id string, googleID string) error {
	q := GetQuerier(ctx, u.db)

	query := `UPDATE usuarios SET google_id = $1, updated_at = NOW() WHERE id = $2`

	if _, err := q.Exec(ctx, query, googleID, id); err != nil {
		return fmt.Errorf("failed to link google id: %w", err)
	}

	return nil
}

package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTx stores a transaction in the context for GetQuerier to pick up.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the transaction from the context when present,
// otherwise the pool. Lets repository methods run in either mode.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

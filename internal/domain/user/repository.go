package user

import "context"

// UserRepository defines data access on the usuarios table. Operator
// accounts are provisioned out of band; the API only authenticates them.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	LinkGoogleID(ctx context.Context, id string, googleID string) error
}

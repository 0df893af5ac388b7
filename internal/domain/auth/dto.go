package auth

import (
	"context"

	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

type SessionResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type AuthService interface {
	// Login exchanges email/password credentials for an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle exchanges a verified Google identity for an access
	// token; only pre-provisioned operator emails are accepted
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Logout revokes the presented token
	Logout(ctx context.Context, token string) error
}

package ports

import (
	"context"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	ProfileInput
}

// Authenticator resolves a session token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.ProfessionalUser, error)
}

type AuthService interface {
	Authenticator
	Register(ctx context.Context, input RegisterInput) (*ProfessionalUserView, error)
	Login(ctx context.Context, email, password string) (string, *ProfessionalUserView, error)
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(user *domain.ProfessionalUser) (string, error)
	// Parse verifies the token and returns the user ID it was issued for.
	Parse(token string) (string, error)
}

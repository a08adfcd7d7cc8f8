package ports

import (
	"context"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// ProfessionalUserRepository defines persistence operations for professional users.
// Lookups that find nothing return domain.ErrUserNotFound.
type ProfessionalUserRepository interface {
	// GetAll returns every active user.
	GetAll(ctx context.Context) ([]*domain.ProfessionalUser, error)
	// GetByID returns the user regardless of its active flag.
	GetByID(ctx context.Context, id string) (*domain.ProfessionalUser, error)
	// FindByCategory returns active users in the given trade category.
	FindByCategory(ctx context.Context, categoryID int) ([]*domain.ProfessionalUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.ProfessionalUser, error)
	// ValidateEmail reports whether a user with that email exists.
	ValidateEmail(ctx context.Context, email string) (bool, error)
	// Create stores a new user, assigning its ID. Duplicate emails yield domain.ErrUserExists.
	Create(ctx context.Context, user *domain.ProfessionalUser) (*domain.ProfessionalUser, error)
	// Edit overwrites the profile attributes of an existing user.
	Edit(ctx context.Context, user *domain.ProfessionalUser) error
	Remove(ctx context.Context, id string) error
	// ChangeStateToFalse flags the user as disabled without deleting it.
	ChangeStateToFalse(ctx context.Context, id string) error
	// Count returns the number of stored users, active or not.
	Count(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// UserCache is a read-through cache in front of the repository.
// A miss is reported as (nil, false, nil). After Invalidate, Set for the same
// id is ignored for a short window so that a fill racing a write cannot
// restore the pre-write state.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.ProfessionalUser, bool, error)
	Set(ctx context.Context, user *domain.ProfessionalUser) error
	Invalidate(ctx context.Context, id string) error
}

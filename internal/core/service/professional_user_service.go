package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

type ProfessionalUserService struct {
	repo   ports.ProfessionalUserRepository
	cache  ports.UserCache
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

// NewProfessionalUserService wires the service. cache may be nil.
func NewProfessionalUserService(
	repo ports.ProfessionalUserRepository,
	cache ports.UserCache,
	tokens ports.TokenIssuer,
	logger zerolog.Logger,
) *ProfessionalUserService {
	return &ProfessionalUserService{repo: repo, cache: cache, tokens: tokens, logger: logger}
}

// GetAll lists active users. An empty store is reported as domain.ErrNoUsers,
// the same not-found policy the other list operations follow.
func (s *ProfessionalUserService) GetAll(ctx context.Context) ([]ports.ProfessionalUserView, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return toViews(users), nil
}

// GetByID returns an active user. Disabled users are reported as not found.
func (s *ProfessionalUserService) GetByID(ctx context.Context, id string) (*ports.ProfessionalUserView, error) {
	if id == "" {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrUserNotFound
	}

	view := toView(user)
	return &view, nil
}

func (s *ProfessionalUserService) FindByCategory(ctx context.Context, categoryID int) ([]ports.ProfessionalUserView, error) {
	if categoryID <= 0 {
		return nil, domain.ErrInvalidCategory
	}

	users, err := s.repo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find by category: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsersInCategory
	}
	return toViews(users), nil
}

// Edit updates the caller's profile and rotates their session token.
//
// The email in the payload must exist (domain.ErrEmailNotFound otherwise) and
// must be the caller's own (domain.ErrForbidden otherwise). Nothing is
// written unless both checks pass.
func (s *ProfessionalUserService) Edit(ctx context.Context, actor *domain.ProfessionalUser, in ports.EditProfileInput) (*ports.EditResult, error) {
	if actor == nil {
		return nil, domain.ErrMissingToken
	}

	email := domain.NormalizeEmail(in.Email)
	found, err := s.repo.ValidateEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("edit: validate email: %w", err)
	}
	if !found {
		return nil, domain.ErrEmailNotFound
	}
	if email != domain.NormalizeEmail(actor.Email) {
		s.logger.Warn().Str("user_id", actor.ID).Msg("edit attempted on another user's email")
		return nil, domain.ErrForbidden
	}
	if in.CategoryID <= 0 {
		return nil, domain.ErrInvalidCategory
	}

	updated := *actor
	applyProfile(&updated, in.ProfileInput)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Edit(ctx, &updated); err != nil {
		return nil, fmt.Errorf("edit: %w", err)
	}
	s.invalidate(ctx, updated.ID)

	token, err := s.tokens.Issue(&updated)
	if err != nil {
		return nil, fmt.Errorf("edit: reissue token: %w", err)
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("profile updated")

	return &ports.EditResult{
		Envelope: domain.Ok(http.StatusOK, "The profile has been updated"),
		Token:    token,
		User:     toView(&updated),
	}, nil
}

// Disable soft-deletes the caller's account.
func (s *ProfessionalUserService) Disable(ctx context.Context, actor *domain.ProfessionalUser) (domain.Envelope, error) {
	if actor == nil {
		return domain.Fail(domain.ErrMissingToken), domain.ErrMissingToken
	}

	if err := s.repo.ChangeStateToFalse(ctx, actor.ID); err != nil {
		err = fmt.Errorf("disable: %w", err)
		return domain.Fail(err), err
	}
	s.invalidate(ctx, actor.ID)

	s.logger.Info().Str("user_id", actor.ID).Msg("account disabled")
	return domain.Ok(http.StatusOK, "The account has been disabled"), nil
}

// Remove hard-deletes the caller's account.
func (s *ProfessionalUserService) Remove(ctx context.Context, actor *domain.ProfessionalUser) error {
	if actor == nil {
		return domain.ErrMissingToken
	}

	if err := s.repo.Remove(ctx, actor.ID); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	s.invalidate(ctx, actor.ID)

	s.logger.Info().Str("user_id", actor.ID).Msg("account removed")
	return nil
}

// lookup reads through the cache when one is configured. Cache failures are
// logged and fall back to the repository.
func (s *ProfessionalUserService) lookup(ctx context.Context, id string) (*domain.ProfessionalUser, error) {
	if s.cache != nil {
		user, hit, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		case hit:
			return user, nil
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return user, nil
}

func (s *ProfessionalUserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
}

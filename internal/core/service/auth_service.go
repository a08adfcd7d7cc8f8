package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

// AuthService implements registration, login and token resolution.
type AuthService struct {
	repo   ports.ProfessionalUserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

const maxPasswordBytes = 72

func NewAuthService(repo ports.ProfessionalUserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.ProfessionalUserView, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewError(domain.KindValidation, "email and password are required")
	}
	// bcrypt rejects anything longer; multibyte passwords hit this well
	// before 72 characters.
	if len(in.Password) > maxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}
	if in.CategoryID <= 0 {
		return nil, domain.ErrInvalidCategory
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.ProfessionalUser{
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyProfile(user, in.ProfileInput)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Int("category_id", created.CategoryID).Msg("professional user registered")

	view := toView(created)
	return &view, nil
}

// Login checks credentials and issues a session token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ports.ProfessionalUserView, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	view := toView(user)
	return token, &view, nil
}

// Authenticate resolves token to a live, active user. The user is reloaded
// from the repository on every call so deletions and disables take effect
// without server-side token revocation.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.ProfessionalUser, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserGone
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !user.Active {
		return nil, domain.ErrAccountDisabled
	}
	return user, nil
}

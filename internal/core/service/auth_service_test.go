package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

func newTestAuthService(repo *stubUserRepo) (*AuthService, *JWTIssuer) {
	issuer := NewJWTIssuer("secret", "professionals-api", time.Hour)
	return NewAuthService(repo, issuer, zerolog.Nop()), issuer
}

func registerInput(email, password string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:    email,
		Password: password,
		ProfileInput: ports.ProfileInput{
			Name:       "Juan Pedro",
			LastName:   "Lopez",
			DNI:        "40587219",
			Province:   "Buenos Aires",
			City:       "La Plata",
			Tel:        "0221156789456",
			BirthDate:  "1988-07-15",
			AuthNumber: "89ab567c890123XYz",
			CategoryID: 5,
		},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	view, err := svc.Register(context.Background(), registerInput("  Juan@Example.com ", "pass1234"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if view.Email != "juan@example.com" {
		t.Fatalf("expected normalized email, got %q", view.Email)
	}
	if view.CategoryID != 5 || view.Name != "Juan Pedro" {
		t.Fatalf("unexpected view: %+v", view)
	}

	stored, _ := repo.GetByID(context.Background(), view.ID)
	if !stored.Active {
		t.Fatalf("expected new account to be active")
	}
	if stored.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput("", "pass")); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	in := registerInput("a@example.com", "pass")
	in.CategoryID = 0
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestAuthService_Register_PasswordOverBcryptLimit(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	// 72 characters but 144 bytes.
	in := registerInput("ana@example.com", strings.Repeat("ñ", 72))
	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation kind, got %v", domain.KindOf(err))
	}
	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Fatalf("expected nothing stored, got %d users", n)
	}

	// Exactly 72 bytes is accepted.
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", strings.Repeat("a", 72))); err != nil {
		t.Fatalf("72-byte password rejected: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), registerInput("bob@example.com", "pass"))
	if _, err := svc.Register(context.Background(), registerInput("BOB@example.com", "pass2")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, issuer := newTestAuthService(newStubUserRepo())

	registered, err := svc.Register(context.Background(), registerInput("carol@example.com", "s3cret"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	id, err := issuer.Parse(token)
	if err != nil || id != registered.ID {
		t.Fatalf("token does not resolve to user: %s %v", id, err)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), registerInput("dave@example.com", "goodpass"))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Disabled(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	view, _ := svc.Register(context.Background(), registerInput("erin@example.com", "pass"))
	_ = repo.ChangeStateToFalse(context.Background(), view.ID)

	if _, _, err := svc.Login(context.Background(), "erin@example.com", "pass"); err != domain.ErrAccountDisabled {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := newStubUserRepo()
	svc, issuer := newTestAuthService(repo)

	active := repo.seed(&domain.ProfessionalUser{Email: "a@example.com", Active: true})
	disabled := repo.seed(&domain.ProfessionalUser{Email: "d@example.com", Active: false})
	gone := &domain.ProfessionalUser{ID: "deleted", Email: "x@example.com"}

	activeToken, _ := issuer.Issue(active)
	disabledToken, _ := issuer.Issue(disabled)
	goneToken, _ := issuer.Issue(gone)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"missing", "", domain.ErrMissingToken},
		{"malformed", "abc.def", domain.ErrInvalidToken},
		{"deleted user", goneToken, domain.ErrUserGone},
		{"disabled user", disabledToken, domain.ErrAccountDisabled},
		{"valid", activeToken, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(context.Background(), tt.token)
			if err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && user.ID != active.ID {
				t.Fatalf("expected user %s, got %+v", active.ID, user)
			}
		})
	}
}

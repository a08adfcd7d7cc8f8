package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("secret", "professionals-api", time.Hour)
	user := &domain.ProfessionalUser{ID: "u-1", Email: "juan@example.com"}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	id, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if id != "u-1" {
		t.Fatalf("expected subject u-1, got %s", id)
	}
}

func TestJWTIssuer_ReissueYieldsDistinctToken(t *testing.T) {
	issuer := NewJWTIssuer("secret", "", time.Hour)
	user := &domain.ProfessionalUser{ID: "u-1"}

	a, _ := issuer.Issue(user)
	b, _ := issuer.Issue(user)
	if a == b {
		t.Fatalf("expected rotated token to differ")
	}
}

func TestJWTIssuer_Expired(t *testing.T) {
	issuer := NewJWTIssuer("secret", "", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := issuer.Issue(&domain.ProfessionalUser{ID: "u-1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	issuer.now = time.Now
	if _, err := issuer.Parse(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_WrongSecret(t *testing.T) {
	token, _ := NewJWTIssuer("secret", "", time.Hour).Issue(&domain.ProfessionalUser{ID: "u-1"})

	if _, err := NewJWTIssuer("other", "", time.Hour).Parse(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_WrongIssuer(t *testing.T) {
	token, _ := NewJWTIssuer("secret", "someone-else", time.Hour).Issue(&domain.ProfessionalUser{ID: "u-1"})

	if _, err := NewJWTIssuer("secret", "professionals-api", time.Hour).Parse(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_RejectsNoneAlgorithm(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := NewJWTIssuer("secret", "", time.Hour).Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_RequiresExpiry(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1"})
	signed, _ := tkn.SignedString([]byte("secret"))

	if _, err := NewJWTIssuer("secret", "", time.Hour).Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_Garbage(t *testing.T) {
	if _, err := NewJWTIssuer("secret", "", time.Hour).Parse("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

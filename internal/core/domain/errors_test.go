package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFail_ErrorImpliesNon2xx(t *testing.T) {
	errs := []error{
		ErrUserNotFound,
		ErrNoUsers,
		ErrEmailNotFound,
		ErrUserExists,
		ErrInvalidCredentials,
		ErrInvalidToken,
		ErrAccountDisabled,
		ErrInvalidCategory,
		NewError(Kind(99), "unknown kind"),
		errors.New("boom"),
		fmt.Errorf("wrapped: %w", ErrForbidden),
	}

	for _, err := range errs {
		env := Fail(err)
		if !env.Error {
			t.Fatalf("%v: expected error=true", err)
		}
		if env.Code >= 200 && env.Code < 300 {
			t.Fatalf("%v: expected non-2xx code, got %d", err, env.Code)
		}
	}
}

func TestFail_WrappedKeepsKindAndMessage(t *testing.T) {
	env := Fail(fmt.Errorf("edit: %w", ErrEmailNotFound))
	if env.Code != http.StatusNotFound || env.Message != "Email not found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestFail_HidesInternalDetails(t *testing.T) {
	env := Fail(errors.New("dial tcp 10.0.0.1:27017: connection refused"))
	if env.Code != http.StatusInternalServerError || env.Message != "internal server error" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(fmt.Errorf("x: %w", ErrAccountDisabled)) != KindForbidden {
		t.Fatalf("expected forbidden")
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Fatalf("expected internal")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Juan@Example.COM "); got != "juan@example.com" {
		t.Fatalf("unexpected normalized email %q", got)
	}
}

package domain

import (
	"context"
	"strings"
	"time"
)

// ProfessionalUser is a tradesperson offering services under a category.
type ProfessionalUser struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	LastName     string
	DNI          string
	Province     string
	City         string
	Tel          string
	Link         string
	AboutMe      string
	Gender       string
	BirthDate    string
	AuthNumber   string
	Img          string
	CategoryID   int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type userCtxKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, u *ProfessionalUser) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFrom returns the authenticated user stored by WithUser, if any.
func UserFrom(ctx context.Context) (*ProfessionalUser, bool) {
	u, ok := ctx.Value(userCtxKey{}).(*ProfessionalUser)
	return u, ok && u != nil
}

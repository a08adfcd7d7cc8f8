package ports

import (
	"context"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// ProfessionalUserView is the public shape of a professional user.
type ProfessionalUserView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	DNI        string `json:"dni"`
	Province   string `json:"province"`
	City       string `json:"city"`
	Tel        string `json:"tel"`
	Link       string `json:"link"`
	AboutMe    string `json:"about_me"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birth_date"`
	AuthNumber string `json:"auth_number"`
	Img        string `json:"img"`
	CategoryID int    `json:"category_id"`
}

// ProfileInput carries the editable profile attributes.
type ProfileInput struct {
	Name       string
	LastName   string
	DNI        string
	Province   string
	City       string
	Tel        string
	Link       string
	AboutMe    string
	Gender     string
	BirthDate  string
	AuthNumber string
	Img        string
	CategoryID int
}

// EditProfileInput is the DTO for an authenticated profile edit.
// Email identifies the record and must belong to the caller.
type EditProfileInput struct {
	Email string
	ProfileInput
}

// EditResult is returned by a successful edit. Token replaces the caller's
// previous session token.
type EditResult struct {
	Envelope domain.Envelope
	Token    string
	User     ProfessionalUserView
}

// ProfessionalUserService defines use-case operations over professional users.
type ProfessionalUserService interface {
	GetAll(ctx context.Context) ([]ProfessionalUserView, error)
	GetByID(ctx context.Context, id string) (*ProfessionalUserView, error)
	FindByCategory(ctx context.Context, categoryID int) ([]ProfessionalUserView, error)
	Edit(ctx context.Context, actor *domain.ProfessionalUser, input EditProfileInput) (*EditResult, error)
	Disable(ctx context.Context, actor *domain.ProfessionalUser) (domain.Envelope, error)
	Remove(ctx context.Context, actor *domain.ProfessionalUser) error
}

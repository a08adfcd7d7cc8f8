package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manodeobra/professionals-api/internal/core/ports"
)

// --- Request types ---

type profileRequest struct {
	Name       string     `json:"name"        validate:"required,max=80"`
	LastName   string     `json:"last_name"   validate:"required,max=80"`
	DNI        string     `json:"dni"         validate:"omitempty,numeric,min=7,max=10"`
	Province   string     `json:"province"    validate:"max=80"`
	City       string     `json:"city"        validate:"max=80"`
	Tel        string     `json:"tel"         validate:"omitempty,phone"`
	Link       string     `json:"link"        validate:"max=255"`
	AboutMe    string     `json:"about_me"    validate:"max=1000"`
	Gender     string     `json:"gender"      validate:"max=30"`
	BirthDate  string     `json:"birth_date"  validate:"omitempty,birthdate"`
	AuthNumber string     `json:"auth_number" validate:"max=64"`
	Img        string     `json:"img"         validate:"max=255"`
	CategoryID categoryID `json:"category_id" validate:"required,gt=0" swaggertype:"integer"`
}

// categoryID decodes from a JSON number or a numeric string ("5"), which
// is what form-backed clients send.
type categoryID int

func (id *categoryID) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("category_id must be an integer, got %s", data)
	}
	*id = categoryID(n)
	return nil
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
	profileRequest
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// editProfileRequest identifies the account by email; the email itself is
// not editable.
type editProfileRequest struct {
	Email string `json:"email" validate:"required,email"`
	profileRequest
}

// --- Response types ---

type loginResponse struct {
	Token string                      `json:"token"`
	User  *ports.ProfessionalUserView `json:"user"`
}

// editProfileResponse is the envelope plus the refreshed profile.
type editProfileResponse struct {
	Error   bool                       `json:"error"`
	Message string                     `json:"message"`
	Code    int                        `json:"code"`
	User    ports.ProfessionalUserView `json:"user"`
}

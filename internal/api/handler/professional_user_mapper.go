package handler

import (
	"strings"

	"github.com/manodeobra/professionals-api/internal/core/ports"
)

// --- Request → Service input ---

func toProfileInput(p profileRequest) ports.ProfileInput {
	return ports.ProfileInput{
		Name:       strings.TrimSpace(p.Name),
		LastName:   strings.TrimSpace(p.LastName),
		DNI:        strings.TrimSpace(p.DNI),
		Province:   strings.TrimSpace(p.Province),
		City:       strings.TrimSpace(p.City),
		Tel:        strings.TrimSpace(p.Tel),
		Link:       strings.TrimSpace(p.Link),
		AboutMe:    strings.TrimSpace(p.AboutMe),
		Gender:     strings.TrimSpace(p.Gender),
		BirthDate:  p.BirthDate,
		AuthNumber: strings.TrimSpace(p.AuthNumber),
		Img:        strings.TrimSpace(p.Img),
		CategoryID: int(p.CategoryID),
	}
}

func toRegisterInput(req signupRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		ProfileInput: toProfileInput(req.profileRequest),
	}
}

func toEditInput(req editProfileRequest) ports.EditProfileInput {
	return ports.EditProfileInput{
		Email:        req.Email,
		ProfileInput: toProfileInput(req.profileRequest),
	}
}

// --- Service result → HTTP response ---

func toEditResponse(r *ports.EditResult) editProfileResponse {
	return editProfileResponse{
		Error:   r.Envelope.Error,
		Message: r.Envelope.Message,
		Code:    r.Envelope.Code,
		User:    r.User,
	}
}

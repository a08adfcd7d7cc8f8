package service

import (
	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

func toView(u *domain.ProfessionalUser) ports.ProfessionalUserView {
	return ports.ProfessionalUserView{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		LastName:   u.LastName,
		DNI:        u.DNI,
		Province:   u.Province,
		City:       u.City,
		Tel:        u.Tel,
		Link:       u.Link,
		AboutMe:    u.AboutMe,
		Gender:     u.Gender,
		BirthDate:  u.BirthDate,
		AuthNumber: u.AuthNumber,
		Img:        u.Img,
		CategoryID: u.CategoryID,
	}
}

func toViews(users []*domain.ProfessionalUser) []ports.ProfessionalUserView {
	out := make([]ports.ProfessionalUserView, len(users))
	for i, u := range users {
		out[i] = toView(u)
	}
	return out
}

// applyProfile copies the editable attributes onto u.
func applyProfile(u *domain.ProfessionalUser, p ports.ProfileInput) {
	u.Name = p.Name
	u.LastName = p.LastName
	u.DNI = p.DNI
	u.Province = p.Province
	u.City = p.City
	u.Tel = p.Tel
	u.Link = p.Link
	u.AboutMe = p.AboutMe
	u.Gender = p.Gender
	u.BirthDate = p.BirthDate
	u.AuthNumber = p.AuthNumber
	u.Img = p.Img
	u.CategoryID = p.CategoryID
}

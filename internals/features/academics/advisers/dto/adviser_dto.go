package dto

import (
	adminModel "spis_backend/internals/features/academics/advisers/model"
)

/* =========================================================
   RESPONSE DTO
   ========================================================= */

// AdviserDTO mirrors what the frontend management panel consumes.
type AdviserDTO struct {
	AdminID     int     `json:"adminId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	MiddleName  *string `json:"middleName,omitempty"`
	FacultyID   *int    `json:"facultyId,omitempty"`
	Email       *string `json:"email,omitempty"`
	ImagePath   *string `json:"imagePath,omitempty"`
	Description *string `json:"description,omitempty"`
	Role        *string `json:"role,omitempty"`
}

func FromAdminModel(m *adminModel.AdminModel) AdviserDTO {
	return AdviserDTO{
		AdminID:     m.AdminID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		MiddleName:  m.MiddleName,
		FacultyID:   m.FacultyID,
		Email:       m.Email,
		ImagePath:   m.ImagePath,
		Description: m.Description,
		Role:        m.Role,
	}
}

func FromAdminModels(models []adminModel.AdminModel) []AdviserDTO {
	out := make([]AdviserDTO, 0, len(models))
	for i := range models {
		out = append(out, FromAdminModel(&models[i]))
	}
	return out
}

/* =========================================================
   REQUEST DTO
   ========================================================= */

type UpdateAdviserRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	MiddleName  *string `json:"middleName" validate:"omitempty,max=100"`
	Role        *string `json:"role" validate:"omitempty,oneof=faculty staff"`
	FacultyID   *int    `json:"facultyId" validate:"omitempty,min=1"`
	ImagePath   *string `json:"imagePath" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
}

package dto

import (
	studentModel "spis_backend/internals/features/academics/students/model"
)

type StudentDTO struct {
	StudentID  int     `json:"studentId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MiddleName *string `json:"middleName,omitempty"`
	FacultyID  *int    `json:"facultyId,omitempty"`
	GroupID    *int    `json:"groupId,omitempty"`
}

func FromStudentModel(m *studentModel.StudentModel) StudentDTO {
	return StudentDTO{
		StudentID:  m.StudentID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		MiddleName: m.MiddleName,
		FacultyID:  m.FacultyID,
		GroupID:    m.GroupID,
	}
}

func FromStudentModels(models []studentModel.StudentModel) []StudentDTO {
	out := make([]StudentDTO, 0, len(models))
	for i := range models {
		out = append(out, FromStudentModel(&models[i]))
	}
	return out
}

type CreateStudentRequest struct {
	FirstName  string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string  `json:"lastName" validate:"required,min=1,max=100"`
	MiddleName *string `json:"middleName" validate:"omitempty,max=100"`
	FacultyID  *int    `json:"facultyId" validate:"omitempty,min=1"`
	GroupID    *int    `json:"groupId" validate:"omitempty,min=1"`
}

func (r *CreateStudentRequest) ToModel() studentModel.StudentModel {
	return studentModel.StudentModel{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		FacultyID:  r.FacultyID,
		GroupID:    r.GroupID,
	}
}

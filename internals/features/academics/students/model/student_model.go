package model

import (
	facultyModel "spis_backend/internals/features/academics/faculties/model"
)

type StudentModel struct {
	StudentID  int     `gorm:"primaryKey;autoIncrement;column:student_id" json:"student_id"`
	FirstName  string  `gorm:"type:varchar(100);not null;column:first_name" json:"first_name"`
	LastName   string  `gorm:"type:varchar(100);not null;column:last_name" json:"last_name"`
	MiddleName *string `gorm:"type:varchar(100);column:middle_name" json:"middle_name,omitempty"`
	FacultyID  *int    `gorm:"column:faculty_id" json:"faculty_id,omitempty"`
	GroupID    *int    `gorm:"column:group_id" json:"group_id,omitempty"`

	Faculty *facultyModel.FacultyModel `gorm:"foreignKey:FacultyID" json:"-"`
	Group   *GroupModel                `gorm:"foreignKey:GroupID" json:"-"`
}

func (StudentModel) TableName() string { return "student" }

package model

import (
	facultyModel "spis_backend/internals/features/academics/faculties/model"
)

// AdminModel covers every staff-side account: faculty advisers, staff
// uploaders, and freshly signed-in Google accounts that have no role yet.
type AdminModel struct {
	AdminID     int     `gorm:"primaryKey;autoIncrement;column:admin_id" json:"admin_id"`
	FirstName   string  `gorm:"type:varchar(100);not null;column:first_name" json:"first_name"`
	LastName    string  `gorm:"type:varchar(100);not null;column:last_name" json:"last_name"`
	MiddleName  *string `gorm:"type:varchar(100);column:middle_name" json:"middle_name,omitempty"`
	Role        *string `gorm:"type:varchar(20);column:role" json:"role,omitempty"`
	Email       *string `gorm:"type:varchar(255);unique;column:email" json:"email,omitempty"`
	Password    *string `gorm:"type:varchar(255);column:password" json:"-"`
	ImagePath   *string `gorm:"type:text;column:image_path" json:"image_path,omitempty"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`
	FacultyID   *int    `gorm:"column:faculty_id" json:"faculty_id,omitempty"`

	Faculty *facultyModel.FacultyModel `gorm:"foreignKey:FacultyID" json:"-"`
}

func (AdminModel) TableName() string { return "admin" }

// IsFaculty reports whether the account holds the faculty role.
func (a *AdminModel) IsFaculty() bool {
	return a.Role != nil && *a.Role == "faculty"
}

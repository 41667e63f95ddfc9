package model

import (
	"gorm.io/datatypes"

	adminModel "spis_backend/internals/features/academics/advisers/model"
	facultyModel "spis_backend/internals/features/academics/faculties/model"
	studentModel "spis_backend/internals/features/academics/students/model"
	tagModel "spis_backend/internals/features/academics/tags/model"
)

// SPModel is one Special Project record. Authorship and tagging are
// many-to-many through sp_students and sp_tags.
type SPModel struct {
	SPID         int             `gorm:"primaryKey;autoIncrement;column:sp_id" json:"sp_id"`
	Title        string          `gorm:"type:text;not null;column:title" json:"title"`
	Year         *int            `gorm:"column:year" json:"year,omitempty"`
	Semester     *string         `gorm:"type:varchar(20);column:semester" json:"semester,omitempty"`
	AbstractText *string         `gorm:"type:text;column:abstract_text" json:"abstract_text,omitempty"`
	URI          *string         `gorm:"type:text;column:uri" json:"uri,omitempty"`
	DocumentPath *string         `gorm:"type:text;column:document_path" json:"document_path,omitempty"`
	DateIssued   *datatypes.Date `gorm:"column:date_issued" json:"date_issued,omitempty"`
	ViewCount    int             `gorm:"not null;default:0;column:view_count" json:"view_count"`

	UploadedByID int  `gorm:"not null;column:uploaded_by" json:"uploaded_by"`
	AdviserID    *int `gorm:"column:adviser_id" json:"adviser_id,omitempty"`
	FacultyID    *int `gorm:"column:faculty_id" json:"faculty_id,omitempty"`

	UploadedBy *adminModel.AdminModel     `gorm:"foreignKey:UploadedByID" json:"-"`
	Adviser    *adminModel.AdminModel     `gorm:"foreignKey:AdviserID" json:"-"`
	Faculty    *facultyModel.FacultyModel `gorm:"foreignKey:FacultyID" json:"-"`

	Tags     []tagModel.TagModel         `gorm:"many2many:sp_tags;foreignKey:SPID;joinForeignKey:sp_id;References:TagID;joinReferences:tag_id" json:"-"`
	Students []studentModel.StudentModel `gorm:"many2many:sp_students;foreignKey:SPID;joinForeignKey:sp_id;References:StudentID;joinReferences:student_id" json:"-"`
}

func (SPModel) TableName() string { return "sp" }

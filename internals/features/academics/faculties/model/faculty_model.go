package model

type FacultyModel struct {
	FacultyID   int    `gorm:"primaryKey;autoIncrement;column:faculty_id" json:"facultyId"`
	FacultyName string `gorm:"type:varchar(120);not null;column:faculty_name" json:"facultyName"`
}

func (FacultyModel) TableName() string { return "faculty" }

package model

type GroupModel struct {
	GroupID   int    `gorm:"primaryKey;autoIncrement;column:group_id" json:"group_id"`
	GroupName string `gorm:"type:varchar(120);not null;unique;column:group_name" json:"group_name"`
}

func (GroupModel) TableName() string { return "groups" }

package model

// TagModel rows are unique by name; lookups are case-insensitive so the
// unique constraint is the last line of defense against duplicates that
// differ only by case.
type TagModel struct {
	TagID   int    `gorm:"primaryKey;autoIncrement;column:tag_id" json:"tag_id"`
	TagName string `gorm:"type:varchar(120);not null;unique;column:tag_name" json:"tag_name"`
}

func (TagModel) TableName() string { return "tag" }

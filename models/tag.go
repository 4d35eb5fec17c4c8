package models

// Tag is a catalogue entry. Tags are seeded, never created through the API.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tags_name"`
}

func (Tag) TableName() string { return "tags" }

// Expertise is a proficiency level
type Expertise struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_expertises_name"`
}

func (Expertise) TableName() string { return "expertises" }

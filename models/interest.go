package models

import "github.com/google/uuid"

// Interest is a tag a user declared interest in. The feed filters on these.
type Interest struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_interest_unique"`
	TagID  uint      `json:"tagId" db:"tag_id" gorm:"not null;uniqueIndex:idx_interest_unique"`

	Tag Tag `json:"tag" gorm:"foreignKey:TagID;references:ID"`
}

func (Interest) TableName() string { return "interests" }

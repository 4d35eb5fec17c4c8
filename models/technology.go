package models

import "github.com/google/uuid"

// Technology is a tag the project uses together with the expertise level it asks for
type Technology struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_technology_project_id"`
	TagID       uint      `json:"tagId" db:"tag_id" gorm:"not null"`
	ExpertiseID uint      `json:"expertiseId" db:"expertise_id" gorm:"not null"`

	Tag       Tag       `json:"tag" gorm:"foreignKey:TagID;references:ID"`
	Expertise Expertise `json:"expertise" gorm:"foreignKey:ExpertiseID;references:ID"`
}

func (Technology) TableName() string { return "technologies" }

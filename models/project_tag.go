package models

import "github.com/google/uuid"

// ProjectTag links a project to a catalogue tag
type ProjectTag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_tag_project_id"`
	TagID     uint      `json:"tagId" db:"tag_id" gorm:"not null;index:idx_project_tag_tag_id"`

	Tag Tag `json:"tag" gorm:"foreignKey:TagID;references:ID"`
}

func (ProjectTag) TableName() string { return "project_tags" }

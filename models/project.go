package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is owned by a single user. Deleted marks a soft delete.
type Project struct {
	ID           uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID       uuid.UUID    `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_projects_user_id"`
	Name         string       `json:"name" db:"name" gorm:"type:text;not null"`
	Abstract     string       `json:"abstract" db:"abstract" gorm:"type:text;not null"`
	Description  string       `json:"description" db:"description" gorm:"type:text;not null"`
	Deleted      bool         `json:"-" db:"deleted" gorm:"not null;default:false"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at" gorm:"not null;index:idx_projects_created_at,sort:desc"`
	User         *User        `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	ProjectTags  []ProjectTag `json:"projectTags,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Technologies []Technology `json:"technologies,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Positions    []Position   `json:"positions,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string { return "projects" }

package models

import "github.com/google/uuid"

// Position is an open seat on a project. The id is supplied by the client.
type Position struct {
	ID          string    `json:"id" db:"id" gorm:"type:varchar(36);primaryKey"`
	ProjectID   uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_position_project_id"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Amount      int       `json:"amount" db:"amount" gorm:"not null;check:chk_positions_amount,amount > 0"`
}

func (Position) TableName() string { return "positions" }

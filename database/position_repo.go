package database

import (
	"github.com/collabhub/backend/models"
	"gorm.io/gorm"
)

type PositionRepo struct {
	db *gorm.DB
}

func NewPositionRepo(db *gorm.DB) *PositionRepo {
	return &PositionRepo{db}
}

// AddMany inserts every position in one statement. An empty slice is a no-op.
func (r *PositionRepo) AddMany(positions []models.Position) error {
	if len(positions) == 0 {
		return nil
	}
	return r.db.Create(&positions).Error
}

package database

import (
	"github.com/collabhub/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// AddMany inserts every technology in one statement. An empty slice is a no-op.
func (r *TechnologyRepo) AddMany(technologies []models.Technology) error {
	if len(technologies) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&technologies).Error
}

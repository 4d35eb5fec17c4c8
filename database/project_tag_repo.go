package database

import (
	"github.com/collabhub/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// AddMany inserts every tag link in one statement. An empty slice is a no-op.
func (r *ProjectTagRepo) AddMany(projectTags []models.ProjectTag) error {
	if len(projectTags) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&projectTags).Error
}

package database

import (
	"context"

	"github.com/collabhub/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferenceRepo owns the tag and expertise catalogues.
type ReferenceRepo struct {
	db *gorm.DB
}

func NewReferenceRepo(db *gorm.DB) *ReferenceRepo {
	return &ReferenceRepo{db}
}

// Seed inserts the given expertise levels and tags in one transaction. Existing names are skipped.
func (r *ReferenceRepo) Seed(ctx context.Context, expertiseNames, tagNames []string) error {
	expertises := make([]models.Expertise, 0, len(expertiseNames))
	for _, name := range expertiseNames {
		expertises = append(expertises, models.Expertise{Name: name})
	}
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tags = append(tags, models.Tag{Name: name})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skipExisting := clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}
		if len(expertises) > 0 {
			if err := tx.Clauses(skipExisting).Create(&expertises).Error; err != nil {
				return err
			}
		}
		if len(tags) > 0 {
			return tx.Clauses(skipExisting).Create(&tags).Error
		}
		return nil
	})
}

// FindAllTags returns the tag catalogue ordered by id.
func (r *ReferenceRepo) FindAllTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Order("id").Find(&tags).Error
	return tags, err
}

// FindAllExpertises returns the expertise levels, lowest first.
func (r *ReferenceRepo) FindAllExpertises(ctx context.Context) ([]models.Expertise, error) {
	var expertises []models.Expertise
	err := r.db.WithContext(ctx).Order("id").Find(&expertises).Error
	return expertises, err
}

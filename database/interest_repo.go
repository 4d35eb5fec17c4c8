package database

import (
	"context"

	"github.com/collabhub/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterestRepo struct {
	db *gorm.DB
}

func NewInterestRepo(db *gorm.DB) *InterestRepo {
	return &InterestRepo{db}
}

// FindTagIDsByUser returns the tag ids the user declared interest in.
func (r *InterestRepo) FindTagIDsByUser(ctx context.Context, userID uuid.UUID) ([]uint, error) {
	var tagIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Interest{}).
		Where("user_id = ?", userID).
		Pluck("tag_id", &tagIDs).Error
	return tagIDs, err
}

// Add records one interest.
func (r *InterestRepo) Add(ctx context.Context, interest *models.Interest) error {
	return r.db.WithContext(ctx).Omit("Tag").Create(interest).Error
}

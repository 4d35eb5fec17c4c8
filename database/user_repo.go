package database

import (
	"context"
	"errors"

	"github.com/collabhub/backend/models"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts a new user. The id is generated by the database.
func (r *UserRepo) Add(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Omit("Interests").Create(user).Error
}

// FindActiveByEmail returns the non-deleted user with the given email, or nil when there is none.
// Reads go to the primary so a login right after registering sees the new row.
func (r *UserRepo) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND deleted = ?", email, false).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

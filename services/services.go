// Package services holds the account and project operations behind the HTTP handlers.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/database"
	"github.com/collabhub/backend/errs"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/validation"
	"github.com/google/uuid"
)

// DefaultTimeout bounds the persistence work of a single operation.
const DefaultTimeout = 5 * time.Second

type UserStore interface {
	Add(ctx context.Context, user *models.User) error
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
}

type InterestStore interface {
	FindTagIDsByUser(ctx context.Context, userID uuid.UUID) ([]uint, error)
}

type ProjectStore interface {
	AddWithLinks(ctx context.Context, project *models.Project, tags []models.ProjectTag,
		technologies []models.Technology, positions []models.Position) error
	FindFeed(ctx context.Context, viewerID uuid.UUID, tagIDs []uint) ([]*models.Project, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Project, error)
}

type Config struct {
	Timeout    time.Duration
	BcryptCost int
}

type Services struct {
	Users    *UserService
	Projects *ProjectService
}

// New wires both services to the repositories of db.
func New(db database.Database, tokens *auth.TokenService, v *validation.Validator, cfg Config) *Services {
	return &Services{
		Users:    NewUserService(db.UserRepo(), tokens, v, cfg),
		Projects: NewProjectService(db.UserRepo(), db.InterestRepo(), db.ProjectRepo(), v, cfg),
	}
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// validationFailure converts a validator result into the 400 error the handlers send.
func validationFailure(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return errs.NewValidationError(verr.Fields)
	}
	return errs.NewInternalErrorWithCause("validate payload", err)
}

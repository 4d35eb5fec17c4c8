package api

import (
	"context"

	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/services"
	"github.com/collabhub/backend/validation"
)

type userService interface {
	TokensEnabled() bool
	HashPassword(plain string) (string, error)
	Register(ctx context.Context, payload validation.UserPayload) error
	Authenticate(ctx context.Context, payload validation.LoginPayload) (services.Session, error)
	Refresh(ctx context.Context, token string) (services.Session, error)
	Verify(token string) (*auth.Claims, error)
}

type projectService interface {
	Create(ctx context.Context, email string, payload validation.ProjectPayload) (*models.Project, error)
	GetFeed(ctx context.Context, email string) ([]services.ProjectView, error)
	GetPersonal(ctx context.Context, email string) ([]services.ProjectView, error)
	GetSpecific(ctx context.Context, email, id string) (services.ProjectView, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(users userService, projects projectService, db pinger, r router) *routeHandlers {
	return &routeHandlers{
		userHandler:    newUserHandler(users),
		projectHandler: newProjectHandler(projects),
		healthHandler:  newHealthHandler(db, r.startupTime),
	}
}

package services

import (
	"context"
	"time"

	"github.com/collabhub/backend/errs"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ProjectService struct {
	users     UserStore
	interests InterestStore
	projects  ProjectStore
	validator *validation.Validator
	timeout   time.Duration
	logger    zerolog.Logger
}

func NewProjectService(users UserStore, interests InterestStore, projects ProjectStore, v *validation.Validator, cfg Config) *ProjectService {
	return &ProjectService{
		users:     users,
		interests: interests,
		projects:  projects,
		validator: v,
		timeout:   timeoutOrDefault(cfg.Timeout),
		logger:    log.With().Str("serviceName", "projectService").Logger(),
	}
}

// owner resolves the active account behind a verified token email.
func (s *ProjectService) owner(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "account", err)
	}
	if user == nil {
		return nil, errs.NewInactiveAccountError()
	}
	return user, nil
}

// Create stores a project with its tags, technologies and positions. Ownership always comes from email;
// the userId of the payload is only checked for shape.
func (s *ProjectService) Create(ctx context.Context, email string, payload validation.ProjectPayload) (*models.Project, error) {
	if err := s.validator.Validate(payload); err != nil {
		return nil, validationFailure(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		UserID:      user.ID,
		Name:        payload.Name,
		Abstract:    payload.Abstract,
		Description: payload.Description,
	}
	tags := make([]models.ProjectTag, 0, len(payload.Tags))
	for _, t := range payload.Tags {
		tags = append(tags, models.ProjectTag{TagID: uint(t.TagID)})
	}
	technologies := make([]models.Technology, 0, len(payload.Technologies))
	for _, t := range payload.Technologies {
		technologies = append(technologies, models.Technology{TagID: uint(t.TagID), ExpertiseID: uint(t.ExpertiseID)})
	}
	positions := make([]models.Position, 0, len(payload.Positions))
	for _, p := range payload.Positions {
		positions = append(positions, models.Position{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Amount:      p.Amount,
		})
	}

	if err := s.projects.AddWithLinks(ctx, project, tags, technologies, positions); err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID.String()).Msg("failed to create project")
		return nil, errs.NewTransactionFailedError("create", "project", err)
	}

	project.ProjectTags, project.Technologies, project.Positions = tags, technologies, positions
	s.logger.Info().Str("projectID", project.ID.String()).Str("userID", user.ID.String()).Msg("project created")
	return project, nil
}

// GetFeed lists other users' live projects matching the caller's interests, newest first.
// A caller without interests sees every other live project.
func (s *ProjectService) GetFeed(ctx context.Context, email string) ([]ProjectView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, err
	}

	tagIDs, err := s.interests.FindTagIDsByUser(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "interests", err)
	}

	projects, err := s.projects.FindFeed(ctx, user.ID, tagIDs)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return newProjectViews(projects), nil
}

// GetPersonal lists every project the caller owns, newest first. Soft-deleted projects are included.
func (s *ProjectService) GetPersonal(ctx context.Context, email string) ([]ProjectView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return newProjectViews(projects), nil
}

// GetSpecific returns one project of the caller. Projects owned by someone else are reported as not found.
func (s *ProjectService) GetSpecific(ctx context.Context, email, rawID string) (ProjectView, error) {
	if rawID == "" {
		return ProjectView{}, errs.NewMissingIDError("project")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ProjectView{}, errs.NewInvalidFieldError("id", "must be a valid UUID")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.owner(ctx, email)
	if err != nil {
		return ProjectView{}, err
	}

	project, err := s.projects.FindByIDAndOwner(ctx, id, user.ID)
	if err != nil {
		return ProjectView{}, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return ProjectView{}, errs.NewNotFound("project")
	}
	return newProjectView(project), nil
}

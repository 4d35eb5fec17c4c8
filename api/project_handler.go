package api

import (
	"net/http"

	"github.com/collabhub/backend/errs"
	"github.com/collabhub/backend/validation"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectService
}

func newProjectHandler(projects projectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// callerEmail returns the email claim stored by requireToken.
func (h projectHandler) callerEmail(r *http.Request) (string, error) {
	claims, err := ctxGetClaims(r.Context())
	if err != nil {
		return "", errs.NewMissingTokenError()
	}
	return claims.Email, nil
}

// createProject stores a project with its links
// @Summary Create project
// @Description Creates a project owned by the caller together with its tags, technologies and positions
// @Tags Projects
// @Accept json
// @Produce json
// @Success 201 {object} CreatedProjectResponse
// @Failure 400 {object} ErrorResponse "Validation failed or unknown tag/expertise"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Transaction failed"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := h.callerEmail(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload validation.ProjectPayload
		if err := validation.DecodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.Create(r.Context(), email, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("projectID", project.ID.String()).Str("owner", email).Msg("project created")
		h.responder.WriteJSON(w, http.StatusCreated, CreatedProjectResponse{
			Message: "Project created successfully",
			ID:      project.ID.String(),
		})
	}
}

// getFeed lists other users' projects matching the caller's interests
// @Summary Project feed
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectsResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /projects [get]
func (h projectHandler) getFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := h.callerEmail(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projects.GetFeed(r.Context(), email)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.logger.Debug().Str("viewer", email).Int("count", len(projects)).Msg("feed served")

		h.responder.WriteJSON(w, http.StatusOK, ProjectsResponse{Projects: projects, Message: "Projects fetched successfully"})
	}
}

// getPersonal lists the caller's projects
// @Summary Personal projects
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectsResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /projects/personal [get]
func (h projectHandler) getPersonal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := h.callerEmail(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projects.GetPersonal(r.Context(), email)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, ProjectsResponse{Projects: projects, Message: "Projects fetched successfully"})
	}
}

// getSpecific returns one of the caller's projects
// @Summary Personal project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Project id not provided or malformed"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/personal/{projectID} [get]
func (h projectHandler) getSpecific() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := h.callerEmail(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.GetSpecific(r.Context(), email, chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, ProjectResponse{Project: project, Message: "Project fetched successfully"})
	}
}

package api

import "github.com/collabhub/backend/services"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler    userHandler
	projectHandler projectHandler
	healthHandler  healthHandler
}

// MessageResponse is the data of an acknowledgement
// @Description Acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

// ErrorResponse is the data of every error response
// @Description Error response structure
type ErrorResponse struct {
	Message string            `json:"message" example:"validation failed"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// CreatedProjectResponse is returned after a project is stored
type CreatedProjectResponse struct {
	Message string `json:"message" example:"Project created successfully"`
	ID      string `json:"id"`
}

type ProjectsResponse struct {
	Projects []services.ProjectView `json:"projects"`
	Message  string                 `json:"message" example:"Projects fetched successfully"`
}

type ProjectResponse struct {
	Project services.ProjectView `json:"project"`
	Message string               `json:"message" example:"Project fetched successfully"`
}

type HealthResponse struct {
	State     string `json:"state" example:"ok"`
	StartedAt string `json:"startedAt"`
	Uptime    string `json:"uptime"`
}

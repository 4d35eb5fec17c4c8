package api

import (
	"github.com/go-chi/chi/v5"
)

func setupHealthRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.healthHandler.getHealth())
}

// setupUserRoutes mounts registration and login. Login with a valid token refreshes it.
func setupUserRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/users", func(r chi.Router) {
		r.With(authMiddleware.hashPassword).Post("/", handlers.userHandler.createUser())
		r.With(authMiddleware.refreshToken).Post("/auth", handlers.userHandler.authenticate())
	})
}

// setupProjectRoutes mounts the project endpoints, all of which require a token
func setupProjectRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/projects", func(r chi.Router) {
		r.Use(authMiddleware.requireToken)

		r.Post("/", handlers.projectHandler.createProject())
		r.Get("/", handlers.projectHandler.getFeed())
		r.Get("/personal", handlers.projectHandler.getPersonal())
		r.Get("/personal/{projectID}", handlers.projectHandler.getSpecific())
	})
}

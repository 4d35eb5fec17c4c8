package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/collabhub/backend/config"
	"github.com/collabhub/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, db pinger, svc *services.Services) (Server, error) {
	if svc == nil || svc.Users == nil || svc.Projects == nil {
		return Server{}, errors.New("services are not initialized")
	}

	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(svc.Users, svc.Projects, db, withConfig(cfg), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,  // Timeout for reading the entire request
		WriteTimeout: cfg.WriteTimeout, // Timeout for writing the response
		IdleTimeout:  cfg.IdleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.Config
	startupTime time.Time
}

func withConfig(c config.Config) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(users userService, projects projectService, db pinger, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(corsMiddleware(router.config.AcceptedOrigins))
	if router.config.LogPretty {
		chiRouter.Use(ColoredHTTPLoggingMiddleware)
	} else {
		chiRouter.Use(HTTPLoggingMiddleware(log.With().Str("handlerName", "http").Logger()))
	}

	// Initialize all handlers
	handlers := initializeHandlers(users, projects, db, router)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(users)

	setupHealthRoutes(chiRouter, handlers)
	chiRouter.Route("/api/v2", func(r chi.Router) {
		setupUserRoutes(r, handlers, authMiddleware)
		setupProjectRoutes(r, handlers, authMiddleware)
	})

	return chiRouter
}

// Start blocks serving requests. A server stopped by ShutdownGracefully returns nil.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

package api

import (
	"net/http"

	"github.com/collabhub/backend/services"
	"github.com/collabhub/backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     userService
}

func newUserHandler(users userService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
	}
}

// writeSession sends the profile and, when one was issued, the token in the Authorization header.
func writeSession(responder Responder, w http.ResponseWriter, session services.Session) {
	if session.Token != "" {
		w.Header().Set("Authorization", session.Token)
	}
	responder.WriteJSON(w, http.StatusOK, session.Profile)
}

// createUser registers an account
// @Summary Register
// @Description Creates an account. The password is hashed before validation.
// @Tags Users
// @Accept json
// @Produce json
// @Success 201 {object} MessageResponse "User created successfully"
// @Failure 400 {object} ErrorResponse "Validation failed or email already registered"
// @Failure 500 {object} ErrorResponse "Something went wrong"
// @Router /users [post]
func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.UserPayload
		if err := validation.DecodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.users.Register(r.Context(), payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("email", payload.Email).Msg("user registered")
		h.responder.WriteMessage(w, http.StatusCreated, "User created successfully")
	}
}

// authenticate logs in with email and password
// @Summary Log in
// @Description Returns the profile; the token is sent in the Authorization response header
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} services.Profile
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Wrong password"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /users/auth [post]
func (h userHandler) authenticate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.LoginPayload
		if err := validation.DecodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		session, err := h.users.Authenticate(r.Context(), payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Debug().Str("email", session.Profile.Email).Bool("tokenIssued", session.Token != "").Msg("user authenticated")
		writeSession(h.responder, w, session)
	}
}

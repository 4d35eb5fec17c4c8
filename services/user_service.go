package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/errs"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Profile is the public part of an account.
type Profile struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

// Session is an authenticated profile. Token is empty when signing is not configured.
type Session struct {
	Profile Profile
	Token   string
}

type UserService struct {
	users      UserStore
	tokens     *auth.TokenService
	validator  *validation.Validator
	timeout    time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(users UserStore, tokens *auth.TokenService, v *validation.Validator, cfg Config) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		validator:  v,
		timeout:    timeoutOrDefault(cfg.Timeout),
		bcryptCost: cfg.BcryptCost,
		logger:     log.With().Str("serviceName", "userService").Logger(),
	}
}

// TokensEnabled reports whether tokens can be issued and verified.
func (s *UserService) TokensEnabled() bool {
	return s.tokens.Enabled()
}

// HashPassword hashes a registration password before the payload is validated.
func (s *UserService) HashPassword(plain string) (string, error) {
	hash, err := auth.HashPasswordWithCost(plain, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", errs.NewValidationError(map[string]string{
			"password": fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes),
		})
	}
	if err != nil {
		return "", errs.NewInternalErrorWithCause("hash password", err)
	}
	return hash, nil
}

// Register stores a new account. The payload password must already be hashed.
func (s *UserService) Register(ctx context.Context, payload validation.UserPayload) error {
	if err := s.validator.Validate(payload); err != nil {
		return validationFailure(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user := &models.User{
		Name:            payload.Name,
		Lastname:        payload.Lastname,
		Email:           strings.TrimSpace(payload.Email),
		Password:        payload.Password,
		DepartmentEmail: payload.DepartmentEmail,
	}
	if err := s.users.Add(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return errs.NewDatabaseError("create", "user", err)
	}

	s.logger.Info().Str("userID", user.ID.String()).Msg("user created")
	return nil
}

// Authenticate checks an email and password pair against the active account with that email.
func (s *UserService) Authenticate(ctx context.Context, payload validation.LoginPayload) (Session, error) {
	if err := s.validator.Validate(payload); err != nil {
		return Session{}, validationFailure(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.users.FindActiveByEmail(ctx, strings.TrimSpace(payload.Email))
	if err != nil {
		return Session{}, errs.NewDatabaseError("find", "account", err)
	}
	if user == nil {
		return Session{}, errs.NewNotFound("account")
	}

	if err := auth.CheckPassword(payload.Password, user.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return Session{}, errs.NewWrongPasswordError()
		}
		return Session{}, errs.NewInternalErrorWithCause("compare password", err)
	}

	return s.session(user)
}

// Refresh exchanges a valid token tied to an active account for a fresh one.
func (s *UserService) Refresh(ctx context.Context, token string) (Session, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return Session{}, errs.NewExpiredTokenError(err)
		}
		return Session{}, errs.NewInvalidTokenError(err)
	}
	if !claims.Complete() {
		return Session{}, errs.NewInternalError("token claims are incomplete")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.users.FindActiveByEmail(ctx, claims.Email)
	if err != nil {
		return Session{}, errs.NewDatabaseError("find", "account", err)
	}
	if user == nil {
		return Session{}, errs.NewInactiveAccountError()
	}

	return s.session(user)
}

// Verify checks a token for the project endpoints.
func (s *UserService) Verify(token string) (*auth.Claims, error) {
	if !s.tokens.Enabled() {
		return nil, errs.NewMissingTokenError()
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError(err)
		}
		return nil, errs.NewInvalidTokenError(err)
	}
	return claims, nil
}

func (s *UserService) session(user *models.User) (Session, error) {
	session := Session{Profile: Profile{Name: user.Name, Lastname: user.Lastname, Email: user.Email}}
	if !s.tokens.Enabled() {
		return session, nil
	}

	token, err := s.tokens.Issue(user.Name, user.Lastname, user.Email)
	if err != nil {
		return Session{}, errs.NewInternalErrorWithCause("issue token", err)
	}
	session.Token = token
	return session, nil
}

package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrMissingToken    = errors.New("token not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInactiveAccount = errors.New("token does not correspond to any active account")
	ErrWrongPassword   = errors.New("wrong password")
	ErrMissingID       = errors.New("id not provided")
)

// Authentication & Authorization Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Field:      "authorization",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Field:      "authorization",
		Cause:      cause,
	}
}

func NewExpiredTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
		Field:      "authorization",
		Cause:      cause,
	}
}

func NewInactiveAccountError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInactiveAccount,
		Field:      "authorization",
	}
}

func NewWrongPasswordError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrWrongPassword,
		Field:      "password",
	}
}

// NewMissingIDError is returned when a path parameter naming entity is empty.
func NewMissingIDError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s %w", entity, ErrMissingID),
		Field:      "id",
	}
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInactiveAccount)
}

package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrDatabaseQuery = errors.New("database query failed")
)

// Database & Storage Specific Errors
var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
	ErrCheckConstraint           = errors.New("check constraint violation")
	ErrNotNullConstraint         = errors.New("not null constraint violation")
	ErrInvalidTextRepresentation = errors.New("invalid text representation")
	ErrTransactionFailed         = errors.New("transaction failed")
	ErrDatabaseTimeout           = errors.New("database timeout")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError classifies a persistence failure. Constraint violations reported by Postgres
// are client errors; everything else is a 500 whose cause is only logged.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Details:    details,
				Field:      pgErr.ConstraintName,
				Cause:      cause,
			}
		case pgerrcode.ForeignKeyViolation:
			return NewForeignKeyConstraintError(entity, pgErr.ConstraintName, cause)
		case pgerrcode.CheckViolation:
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid %s: %w", entity, ErrCheckConstraint),
				Details:    details,
				Field:      pgErr.ConstraintName,
				Cause:      cause,
			}
		case pgerrcode.NotNullViolation:
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("missing %s field: %w", entity, ErrNotNullConstraint),
				Details:    details,
				Field:      pgErr.ColumnName,
				Cause:      cause,
			}
		case pgerrcode.InvalidTextRepresentation:
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("malformed %s value: %w", entity, ErrInvalidTextRepresentation),
				Details:    details,
				Cause:      cause,
			}
		}
	}

	if errors.Is(cause, context.DeadlineExceeded) {
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrDatabaseTimeout,
			Details:    details,
			Cause:      cause,
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// NewTransactionFailedError keeps constraint violations as client errors and reports anything else as a
// failed transaction.
func NewTransactionFailedError(operation, entity string, cause error) *ApiErr {
	classified := NewDatabaseError(operation, entity, cause)
	if classified.StatusCode != http.StatusInternalServerError {
		return classified
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrTransactionFailed,
		Details:    fmt.Sprintf("Transaction failed during %s", operation),
		Cause:      cause,
		Field:      "transaction",
	}
}

func NewForeignKeyConstraintError(entity, constraint string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("invalid reference in %s: %w", entity, ErrForeignKeyConstraint),
		Details:    fmt.Sprintf("Foreign key constraint violation: %s", constraint),
		Cause:      cause,
		Field:      constraint,
	}
}

// Database & Storage Error Type Checkers
func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}

func IsTransactionFailedError(err error) bool {
	return errors.Is(err, ErrTransactionFailed)
}

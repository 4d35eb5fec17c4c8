package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/collabhub/backend/errs"
)

// MaxBodyBytes bounds every JSON request body.
const MaxBodyBytes int64 = 1 << 20

// DecodeJSON reads a single JSON value from the request body into dst. Failures are returned as 400 class
// *errs.ApiErr values.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return decodeFailure(err)
	}

	// Anything after the first value, other than whitespace, is rejected.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewMaxBodySizeExceededError(MaxBodyBytes)
		}
		return errs.NewInvalidJSONError(ErrTrailingData)
	}
	return nil
}

// ErrTrailingData is the cause reported when a body holds more than one JSON value.
var ErrTrailingData = errors.New("body must contain a single JSON value")

func decodeFailure(err error) error {
	var maxErr *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &maxErr):
		return errs.NewMaxBodySizeExceededError(MaxBodyBytes)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return errs.NewValidationError(map[string]string{field: "must be a " + typeErr.Type.String()})
	case errors.Is(err, io.EOF):
		return errs.NewValidationError(map[string]string{"body": "is required"})
	default:
		return errs.NewInvalidJSONError(err)
	}
}

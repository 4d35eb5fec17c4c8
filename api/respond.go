package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/collabhub/backend/errs"
	"github.com/rs/zerolog"
)

// maxResponseSize caps a single encoded response body.
const maxResponseSize = 10 * 1024 * 1024

// envelope wraps every response body.
type envelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data inside the envelope with the given status.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(envelope{Status: status, Data: data})
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		r.writeRaw(w, http.StatusInternalServerError, internalErrorBody)
		return
	}

	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")
		r.writeRaw(w, http.StatusInternalServerError, internalErrorBody)
		return
	}

	r.writeRaw(w, status, jsonData)
}

// WriteMessage writes {"message": message} inside the envelope.
func (r Responder) WriteMessage(w http.ResponseWriter, status int, message string) {
	r.WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteError is the single place where errors become responses. Errors that are not *errs.ApiErr are
// reported as a generic 500. The cause of a server error is logged and never sent.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Message: errs.ErrInternal.Error()})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Int("status", apiErr.StatusCode).Msg(apiErr.GetFullError())
	} else {
		r.logger.Debug().Int("status", apiErr.StatusCode).Str("field", apiErr.Field).Msg(apiErr.Error())
	}

	r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{
		Message: apiErr.Message(),
		Fields:  apiErr.Fields,
	})
}

var internalErrorBody = []byte(`{"status":500,"data":{"message":"something went wrong"}}`)

func (r Responder) writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

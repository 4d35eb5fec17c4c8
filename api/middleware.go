package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/errs"
	"github.com/collabhub/backend/validation"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder Responder
	users     userService
}

func newAuthMiddleware(users userService) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		users:     users,
	}
}

// requireToken rejects requests without a valid token and stores the verified claims in the context.
func (m authMiddleware) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.TokenFromHeader(r.Header.Get("Authorization"))
		if token == "" || !m.users.TokensEnabled() {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		claims, err := m.users.Verify(token)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithClaims(r.Context(), claims)))
	})
}

// refreshToken answers a login request carrying a valid token with a fresh one. Requests without a
// token, or when signing is not configured, continue to the password check.
func (m authMiddleware) refreshToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.TokenFromHeader(r.Header.Get("Authorization"))
		if token == "" || !m.users.TokensEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.users.Refresh(r.Context(), token)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}
		writeSession(m.responder, w, session)
	})
}

// hashPassword replaces the plaintext "password" of a JSON body with its bcrypt hash. Bodies that are
// not JSON objects, or have no string password, pass through unchanged and fail validation later.
func (m authMiddleware) hashPassword(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, validation.MaxBodyBytes))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				m.responder.WriteError(w, errs.NewMaxBodySizeExceededError(validation.MaxBodyBytes))
				return
			}
			m.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		r.Body.Close()

		var fields map[string]json.RawMessage
		var plain string
		if json.Unmarshal(body, &fields) == nil && isJSONString(fields["password"]) &&
			json.Unmarshal(fields["password"], &plain) == nil {
			hash, err := m.users.HashPassword(plain)
			if err != nil {
				m.responder.WriteError(w, err)
				return
			}
			fields["password"], _ = json.Marshal(hash)
			if rewritten, err := json.Marshal(fields); err == nil {
				body = rewritten
			}
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		r.Header.Set("Content-Length", strconv.Itoa(len(body)))
		next.ServeHTTP(w, r)
	})
}

func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// LogInternalServerErrors recovers panics into a 500 response and logs every 500.
func LogInternalServerErrors(next http.Handler) http.Handler {
	responder := NewResponder(log.With().Str("handlerName", "recoverer").Logger())

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("requestID", middleware.GetReqID(r.Context())).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !srw.wroteHeader {
					responder.WriteError(srw, errs.NewInternalError("panic"))
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("requestID", middleware.GetReqID(r.Context())).
				Msg("500 error response")
		}
	})
}

// corsMiddleware allows the configured origins and exposes the Authorization header so browsers can
// read issued tokens. An empty list allows any origin without credentials.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowCredentials := true
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
		allowCredentials = false
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	})
}

// HTTPLoggingMiddleware logs every request with a level chosen by its status code.
func HTTPLoggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(srw, r)

			var logEvent *zerolog.Event
			switch {
			case srw.status >= 500:
				logEvent = logger.Error()
			case srw.status >= 400:
				logEvent = logger.Warn()
			default:
				logEvent = logger.Info()
			}

			logEvent.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", srw.status).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Str("requestID", middleware.GetReqID(r.Context())).
				Msg("HTTP Request")
		})
	}
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return HTTPLoggingMiddleware(colorLogger)(next)
}

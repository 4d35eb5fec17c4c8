package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/services"
	"github.com/collabhub/backend/validation"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	enabled bool

	registered  []validation.UserPayload
	registerErr error

	session   services.Session
	authErr   error
	logins    []validation.LoginPayload
	refreshed []string

	claims    *auth.Claims
	verifyErr error
	hashErr   error
}

func (f *fakeUsers) TokensEnabled() bool { return f.enabled }

func (f *fakeUsers) HashPassword(plain string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plain, nil
}

func (f *fakeUsers) Register(_ context.Context, payload validation.UserPayload) error {
	f.registered = append(f.registered, payload)
	return f.registerErr
}

func (f *fakeUsers) Authenticate(_ context.Context, payload validation.LoginPayload) (services.Session, error) {
	f.logins = append(f.logins, payload)
	return f.session, f.authErr
}

func (f *fakeUsers) Refresh(_ context.Context, token string) (services.Session, error) {
	f.refreshed = append(f.refreshed, token)
	return f.session, f.authErr
}

func (f *fakeUsers) Verify(string) (*auth.Claims, error) {
	return f.claims, f.verifyErr
}

type fakeProjects struct {
	callers  []string
	created  []validation.ProjectPayload
	project  *models.Project
	views    []services.ProjectView
	view     services.ProjectView
	lookedUp []string
	err      error
}

func (f *fakeProjects) Create(_ context.Context, email string, payload validation.ProjectPayload) (*models.Project, error) {
	f.callers = append(f.callers, email)
	f.created = append(f.created, payload)
	return f.project, f.err
}

func (f *fakeProjects) GetFeed(_ context.Context, email string) ([]services.ProjectView, error) {
	f.callers = append(f.callers, email)
	return f.views, f.err
}

func (f *fakeProjects) GetPersonal(_ context.Context, email string) ([]services.ProjectView, error) {
	f.callers = append(f.callers, email)
	return f.views, f.err
}

func (f *fakeProjects) GetSpecific(_ context.Context, email, id string) (services.ProjectView, error) {
	f.callers = append(f.callers, email)
	f.lookedUp = append(f.lookedUp, id)
	return f.view, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

type decodedEnvelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode checks the envelope status matches the HTTP status and unmarshals data into dst.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var env decodedEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Equal(t, rec.Code, env.Status)
	if dst != nil {
		require.NoError(t, json.Unmarshal(env.Data, dst))
	}
}

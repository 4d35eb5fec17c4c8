package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/config"
	"github.com/collabhub/backend/errs"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectBody = `{
	"userId": "0b6f3c52-5b1e-4f7e-9a55-3f2d1c0e8a71",
	"name": "Compiler",
	"abstract": "A toy compiler",
	"description": "Looking for people who like parsers",
	"tags": [{"tagId": 1}],
	"technologies": [{"tagId": 1, "expertiseId": 2}],
	"positions": [{"id": "6f1c1a51-8a0e-4a39-9a4d-0b3c2a1e5f10", "name": "Backend", "description": "Go", "amount": 2}]
}`

func newTestRouter(users *fakeUsers, projects *fakeProjects, db pinger) http.Handler {
	return newRouter(users, projects, db, withConfig(config.Config{}), withStartupTime(time.Now().Add(-time.Minute)))
}

func authorized() http.Header {
	return http.Header{"Authorization": {"token"}}
}

func signedInUsers() *fakeUsers {
	return &fakeUsers{
		enabled: true,
		claims:  &auth.Claims{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com"},
	}
}

func TestCreateUserRoute(t *testing.T) {
	t.Run("hashes then registers", func(t *testing.T) {
		users := &fakeUsers{}
		rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users",
			`{"name":"Ada","lastname":"Lovelace","email":"ada@example.com","password":"hunter22"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body MessageResponse
		decode(t, rec, &body)
		assert.Equal(t, "User created successfully", body.Message)

		require.Len(t, users.registered, 1)
		assert.Equal(t, "hashed:hunter22", users.registered[0].Password)
		assert.Equal(t, "ada@example.com", users.registered[0].Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := &fakeUsers{registerErr: errs.NewAlreadyExists("user")}
		rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users",
			`{"name":"Ada","lastname":"Lovelace","email":"ada@example.com","password":"hunter22"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		decode(t, rec, nil)
	})

	t.Run("malformed body", func(t *testing.T) {
		users := &fakeUsers{}
		rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users", `{"name":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, users.registered)
	})
}

func TestAuthenticateRoute(t *testing.T) {
	profile := services.Profile{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com"}

	t.Run("credentials", func(t *testing.T) {
		users := &fakeUsers{enabled: true, session: services.Session{Profile: profile, Token: "issued"}}
		rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users/auth",
			`{"email":"ada@example.com","password":"hunter22"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "issued", rec.Header().Get("Authorization"))
		require.Len(t, users.logins, 1)
		assert.Equal(t, "hunter22", users.logins[0].Password)

		var got services.Profile
		decode(t, rec, &got)
		assert.Equal(t, profile, got)
	})

	t.Run("no token when signing is disabled", func(t *testing.T) {
		users := &fakeUsers{session: services.Session{Profile: profile}}
		rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users/auth",
			`{"email":"ada@example.com","password":"hunter22"}`, authorized())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Authorization"))
		assert.Empty(t, users.refreshed)
		assert.Len(t, users.logins, 1)
	})

	t.Run("token refresh skips the password check", func(t *testing.T) {
		users := &fakeUsers{enabled: true, session: services.Session{Profile: profile, Token: "fresh"}}
		rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users/auth",
			`{}`, authorized())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "fresh", rec.Header().Get("Authorization"))
		assert.Equal(t, []string{"token"}, users.refreshed)
		assert.Empty(t, users.logins)
	})

	for name, tc := range map[string]struct {
		err    error
		status int
	}{
		"unknown account": {errs.NewNotFoundError("account not found"), http.StatusNotFound},
		"wrong password":  {errs.NewWrongPasswordError(), http.StatusForbidden},
	} {
		t.Run(name, func(t *testing.T) {
			users := &fakeUsers{enabled: true, authErr: tc.err}
			rec := doRequest(t, newTestRouter(users, &fakeProjects{}, fakePinger{}), http.MethodPost, "/api/v2/users/auth",
				`{"email":"ada@example.com","password":"hunter22"}`, nil)

			assert.Equal(t, tc.status, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
			decode(t, rec, nil)
		})
	}
}

func TestProjectRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/api/v2/projects", projectBody},
		{http.MethodGet, "/api/v2/projects", ""},
		{http.MethodGet, "/api/v2/projects/personal", ""},
		{http.MethodGet, "/api/v2/projects/personal/" + uuid.NewString(), ""},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			projects := &fakeProjects{}
			rec := doRequest(t, newTestRouter(signedInUsers(), projects, fakePinger{}), route.method, route.path, route.body, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body ErrorResponse
			decode(t, rec, &body)
			assert.Equal(t, "token not found", body.Message)
			assert.Empty(t, projects.callers)
		})
	}
}

func TestCreateProjectRoute(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		projects := &fakeProjects{project: &models.Project{ID: id}}
		rec := doRequest(t, newTestRouter(signedInUsers(), projects, fakePinger{}), http.MethodPost, "/api/v2/projects",
			projectBody, authorized())

		require.Equal(t, http.StatusCreated, rec.Code)
		var body CreatedProjectResponse
		decode(t, rec, &body)
		assert.Equal(t, "Project created successfully", body.Message)
		assert.Equal(t, id.String(), body.ID)

		assert.Equal(t, []string{"ada@example.com"}, projects.callers)
		require.Len(t, projects.created, 1)
		assert.Equal(t, 2, projects.created[0].Technologies[0].ExpertiseID)
		assert.Equal(t, 2, projects.created[0].Positions[0].Amount)
	})

	t.Run("transaction failure hides the cause", func(t *testing.T) {
		projects := &fakeProjects{err: errs.NewTransactionFailedError("create", "project", errors.New("deadlock detected"))}
		rec := doRequest(t, newTestRouter(signedInUsers(), projects, fakePinger{}), http.MethodPost, "/api/v2/projects",
			projectBody, authorized())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "deadlock")
	})
}

func TestReadProjectRoutes(t *testing.T) {
	views := []services.ProjectView{{ID: uuid.NewString(), Name: "Compiler"}}

	for _, path := range []string{"/api/v2/projects", "/api/v2/projects/personal"} {
		t.Run(path, func(t *testing.T) {
			projects := &fakeProjects{views: views}
			rec := doRequest(t, newTestRouter(signedInUsers(), projects, fakePinger{}), http.MethodGet, path, "", authorized())

			require.Equal(t, http.StatusOK, rec.Code)
			var body ProjectsResponse
			decode(t, rec, &body)
			assert.Equal(t, "Projects fetched successfully", body.Message)
			assert.Equal(t, views[0].Name, body.Projects[0].Name)
			assert.Equal(t, []string{"ada@example.com"}, projects.callers)
		})
	}

	t.Run("specific", func(t *testing.T) {
		id := uuid.NewString()
		projects := &fakeProjects{view: services.ProjectView{ID: id, Name: "Compiler"}}
		rec := doRequest(t, newTestRouter(signedInUsers(), projects, fakePinger{}), http.MethodGet,
			"/api/v2/projects/personal/"+id, "", authorized())

		require.Equal(t, http.StatusOK, rec.Code)
		var body ProjectResponse
		decode(t, rec, &body)
		assert.Equal(t, "Project fetched successfully", body.Message)
		assert.Equal(t, id, body.Project.ID)
		assert.Equal(t, []string{id}, projects.lookedUp)
	})

	t.Run("specific not found", func(t *testing.T) {
		projects := &fakeProjects{err: errs.NewNotFound("project")}
		rec := doRequest(t, newTestRouter(signedInUsers(), projects, fakePinger{}), http.MethodGet,
			"/api/v2/projects/personal/"+uuid.NewString(), "", authorized())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body ErrorResponse
		decode(t, rec, &body)
		assert.Equal(t, "project not found", body.Message)
	})
}

func TestHealthRoute(t *testing.T) {
	rec := doRequest(t, newTestRouter(&fakeUsers{}, &fakeProjects{}, fakePinger{}), http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	decode(t, rec, &body)
	assert.Equal(t, "ok", body.State)
	assert.NotEmpty(t, body.StartedAt)
	assert.Equal(t, "1m0s", body.Uptime)

	rec = doRequest(t, newTestRouter(&fakeUsers{}, &fakeProjects{}, fakePinger{err: errors.New("down")}), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	decode(t, rec, &body)
	assert.Equal(t, "unavailable", body.State)
}

func TestNewServerRequiresServices(t *testing.T) {
	_, err := NewServer(config.Config{Port: "8080"}, fakePinger{}, nil)
	assert.Error(t, err)

	srv, err := NewServer(config.Config{Port: "9090", ReadTimeout: time.Second}, fakePinger{}, &services.Services{
		Users:    &services.UserService{},
		Projects: &services.ProjectService{},
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
}

package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"exercise-tracker/internal/entities"
	"exercise-tracker/internal/repository/memory"
	"exercise-tracker/internal/transport/http/dto"
	"exercise-tracker/internal/usecase"
	"exercise-tracker/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var now = time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, layout string, opts RouteOptions) *fiber.App {
	t.Helper()

	log := zap.NewNop().Sugar()
	repo := memory.New(log)
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(log, context.Background(), repo, time.Second, domain.WithClock(fixedClock(now)))
	app := fiber.New()
	RegisterHandlers(app, NewHandler(log, uc, layout), opts)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, out any) int {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return do(t, app, req, out)
}

func do(t *testing.T, app *fiber.App, req *http.Request, out any) int {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createUser(t *testing.T, app *fiber.App, name string) dto.User {
	t.Helper()

	var u dto.User
	status := doJSON(t, app, http.MethodPost, "/api/users", `{"username":"`+name+`"}`, &u)
	require.Equal(t, http.StatusOK, status)
	return u
}

func TestAPI_Scenario(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{})

	alice := createUser(t, app, "alice")
	require.Equal(t, "alice", alice.Username)
	require.NotEmpty(t, alice.ID)

	var ex dto.Exercise
	status := doJSON(t, app, http.MethodPost, "/api/users/"+alice.ID+"/exercises",
		`{"description":"run","duration":30,"date":"2023-05-01"}`, &ex)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, dto.Exercise{ID: alice.ID, Username: "alice", Description: "run", Duration: 30, Date: "2023-05-01"}, ex)

	var log dto.Log
	status = doJSON(t, app, http.MethodGet, "/api/users/"+alice.ID+"/logs", "", &log)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, dto.Log{
		ID: alice.ID, Username: "alice", Count: 1,
		Log: []dto.LogEntry{{Description: "run", Duration: 30, Date: "2023-05-01"}},
	}, log)
}

func TestAPI_Users(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{})

	var users []dto.User
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/users", "", &users))
	require.NotNil(t, users)
	require.Empty(t, users)

	a := createUser(t, app, "alice")
	b := createUser(t, app, "alice")
	require.NotEqual(t, a.ID, b.ID)

	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/users", "", &users))
	require.Equal(t, []dto.User{a, b}, users)

	var errBody dto.ErrorResponse
	require.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodPost, "/api/users", `{"username":""}`, &errBody))
	require.Contains(t, errBody.Error, "username is required")

	require.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodPost, "/api/users", `{"username":`, &errBody))
	require.Equal(t, "invalid body", errBody.Error)
}

func TestAPI_FormBodies(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{})

	form := func(target string, v url.Values, out any) int {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(v.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		return do(t, app, req, out)
	}

	var u dto.User
	require.Equal(t, http.StatusOK, form("/api/users", url.Values{"username": {"bob"}}, &u))
	require.Equal(t, "bob", u.Username)

	var ex dto.Exercise
	require.Equal(t, http.StatusOK, form("/api/users/"+u.ID+"/exercises",
		url.Values{"description": {"swim"}, "duration": {"45"}}, &ex))
	require.Equal(t, 45, ex.Duration)
	require.Equal(t, "2024-06-10", ex.Date)
}

func TestAPI_AddExerciseErrors(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{})
	alice := createUser(t, app, "alice")

	var errBody dto.ErrorResponse
	require.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/api/users/ghost/exercises",
		`{"description":"run","duration":30}`, &errBody))
	require.Equal(t, "unknown user id", errBody.Error)

	require.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodPost, "/api/users/"+alice.ID+"/exercises",
		`{"description":"run","duration":"thirty"}`, &errBody))
	require.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodPost, "/api/users/"+alice.ID+"/exercises",
		`{"duration":30}`, &errBody))

	var log dto.Log
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/users/"+alice.ID+"/logs", "", &log))
	require.Zero(t, log.Count)
	require.NotNil(t, log.Log)
}

func TestAPI_LogFilters(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{})
	alice := createUser(t, app, "alice")
	bob := createUser(t, app, "bob")

	add := func(id, body string) {
		require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPost, "/api/users/"+id+"/exercises", body, nil))
	}
	add(alice.ID, `{"description":"c","duration":3,"date":"2023-03-01"}`)
	add(alice.ID, `{"description":"a","duration":1,"date":"2023-01-01"}`)
	add(alice.ID, `{"description":"b","duration":"2","date":"2023-02-01"}`)
	add(bob.ID, `{"description":"x","duration":9,"date":"2023-02-01"}`)

	get := func(query string) dto.Log {
		var log dto.Log
		require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/users/"+alice.ID+"/logs"+query, "", &log))
		return log
	}
	descs := func(l dto.Log) []string {
		out := make([]string, 0, len(l.Log))
		for _, e := range l.Log {
			out = append(out, e.Description)
		}
		return out
	}

	all := get("")
	require.Equal(t, 3, all.Count)
	require.Equal(t, []string{"a", "b", "c"}, descs(all))

	require.Equal(t, []string{"a", "b"}, descs(get("?limit=2")))
	require.Equal(t, []string{"a", "b", "c"}, descs(get("?limit=0")))
	require.Equal(t, []string{"a", "b", "c"}, descs(get("?limit=lots")))
	require.Equal(t, []string{"b", "c"}, descs(get("?from=2023-02-01")))
	require.Equal(t, []string{"a", "b"}, descs(get("?to=2023-02-01")))
	require.Equal(t, []string{"b"}, descs(get("?from=2023-01-15&to=2023-02-15")))

	inverted := get("?from=2023-03-01&to=2023-01-01")
	require.Zero(t, inverted.Count)
	require.Empty(t, inverted.Log)

	var errBody dto.ErrorResponse
	require.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodGet, "/api/users/"+alice.ID+"/logs?from=junk", "", &errBody))
	require.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/api/users/ghost/logs", "", &errBody))
}

func TestAPI_LongDateLayout(t *testing.T) {
	app := newTestApp(t, entities.LongDateLayout, RouteOptions{})
	alice := createUser(t, app, "alice")

	var ex dto.Exercise
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPost, "/api/users/"+alice.ID+"/exercises",
		`{"description":"run","duration":30,"date":"2023-01-15"}`, &ex))
	require.Equal(t, "Sun Jan 15 2023", ex.Date)

	var log dto.Log
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/users/"+alice.ID+"/logs?from=2023-01-15&to=2023-01-15", "", &log))
	require.Equal(t, 1, log.Count)
	require.Equal(t, "Sun Jan 15 2023", log.Log[0].Date)
}

func TestAPI_AdminRoutesDisabledByDefault(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{})

	require.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/api/exercises/delete", "", nil))
	require.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/api/users/delete", "", nil))
}

func TestAPI_AdminWipes(t *testing.T) {
	app := newTestApp(t, entities.DateLayout, RouteOptions{AdminEnabled: true, AdminToken: "s3cret"})
	alice := createUser(t, app, "alice")
	createUser(t, app, "bob")
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPost, "/api/users/"+alice.ID+"/exercises",
		`{"description":"run","duration":30}`, nil))

	var errBody dto.ErrorResponse
	require.Equal(t, http.StatusUnauthorized, doJSON(t, app, http.MethodPost, "/api/users/delete", "", &errBody))
	require.Equal(t, "admin token required", errBody.Error)

	wipe := func(target string) dto.DeleteResponse {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		req.Header.Set(AdminHeader, "s3cret")
		var res dto.DeleteResponse
		require.Equal(t, http.StatusOK, do(t, app, req, &res))
		return res
	}

	users := wipe("/api/users/delete")
	require.Equal(t, "All users have been deleted!", users.Message)
	require.Equal(t, int64(2), users.Result.DeletedCount)

	exercises := wipe("/api/exercises/delete")
	require.Equal(t, "All exercises have been deleted!", exercises.Message)
	require.Equal(t, int64(1), exercises.Result.DeletedCount)

	var list []dto.User
	require.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/users", "", &list))
	require.Empty(t, list)
}

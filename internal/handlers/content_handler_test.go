package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"content-catalog/internal/handlers"
	"content-catalog/internal/models"
	"content-catalog/internal/repository"
	"content-catalog/internal/routes"
	"content-catalog/internal/services"
	"content-catalog/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

type fakePresigner struct {
	err error
}

func (f *fakePresigner) GeneratePresignedURL(_ context.Context, filename string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "http://minio.local/put/" + filename, "http://minio.local/contents/content-images/" + filename, nil
}

func newApp(t *testing.T, presigner handlers.ImagePresigner) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := repository.NewContentRepository(testutil.NewDatabase(t))
	svc := services.NewContentService(repo, nil, nil, log)

	var upload *handlers.UploadHandler
	if presigner != nil {
		upload = handlers.NewUploadHandler(presigner, log)
	}

	app := fiber.New()
	routes.Setup(app, handlers.NewContentHandler(svc, log), upload)
	return app
}

func do(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func createContent(t *testing.T, app *fiber.App, req handlers.ContentRequest) models.Content {
	t.Helper()

	resp, env := do(t, app, http.MethodPost, "/api/v1/content/", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	var c models.Content
	require.NoError(t, json.Unmarshal(env.Data, &c))
	return c
}

func TestContentHandler_CreateAndGet(t *testing.T) {
	app := newApp(t, nil)

	created := createContent(t, app, handlers.ContentRequest{
		Title:    "Evening News",
		Duration: 45,
		Genres:   []string{"news", "live", "news"},
	})
	assert.Equal(t, models.GenreSet{"news", "live"}, created.Genres)

	resp, env := do(t, app, http.MethodGet, "/api/v1/content/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=300", resp.Header.Get(fiber.HeaderCacheControl))

	var got models.Content
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Evening News", got.Title)
	assert.Nil(t, got.Subtitle)
}

func TestContentHandler_CreateValidation(t *testing.T) {
	app := newApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/v1/content/", handlers.ContentRequest{Genres: []string{"g1"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
	assert.JSONEq(t, `{"field":"title"}`, string(env.Data))
}

func TestContentHandler_Search(t *testing.T) {
	app := newApp(t, nil)
	createContent(t, app, handlers.ContentRequest{Title: "t1", Genres: []string{"g1", "g2"}})
	createContent(t, app, handlers.ContentRequest{Title: "t2", Genres: []string{"g3"}})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"all", "", 2},
		{"by genre", "?filter=g3", 1},
		{"by title", "?filter=t1", 1},
		{"no match", "?filter=nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := do(t, app, http.MethodGet, "/api/v1/content/"+tt.query, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "public, max-age=600", resp.Header.Get(fiber.HeaderCacheControl))

			var list []models.Content
			require.NoError(t, json.Unmarshal(env.Data, &list))
			assert.NotNil(t, list)
			assert.Len(t, list, tt.want)
		})
	}
}

func TestContentHandler_NotFoundAndBadID(t *testing.T) {
	app := newApp(t, nil)
	missing := "/api/v1/content/81144fda-dc9a-4a71-9820-499f2bb57553"

	tests := []struct {
		name   string
		method string
		target string
		body   interface{}
		want   int
	}{
		{"get missing", http.MethodGet, missing, nil, http.StatusNotFound},
		{"update missing", http.MethodPatch, missing, handlers.ContentRequest{Title: "x"}, http.StatusNotFound},
		{"delete missing", http.MethodDelete, missing, nil, http.StatusNotFound},
		{"add genre missing", http.MethodPost, missing + "/genre", []string{"g1"}, http.StatusNotFound},
		{"remove genre missing", http.MethodDelete, missing + "/genre", []string{"g1"}, http.StatusNotFound},
		{"malformed id", http.MethodGet, "/api/v1/content/42", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestContentHandler_UpdateKeepsGenres(t *testing.T) {
	app := newApp(t, nil)
	created := createContent(t, app, handlers.ContentRequest{Title: "t1", Duration: 10, Genres: []string{"g1"}})

	resp, env := do(t, app, http.MethodPatch, "/api/v1/content/"+created.ID.String(), handlers.ContentRequest{
		Title:  "t1 renamed",
		Genres: []string{"ignored"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Content
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "t1 renamed", got.Title)
	assert.Equal(t, 0, got.Duration)
	assert.Equal(t, models.GenreSet{"g1"}, got.Genres)
}

func TestContentHandler_GenreEndpoints(t *testing.T) {
	app := newApp(t, nil)
	created := createContent(t, app, handlers.ContentRequest{Title: "t1", Genres: []string{"g1", "g2"}})
	target := "/api/v1/content/" + created.ID.String() + "/genre"

	resp, env := do(t, app, http.MethodPost, target, []string{"g3", "g3"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Content
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, models.GenreSet{"g1", "g2", "g3"}, got.Genres)

	resp, env = do(t, app, http.MethodDelete, target, []string{"g1", "g9"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, models.GenreSet{"g2", "g3"}, got.Genres)

	resp, _ = do(t, app, http.MethodPost, target, map[string]string{"genre": "g4"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContentHandler_Delete(t *testing.T) {
	app := newApp(t, nil)
	created := createContent(t, app, handlers.ContentRequest{Title: "t1"})

	resp, env := do(t, app, http.MethodDelete, "/api/v1/content/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"`+created.ID.String()+`"}`, string(env.Data))

	resp, _ = do(t, app, http.MethodGet, "/api/v1/content/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadHandler_GetPresignedURL(t *testing.T) {
	app := newApp(t, &fakePresigner{})

	resp, env := do(t, app, http.MethodGet, "/api/v1/upload/presign?filename=a.jpg", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"presigned_url":"http://minio.local/put/a.jpg","public_url":"http://minio.local/contents/content-images/a.jpg"}`, string(env.Data))

	resp, _ = do(t, app, http.MethodGet, "/api/v1/upload/presign", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	failing := newApp(t, &fakePresigner{err: errors.New("minio down")})
	resp, env = do(t, failing, http.MethodGet, "/api/v1/upload/presign?filename=a.jpg", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "fail", env.Status)
}

func TestContentHandler_GenreStats(t *testing.T) {
	app := newApp(t, nil)
	createContent(t, app, handlers.ContentRequest{Title: "t1", Genres: []string{"g1", "g2"}})
	createContent(t, app, handlers.ContentRequest{Title: "t2", Genres: []string{"g2"}})

	resp, env := do(t, app, http.MethodGet, "/api/v1/content/genres", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats []models.GenreCount
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, []models.GenreCount{{Genre: "g2", Count: 2}, {Genre: "g1", Count: 1}}, stats)

	resp, env = do(t, app, http.MethodGet, "/api/v1/content/genres?limit=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Len(t, stats, 1)
}

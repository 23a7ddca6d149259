package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ArushKhare/LockedInterview/internal/config"
	"github.com/ArushKhare/LockedInterview/internal/models"
	"github.com/ArushKhare/LockedInterview/internal/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frontend.html"), []byte("<html>locked in</html>"), 0o644))

	cfg := &config.Config{Env: "test", Port: 3000, StaticDir: dir, SampleSize: 5, Origins: []string{"*"}}
	h := questions.NewHandler(questions.NewService(cfg.SampleSize), zap.NewNop())
	return newRouter(cfg, h, zap.NewNop())
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestRouter_Questions(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions?type=Behavioral", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.QuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 5)
}

func TestRouter_StaticFrontend(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frontend.html", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "locked in")
}

func TestRouter_CORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RejectsPost(t *testing.T) {
	for _, target := range []string{"/api/questions", "/frontend.html"} {
		rec := httptest.NewRecorder()
		testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, target)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), target)
		assert.JSONEq(t, `{"error":"Method POST not allowed"}`, rec.Body.String(), target)
	}
}

func TestRouter_UnknownAPIPath(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/render"
)

// upstream fakes the projects API, answering by viewer id
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch strings.TrimPrefix(r.URL.Path, "/api/v1/publicProjects/") {
		case "empty":
			_, _ = w.Write([]byte(`[]`))
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"x"}`))
		case "sparse":
			_, _ = w.Write([]byte(`[{"title":"T","images":[],"technologies":[]}]`))
		case "stored":
			_, _ = w.Write([]byte(`[{"title":"From cookie"}]`))
		default:
			_, _ = w.Write([]byte(`[
				{"title":"Alpha","technologies":["Go"],"repository":"https://github.com/x/alpha"},
				{"title":"Beta <b>"}
			]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRouter(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	api := upstream(t)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = api.URL + "/api/v1"
	cfg.API.RatePerMinute = 0
	cfg.StaticDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "style.css"), []byte("body{}"), 0644))
	if mutate != nil {
		mutate(cfg)
	}

	h, err := SetupRoutes(cfg, zap.NewNop())
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestIndexRendersCards(t *testing.T) {
	w := get(t, newRouter(t, nil), "/?itsonId=42")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, ">Alpha</h3>")
	assert.Contains(t, body, ">Beta &lt;b&gt;</h3>")
	assert.Contains(t, body, `<span class="tech-tag">Go</span>`)
	assert.Contains(t, body, `class="project-item enter"`)
	assert.Contains(t, body, `data-viewer="42"`)
}

func TestIndexEmptyResult(t *testing.T) {
	w := get(t, newRouter(t, nil), "/?itsonId=empty")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), render.MsgNoProjects)
	assert.NotContains(t, w.Body.String(), "project-item")
}

func TestIndexRemoteError(t *testing.T) {
	w := get(t, newRouter(t, nil), "/?itsonId=broken")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "HTTP 500")
	assert.NotContains(t, body, "project-item")
}

func TestFragmentSparseRecord(t *testing.T) {
	w := get(t, newRouter(t, func(c *config.Config) { c.Effects.Animate = false }), "/fragments/projects?itsonId=sparse")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="project-item"`))
	assert.Contains(t, body, render.PlaceholderImage)
	assert.Contains(t, body, ">T</h3>")
	assert.NotContains(t, body, "project-tech")
	assert.NotContains(t, body, "project-link")
	assert.NotContains(t, body, "<html")
}

func TestIndexUsesStoredUser(t *testing.T) {
	cookie := &http.Cookie{Name: "user", Value: url.QueryEscape(`{"itsonID":"stored"}`)}
	w := get(t, newRouter(t, nil), "/", cookie)

	assert.Contains(t, w.Body.String(), "From cookie")
}

func TestIndexWithoutViewer(t *testing.T) {
	w := get(t, newRouter(t, nil), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Viewer ID not configured")
}

func TestIndexFallbackViewer(t *testing.T) {
	w := get(t, newRouter(t, func(c *config.Config) { c.Viewer.Fallback = "sparse" }), "/")

	assert.Contains(t, w.Body.String(), ">T</h3>")
}

func TestAPIProjects(t *testing.T) {
	h := newRouter(t, nil)

	w := get(t, h, "/api/projects/42")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)

	w = get(t, h, "/api/projects?itsonId=42")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIProjectsErrors(t *testing.T) {
	h := newRouter(t, nil)

	tests := []struct {
		target string
		status int
		msg    string
	}{
		{"/api/projects/empty", http.StatusNotFound, render.MsgNoProjects},
		{"/api/projects/broken", http.StatusBadGateway, "HTTP 500"},
		{"/api/projects", http.StatusBadRequest, render.MsgNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, h, tt.target)
			assert.Equal(t, tt.status, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.msg)
		})
	}
}

func TestHealth(t *testing.T) {
	w := get(t, newRouter(t, nil), "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticFiles(t *testing.T) {
	w := get(t, newRouter(t, nil), "/static/style.css")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

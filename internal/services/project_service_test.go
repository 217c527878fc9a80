package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"folio.dev/internal/models"
)

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func TestFetchSuccess(t *testing.T) {
	srv, path := newUpstream(t, http.StatusOK, `[
		{"title":"One","images":["http://img/1.png"],"technologies":["Go"],"repository":"https://github.com/x/one"},
		{"title":"Two"}
	]`)

	svc := NewProjectService(srv.URL+"/api/v1/", WithHTTPClient(srv.Client()))
	projects, err := svc.Fetch(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/publicProjects/42", *path)
	require.Len(t, projects, 2)
	assert.Equal(t, "One", models.Str(projects[0].Title))
	assert.Equal(t, []string{"Go"}, projects[0].Technologies)
	assert.Equal(t, "Two", models.Str(projects[1].Title))
	assert.Nil(t, projects[1].Images)
	assert.Nil(t, projects[1].Repository)
}

func TestFetchEscapesViewerID(t *testing.T) {
	srv, path := newUpstream(t, http.StatusOK, `[{}]`)

	svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()))
	_, err := svc.Fetch(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/publicProjects/a%2Fb%20c", *path)
}

func TestFetchRemoteError(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusInternalServerError, `{"error":"x"}`)

	svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()))
	_, err := svc.Fetch(context.Background(), "42")

	var remote *RemoteError
	require.True(t, errors.As(err, &remote), "got %T", err)
	assert.Equal(t, 500, remote.StatusCode)
	assert.Equal(t, `{"error":"x"}`, remote.Body)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchRemoteErrorWithNonJSONBody(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusNotFound, `not found`)

	svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()))
	_, err := svc.Fetch(context.Background(), "42")

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "not found", remote.Body)
}

func TestFetchEmptyResult(t *testing.T) {
	for name, body := range map[string]string{
		"empty array": `[]`,
		"object":      `{"projects":[]}`,
		"null":        `null`,
		"string":      `"nope"`,
	} {
		t.Run(name, func(t *testing.T) {
			srv, _ := newUpstream(t, http.StatusOK, body)

			svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()))
			_, err := svc.Fetch(context.Background(), "42")

			var empty *EmptyResultError
			require.ErrorAs(t, err, &empty)
			assert.Equal(t, "42", empty.ViewerID)
		})
	}
}

func TestFetchInvalidJSON(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `[{"title":`)

	svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()))
	_, err := svc.Fetch(context.Background(), "42")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	svc := NewProjectService(base)
	_, err := svc.Fetch(context.Background(), "42")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, base+"/publicProjects/42", transport.URL)
}

func TestFetchCancelledContext(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `[{}]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()))
	_, err := svc.Fetch(ctx, "42")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchLimiterExhausted(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `[{}]`)

	// zero burst never admits a request
	l := rate.NewLimiter(rate.Every(1), 0)
	svc := NewProjectService(srv.URL, WithHTTPClient(srv.Client()), WithLimiter(l))
	_, err := svc.Fetch(context.Background(), "42")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}

func TestFetchWithoutViewer(t *testing.T) {
	svc := NewProjectService("http://unused.invalid")
	_, err := svc.Fetch(context.Background(), "")

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, NewLimiter(0, 5))

	l := NewLimiter(60, 3)
	require.NotNil(t, l)
	assert.Equal(t, 3, l.Burst())
	assert.InDelta(t, 1.0, float64(l.Limit()), 1e-9)
}

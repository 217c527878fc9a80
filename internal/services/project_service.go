package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"folio.dev/internal/models"
)

// ProjectService fetches a viewer's public projects from the upstream API
type ProjectService struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// ProjectServiceOption configures a ProjectService
type ProjectServiceOption func(*ProjectService)

// WithHTTPClient replaces the default traced client
func WithHTTPClient(c *http.Client) ProjectServiceOption {
	return func(s *ProjectService) { s.client = c }
}

// WithLimiter guards upstream calls with l
func WithLimiter(l *rate.Limiter) ProjectServiceOption {
	return func(s *ProjectService) { s.limiter = l }
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *zap.Logger) ProjectServiceOption {
	return func(s *ProjectService) { s.logger = l }
}

// NewLimiter returns a limiter allowing perMinute calls with the given
// burst, or nil when perMinute is zero.
func NewLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// NewProjectService creates a new ProjectService for the API rooted at baseURL
func NewProjectService(baseURL string, opts ...ProjectServiceOption) *ProjectService {
	s := &ProjectService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the endpoint queried for viewerID
func (s *ProjectService) URL(viewerID string) string {
	return s.baseURL + "/publicProjects/" + url.PathEscape(viewerID)
}

// Fetch issues one GET for the viewer's projects. It never retries.
func (s *ProjectService) Fetch(ctx context.Context, viewerID string) (models.ProjectList, error) {
	if viewerID == "" {
		return nil, &ConfigurationError{Reason: "no viewer identifier resolved"}
	}

	endpoint := s.URL(viewerID)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("rate limiter wait failed: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	s.logger.Debug("Fetching projects", zap.String("url", endpoint))
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("reading body: %w", err)}
	}

	s.logger.Debug("Fetched projects",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decodeProjects(viewerID, endpoint, body)
}

// decodeProjects enforces the response shape: a non-empty JSON array
func decodeProjects(viewerID, endpoint string, body []byte) (models.ProjectList, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("parsing body: %w", err)}
	}
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, &EmptyResultError{ViewerID: viewerID}
	}

	var projects models.ProjectList
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("parsing projects: %w", err)}
	}
	return projects, nil
}

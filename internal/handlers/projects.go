package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/models"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// ProjectFetcher loads a viewer's projects
type ProjectFetcher interface {
	Fetch(ctx context.Context, viewerID string) (models.ProjectList, error)
}

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	fetcher  ProjectFetcher
	resolver services.ViewerResolver
	logger   *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(f ProjectFetcher, resolver services.ViewerResolver, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{fetcher: f, resolver: resolver, logger: logger}
}

// ListProjects handles GET /api/projects for the resolved viewer
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	id, _ := h.resolver.Resolve(r)
	h.respond(w, r, id)
}

// GetProjects handles GET /api/projects/{id}
func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, chi.URLParam(r, "id"))
}

func (h *ProjectHandler) respond(w http.ResponseWriter, r *http.Request, id string) {
	projects, err := h.fetcher.Fetch(r.Context(), id)
	if err != nil {
		h.logger.Warn("Project fetch failed", zap.String("viewer", id), zap.Error(err))
		respondError(w, statusFor(err), render.ErrorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// statusFor maps fetch errors onto the status returned to API clients
func statusFor(err error) int {
	var (
		empty  *services.EmptyResultError
		cfgErr *services.ConfigurationError
	)
	switch {
	case errors.As(err, &empty):
		return http.StatusNotFound
	case errors.As(err, &cfgErr):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

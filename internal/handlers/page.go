package handlers

import (
	"bytes"
	"context"
	"net/http"

	"go.uber.org/zap"

	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// LoadProjects fetches and renders the projects container. Every failure
// is rendered as a message; the returned error is for logging only.
func LoadProjects(ctx context.Context, f ProjectFetcher, r *render.Renderer, viewerID string) (string, error) {
	projects, err := f.Fetch(ctx, viewerID)
	if err != nil {
		return r.RenderError(err), err
	}
	return r.Render(projects), nil
}

// PageHandler serves the rendered portfolio
type PageHandler struct {
	fetcher  ProjectFetcher
	resolver services.ViewerResolver
	renderer *render.Renderer
	page     *render.Page
	logger   *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(f ProjectFetcher, resolver services.ViewerResolver, renderer *render.Renderer, page *render.Page, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		fetcher:  f,
		resolver: resolver,
		renderer: renderer,
		page:     page,
		logger:   logger,
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	id, projects := h.projects(r)

	var buf bytes.Buffer
	if err := h.page.Write(&buf, id, projects); err != nil {
		h.logger.Error("Page render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Fragment handles GET /fragments/projects, returning only the container body
func (h *PageHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	_, projects := h.projects(r)
	writeHTML(w, []byte(projects))
}

func (h *PageHandler) projects(r *http.Request) (id, html string) {
	id, source := h.resolver.Resolve(r)
	if source == "fallback" {
		h.logger.Info("Using fallback viewer", zap.String("viewer", id))
	}

	html, err := LoadProjects(r.Context(), h.fetcher, h.renderer, id)
	if err != nil {
		h.logger.Warn("Project fetch failed",
			zap.String("viewer", id),
			zap.String("source", source),
			zap.Error(err))
	}
	return id, html
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

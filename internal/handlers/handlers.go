package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/middleware"
	"folio.dev/internal/motion"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := NewProjectService(cfg, logger)
	page, err := render.NewPage(cfg)
	if err != nil {
		return nil, fmt.Errorf("building page: %w", err)
	}
	renderer := render.NewRenderer(Animator(cfg))
	resolver := services.ViewerResolver{
		QueryParam: cfg.Viewer.QueryParam,
		Cookie:     cfg.Viewer.Cookie,
		Fallback:   cfg.Viewer.Fallback,
	}

	// Initialize handlers
	pageHandler := NewPageHandler(projectService, resolver, renderer, page, logger)
	projectHandler := NewProjectHandler(projectService, resolver, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.CORSOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProjects)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/fragments/projects", pageHandler.Fragment)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "favicon.ico"))
	})

	r.Get("/", pageHandler.Index)

	if cfg.Telemetry.Enabled {
		return otelhttp.NewHandler(r, cfg.Telemetry.ServiceName), nil
	}
	return r, nil
}

// NewProjectService builds the upstream client from configuration
func NewProjectService(cfg *config.Config, logger *zap.Logger) *services.ProjectService {
	opts := []services.ProjectServiceOption{services.WithLogger(logger)}
	if l := services.NewLimiter(cfg.API.RatePerMinute, cfg.API.Burst); l != nil {
		opts = append(opts, services.WithLimiter(l))
	}
	return services.NewProjectService(cfg.API.BaseURL, opts...)
}

// Animator picks the server-side card animator
func Animator(cfg *config.Config) motion.Animator {
	if cfg.Effects.Animate {
		return motion.CSS{}
	}
	return motion.Noop{}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

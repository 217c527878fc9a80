package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"folio.dev/internal/models"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: FOLIO_API__BASE_URL -> api.base_url.
const EnvPrefix = "FOLIO_"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	API       APIConfig       `yaml:"api" koanf:"api"`
	Viewer    ViewerConfig    `yaml:"viewer" koanf:"viewer"`
	Site      SiteConfig      `yaml:"site" koanf:"site"`
	Effects   EffectsConfig   `yaml:"effects" koanf:"effects"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" koanf:"telemetry"`
	StaticDir string          `yaml:"static_dir" koanf:"static_dir"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr        string   `yaml:"addr" koanf:"addr"`
	CORSOrigins []string `yaml:"cors_origins" koanf:"cors_origins"`
}

// APIConfig points at the upstream projects API
type APIConfig struct {
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// RatePerMinute caps upstream calls; zero disables the limiter.
	RatePerMinute int `yaml:"rate_per_minute" koanf:"rate_per_minute"`
	Burst         int `yaml:"burst" koanf:"burst"`
}

// ViewerConfig controls how the viewer identifier is resolved
type ViewerConfig struct {
	QueryParam string `yaml:"query_param" koanf:"query_param"`
	Cookie     string `yaml:"cookie" koanf:"cookie"`
	Fallback   string `yaml:"fallback" koanf:"fallback"`
}

// SiteConfig holds the static page content
type SiteConfig struct {
	Title    string           `yaml:"title" koanf:"title"`
	Name     string           `yaml:"name" koanf:"name"`
	Role     string           `yaml:"role" koanf:"role"`
	Intro    string           `yaml:"intro" koanf:"intro"`
	About    string           `yaml:"about" koanf:"about"`
	Skills   []models.Skill   `yaml:"skills" koanf:"skills"`
	Socials  []models.Link    `yaml:"socials" koanf:"socials"`
	Sections []models.Section `yaml:"sections" koanf:"sections"`
}

// EffectsConfig tunes the browser-side effects
type EffectsConfig struct {
	NavMargin      float64       `yaml:"nav_margin" koanf:"nav_margin"`
	SpotSize       float64       `yaml:"spot_size" koanf:"spot_size"`
	SpotTween      time.Duration `yaml:"spot_tween" koanf:"spot_tween"`
	FollowerFactor float64       `yaml:"follower_factor" koanf:"follower_factor"`
	Animate        bool          `yaml:"animate" koanf:"animate"`
}

// LogConfig selects the logger level and encoding
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}

// TelemetryConfig toggles OTLP tracing
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" koanf:"enabled"`
	ServiceName string `yaml:"service_name" koanf:"service_name"`
}

// DefaultConfig returns the configuration used when no file is present.
// The viewer fallback is deliberately empty: without an itsonId the page
// reports a configuration error instead of showing someone's projects.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		API: APIConfig{
			BaseURL:       "https://portfolio-api-three-black.vercel.app/api/v1",
			RatePerMinute: 120,
			Burst:         10,
		},
		Viewer: ViewerConfig{
			QueryParam: "itsonId",
			Cookie:     "user",
		},
		Site: SiteConfig{
			Title: "Portfolio",
			Name:  "Your Name",
			Role:  "Software Developer",
			Sections: []models.Section{
				{ID: "about", Title: "About", Kind: models.KindAbout, Theme: "theme-about"},
				{ID: "skills", Title: "Skills", Kind: models.KindSkills, Theme: "theme-skills"},
				{ID: "projects", Title: "Projects", Kind: models.KindProjects, Theme: "theme-projects"},
			},
		},
		Effects: EffectsConfig{
			NavMargin:      200,
			SpotSize:       320,
			SpotTween:      450 * time.Millisecond,
			FollowerFactor: 0.2,
			Animate:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "folio",
		},
		StaticDir: "static",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults instead of merging into them.
	if k.Exists("site.sections") {
		cfg.Site.Sections = nil
	}
	if k.Exists("site.skills") {
		cfg.Site.Skills = nil
	}
	if k.Exists("site.socials") {
		cfg.Site.Socials = nil
	}
	if k.Exists("server.cors_origins") {
		cfg.Server.CORSOrigins = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps FOLIO_API__BASE_URL to api.base_url
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute URL", c.API.BaseURL)
	}

	if c.API.RatePerMinute < 0 {
		return fmt.Errorf("api.rate_per_minute must be non-negative")
	}
	if c.API.RatePerMinute > 0 && c.API.Burst < 1 {
		return fmt.Errorf("api.burst must be at least 1 when rate limiting is on")
	}

	if c.Viewer.QueryParam == "" {
		return fmt.Errorf("viewer.query_param is required")
	}

	if c.Effects.NavMargin < 0 {
		return fmt.Errorf("effects.nav_margin must be non-negative")
	}
	if c.Effects.FollowerFactor <= 0 || c.Effects.FollowerFactor > 1 {
		return fmt.Errorf("effects.follower_factor must be in (0, 1], got %v", c.Effects.FollowerFactor)
	}

	seen := make(map[string]bool, len(c.Site.Sections))
	for _, s := range c.Site.Sections {
		if s.ID == "" {
			return fmt.Errorf("site.sections: every section needs an id")
		}
		if seen[s.ID] {
			return fmt.Errorf("site.sections: duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		switch s.Kind {
		case "", models.KindAbout, models.KindSkills, models.KindProjects:
		default:
			return fmt.Errorf("site.sections: unknown kind %q for %q", s.Kind, s.ID)
		}
	}

	return nil
}

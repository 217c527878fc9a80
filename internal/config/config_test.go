package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"folio.dev/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "itsonId", cfg.Viewer.QueryParam)
	assert.Equal(t, "user", cfg.Viewer.Cookie)
	assert.Empty(t, cfg.Viewer.Fallback, "fallback viewer must be opt-in")
	assert.Equal(t, 200.0, cfg.Effects.NavMargin)
	assert.Equal(t, 320.0, cfg.Effects.SpotSize)
	assert.Equal(t, 450*time.Millisecond, cfg.Effects.SpotTween)
	assert.Equal(t, 0.2, cfg.Effects.FollowerFactor)
	require.Len(t, cfg.Site.Sections, 3)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")
	data := `
api:
  base_url: http://api.test/v1
viewer:
  fallback: "252538"
effects:
  spot_tween: 300ms
site:
  name: Ada
  sections:
    - id: intro
      title: Intro
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api.test/v1", cfg.API.BaseURL)
	assert.Equal(t, "252538", cfg.Viewer.Fallback)
	assert.Equal(t, 300*time.Millisecond, cfg.Effects.SpotTween)
	assert.Equal(t, "Ada", cfg.Site.Name)
	assert.Equal(t, []models.Section{{ID: "intro", Title: "Intro"}}, cfg.Site.Sections)
	// untouched keys keep their defaults
	assert.Equal(t, "itsonId", cfg.Viewer.QueryParam)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_API__BASE_URL", "http://env.test")
	t.Setenv("FOLIO_VIEWER__FALLBACK", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://env.test", cfg.API.BaseURL)
	assert.Equal(t, "7", cfg.Viewer.Fallback)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")

	original := DefaultConfig()
	original.Site.Name = "Grace"
	original.Site.Skills = []models.Skill{{Name: "Go"}, {Name: "SQL"}}
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.Site.Name, loaded.Site.Name)
	assert.Equal(t, original.Site.Skills, loaded.Site.Skills)
	assert.Equal(t, original.Effects.SpotTween, loaded.Effects.SpotTween)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"negative rate", func(c *Config) { c.API.RatePerMinute = -1 }},
		{"zero burst", func(c *Config) { c.API.Burst = 0 }},
		{"no query param", func(c *Config) { c.Viewer.QueryParam = "" }},
		{"factor too large", func(c *Config) { c.Effects.FollowerFactor = 1.5 }},
		{"unknown kind", func(c *Config) {
			c.Site.Sections = []models.Section{{ID: "x", Kind: "gallery"}}
		}},
		{"duplicate section", func(c *Config) {
			c.Site.Sections = append(c.Site.Sections, models.Section{ID: "about"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := DefaultConfig()
	for in, want := range map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	} {
		cfg.Log.Level = in
		assert.Equal(t, want, cfg.Level(), in)
	}
}

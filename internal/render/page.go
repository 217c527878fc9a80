package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"folio.dev/internal/config"
	"folio.dev/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData feeds the page template
type PageData struct {
	Site      config.SiteConfig
	About     template.HTML
	Projects  template.HTML
	ViewerID  string
	Settings  string
	HasSkills bool
}

// Page renders the full portfolio document
type Page struct {
	tmpl     *template.Template
	site     config.SiteConfig
	about    template.HTML
	settings string
}

// NewPage parses the layout and pre-renders the static about section
func NewPage(cfg *config.Config) (*Page, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	about, err := Markdown(cfg.Site.About)
	if err != nil {
		return nil, fmt.Errorf("rendering about section: %w", err)
	}

	settings, err := json.Marshal(newSettings(cfg))
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}

	return &Page{
		tmpl:     tmpl,
		site:     cfg.Site,
		about:    about,
		settings: string(settings),
	}, nil
}

func newSettings(cfg *config.Config) models.Settings {
	s := models.Settings{
		NavMargin:      cfg.Effects.NavMargin,
		SpotSize:       cfg.Effects.SpotSize,
		SpotTweenMs:    cfg.Effects.SpotTween.Milliseconds(),
		FollowerFactor: cfg.Effects.FollowerFactor,
		Animate:        cfg.Effects.Animate,
	}
	for _, sec := range cfg.Site.Sections {
		if sec.Theme != "" {
			s.Themes = append(s.Themes, sec)
		}
		if sec.Kind == models.KindSkills {
			s.SkillsSection = sec.ID
		}
	}
	return s
}

// Write renders the page with the given projects container body. The
// body must already be escaped; Renderer output is.
func (p *Page) Write(w io.Writer, viewerID, projects string) error {
	data := PageData{
		Site:      p.site,
		About:     p.about,
		Projects:  template.HTML(projects),
		ViewerID:  viewerID,
		Settings:  p.settings,
		HasSkills: len(p.site.Skills) > 0,
	}
	return p.tmpl.ExecuteTemplate(w, "page.html", data)
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts trusted-but-plain markdown to HTML. Raw HTML blocks in
// the source are omitted, not passed through.
func Markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

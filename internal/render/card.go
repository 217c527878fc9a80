package render

import (
	"strings"

	"folio.dev/internal/models"
	"folio.dev/internal/motion"
)

const (
	// PlaceholderImage stands in for a missing or broken project image
	PlaceholderImage = "https://via.placeholder.com/400x200?text=Project"
	// DefaultTitle is shown for projects without a title
	DefaultTitle = "Untitled"
	// RepositoryLabel is the text of the repository link
	RepositoryLabel = "View project"
)

// CardView is the display model of one project card. Fields hold raw,
// unescaped values; HTML escapes them.
type CardView struct {
	Image       string
	Title       string
	Description string
	Tags        []string
	Repository  string
}

// BuildCard maps a project record onto its card
func BuildCard(p models.Project) CardView {
	card := CardView{
		Image:       PlaceholderImage,
		Title:       DefaultTitle,
		Description: models.Str(p.Description),
		Repository:  SafeURL(models.Str(p.Repository)),
	}

	if len(p.Images) > 0 {
		if img := SafeURL(p.Images[0]); img != "" {
			card.Image = img
		}
	}
	if t := models.Str(p.Title); t != "" {
		card.Title = t
	}
	if len(p.Technologies) > 0 {
		card.Tags = append([]string(nil), p.Technologies...)
	}

	return card
}

// HTML renders the card fragment. el carries animator output and may be nil.
func (c CardView) HTML(el *motion.Element) string {
	var b strings.Builder
	title := Escape(c.Title)

	b.WriteString(`<div class="project-item`)
	if el != nil && len(el.Classes) > 0 {
		b.WriteString(" ")
		b.WriteString(Escape(el.ClassAttr()))
	}
	b.WriteString(`"`)
	if el != nil {
		if style := el.StyleAttr(); style != "" {
			b.WriteString(` style="`)
			b.WriteString(Escape(style))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">\n")

	b.WriteString(`  <img src="`)
	b.WriteString(Escape(c.Image))
	b.WriteString(`" alt="`)
	b.WriteString(title)
	b.WriteString(`" class="project-image" loading="lazy" onerror="this.onerror=null;this.src='`)
	b.WriteString(Escape(PlaceholderImage))
	b.WriteString(`'">` + "\n")

	b.WriteString(`  <div class="project-content">` + "\n")
	b.WriteString(`    <h3 class="project-title">`)
	b.WriteString(title)
	b.WriteString("</h3>\n")
	b.WriteString(`    <p class="project-description">`)
	b.WriteString(Escape(c.Description))
	b.WriteString("</p>\n")

	if len(c.Tags) > 0 {
		b.WriteString(`    <div class="project-tech">`)
		for _, tag := range c.Tags {
			b.WriteString(`<span class="tech-tag">`)
			b.WriteString(Escape(tag))
			b.WriteString("</span>")
		}
		b.WriteString("</div>\n")
	}

	if c.Repository != "" {
		b.WriteString(`    <a href="`)
		b.WriteString(Escape(c.Repository))
		b.WriteString(`" target="_blank" rel="noopener noreferrer" class="project-link">`)
		b.WriteString(RepositoryLabel)
		b.WriteString("</a>\n")
	}

	b.WriteString("  </div>\n</div>\n")
	return b.String()
}

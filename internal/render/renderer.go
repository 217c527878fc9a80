package render

import (
	"errors"
	"strings"

	"folio.dev/internal/models"
	"folio.dev/internal/motion"
	"folio.dev/internal/services"
)

// Messages shown in place of the project list
const (
	MsgNoProjects    = "No projects available. Check the backoffice."
	MsgNotConfigured = "Viewer ID not configured. Add ?itsonId=YOUR_ID to the URL."
)

// Renderer turns a fetched project list into the projects container body
type Renderer struct {
	anim     motion.Animator
	entrance motion.Tween
}

// NewRenderer creates a Renderer; a nil animator means no animation
func NewRenderer(anim motion.Animator) *Renderer {
	if anim == nil {
		anim = motion.Noop{}
	}
	return &Renderer{anim: anim, entrance: motion.CardEntrance}
}

// Render returns one card per project, in input order
func (r *Renderer) Render(projects models.ProjectList) string {
	elements := make([]*motion.Element, len(projects))
	targets := make([]motion.Target, len(projects))
	for i := range projects {
		elements[i] = motion.NewElement()
		targets[i] = elements[i]
	}
	r.anim.From(targets, r.entrance)

	var b strings.Builder
	for i, p := range projects {
		b.WriteString(BuildCard(p).HTML(elements[i]))
	}
	return b.String()
}

// RenderError returns the single message block that replaces the cards
func (r *Renderer) RenderError(err error) string {
	return `<div class="projects-message">` + "\n  <p>" + Escape(ErrorMessage(err)) + "</p>\n</div>\n"
}

// ErrorMessage maps a fetch failure onto the text shown to visitors
func ErrorMessage(err error) string {
	var (
		empty  *services.EmptyResultError
		cfgErr *services.ConfigurationError
		remote *services.RemoteError
	)
	switch {
	case errors.As(err, &empty):
		return MsgNoProjects
	case errors.As(err, &cfgErr):
		return MsgNotConfigured
	case errors.As(err, &remote):
		return "Error: " + remote.Error()
	default:
		return "Error: " + err.Error()
	}
}

// Package nav tracks which page section is active while scrolling and
// turns menu clicks into smooth scrolls. It holds no DOM references:
// callers feed it measurements and apply the returned effects.
package nav

import "strings"

// DefaultMargin is how far ahead of a section's top it becomes active
const DefaultMargin = 200

// Section is a page section measured at its document offset
type Section struct {
	ID  string
	Top float64
}

// EffectKind enumerates what a caller must do to the page
type EffectKind int

const (
	// Activate marks the menu link Href active
	Activate EffectKind = iota
	// Deactivate clears the active mark on Href
	Deactivate
	// PreventDefault cancels the browser's jump navigation
	PreventDefault
	// SmoothScroll scrolls Target into view smoothly
	SmoothScroll
)

// Effect is one side effect requested by the highlighter
type Effect struct {
	Kind   EffectKind
	Href   string
	Target string
}

// State is the highlighter state carried between scroll events
type State struct {
	Active string
}

// ActiveSection returns the last section, in document order, whose top
// minus margin is at or above scrollY. It returns "" when none qualifies.
func ActiveSection(sections []Section, scrollY, margin float64) string {
	active := ""
	for _, s := range sections {
		if scrollY >= s.Top-margin {
			active = s.ID
		}
	}
	return active
}

// Highlighter maps scroll positions onto menu links
type Highlighter struct {
	Margin float64
	// Links are the menu hrefs, e.g. "#about"
	Links []string
}

// NewHighlighter returns a highlighter with the default margin
func NewHighlighter(links []string) *Highlighter {
	return &Highlighter{Margin: DefaultMargin, Links: links}
}

// Scroll recomputes the active section. Every link is either activated or
// deactivated, so callers need not remember the previous state.
func (h *Highlighter) Scroll(_ State, sections []Section, scrollY float64) (State, []Effect) {
	active := ActiveSection(sections, scrollY, h.Margin)
	effects := make([]Effect, 0, len(h.Links))
	for _, href := range h.Links {
		kind := Deactivate
		if active != "" && href == "#"+active {
			kind = Activate
		}
		effects = append(effects, Effect{Kind: kind, Href: href})
	}
	return State{Active: active}, effects
}

// Click handles a menu click on href. exists reports whether the target
// element is present on the page.
func (h *Highlighter) Click(href string, exists func(id string) bool) []Effect {
	effects := []Effect{{Kind: PreventDefault, Href: href}}
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return effects
	}
	if exists != nil && !exists(id) {
		return effects
	}
	return append(effects, Effect{Kind: SmoothScroll, Href: href, Target: id})
}

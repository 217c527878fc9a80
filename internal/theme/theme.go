// Package theme switches the body theme class as sections scroll past the
// viewport centre.
package theme

import "folio.dev/internal/models"

// Binding ties a section to the body class applied while it is current
type Binding struct {
	Section string
	Class   string
}

// Bindings extracts the themed sections in page order
func Bindings(sections []models.Section) []Binding {
	var out []Binding
	for _, s := range sections {
		if s.Theme != "" {
			out = append(out, Binding{Section: s.ID, Class: s.Theme})
		}
	}
	return out
}

// Bounds locates a section. Scroll uses document offsets, Initial uses
// viewport-relative rects.
type Bounds struct {
	ID     string
	Top    float64
	Bottom float64
}

// EffectKind enumerates body mutations
type EffectKind int

const (
	// RemoveClasses strips every bound theme class from the body
	RemoveClasses EffectKind = iota
	// AddClass adds the new theme class
	AddClass
	// Animate plays the theme change tween
	Animate
)

// Effect is one body mutation
type Effect struct {
	Kind    EffectKind
	Classes []string
}

// Switcher holds the current theme. It is driven from a single event loop
// and is not safe for concurrent use.
type Switcher struct {
	bindings []Binding
	current  string
}

// NewSwitcher creates a Switcher with no theme applied
func NewSwitcher(bindings []Binding) *Switcher {
	return &Switcher{bindings: bindings}
}

// Current returns the applied class, or ""
func (s *Switcher) Current() string {
	return s.current
}

// Apply switches to class. Re-applying the current class does nothing.
func (s *Switcher) Apply(class string, animate bool) []Effect {
	if class == "" || class == s.current {
		return nil
	}
	all := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		all = append(all, b.Class)
	}
	effects := []Effect{
		{Kind: RemoveClasses, Classes: all},
		{Kind: AddClass, Classes: []string{class}},
	}
	if animate {
		effects = append(effects, Effect{Kind: Animate})
	}
	s.current = class
	return effects
}

// Initial applies, without animation, the theme of the first bound
// section whose rect starts in the upper half of the viewport and has not
// scrolled off the top. rects are viewport-relative.
func (s *Switcher) Initial(rects []Bounds, viewportH float64) []Effect {
	byID := make(map[string]Bounds, len(rects))
	for _, r := range rects {
		byID[r.ID] = r
	}
	for _, b := range s.bindings {
		r, ok := byID[b.Section]
		if !ok {
			continue
		}
		if r.Top <= viewportH*0.5 && r.Bottom >= 0 {
			return s.Apply(b.Class, false)
		}
	}
	return nil
}

// Scroll reacts to the document scrolling from prevY to y. Scrolling down,
// a section is entered when its top crosses the viewport centre. Scrolling
// up, it is entered back when its bottom passes below the viewport top.
// When one move crosses several sections the last one crossed wins.
func (s *Switcher) Scroll(prevY, y, viewportH float64, sections []Bounds) []Effect {
	byID := make(map[string]Bounds, len(sections))
	for _, b := range sections {
		byID[b.ID] = b
	}

	entered := ""
	switch {
	case y > prevY:
		for _, b := range s.bindings {
			sec, ok := byID[b.Section]
			if !ok {
				continue
			}
			start := sec.Top - viewportH/2
			if prevY < start && y >= start {
				entered = b.Class
			}
		}
	case y < prevY:
		for i := len(s.bindings) - 1; i >= 0; i-- {
			b := s.bindings[i]
			sec, ok := byID[b.Section]
			if !ok {
				continue
			}
			end := sec.Bottom
			if prevY > end && y <= end {
				entered = b.Class
			}
		}
	}

	return s.Apply(entered, true)
}

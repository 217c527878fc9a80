// Package cursor holds the pointer-driven effects: a spotlight glow fed
// through CSS custom properties and a follower that trails the pointer.
package cursor

import (
	"strconv"
	"time"

	"folio.dev/internal/motion"
)

// CSS custom properties read by the stylesheet
const (
	PropX    = "--spot-x"
	PropY    = "--spot-y"
	PropSize = "--spot-size"
)

// Spotlight mirrors the pointer into CSS custom properties
type Spotlight struct {
	Size  float64
	Tween motion.Tween
}

// NewSpotlight returns a spotlight of the given diameter eased over d
func NewSpotlight(size float64, d time.Duration) Spotlight {
	return Spotlight{
		Size:  size,
		Tween: motion.Tween{Duration: d, Ease: "power2.out"},
	}
}

// Init returns the properties set once at start-up
func (s Spotlight) Init() map[string]string {
	return map[string]string{PropSize: px(s.Size)}
}

// Move returns the properties for a pointer at (x, y) client coordinates
func (s Spotlight) Move(x, y float64) map[string]string {
	return map[string]string{PropX: px(x), PropY: px(y)}
}

// Apply pushes a move through anim. With motion.Noop nothing animates, so
// set is called to write the values directly.
func (s Spotlight) Apply(anim motion.Animator, root motion.Target, x, y float64, set func(map[string]string)) {
	props := s.Move(x, y)
	if _, ok := anim.(motion.Noop); ok || anim == nil {
		set(props)
		return
	}
	anim.To(root, props, s.Tween)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

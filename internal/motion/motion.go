// Package motion describes entrance and hover tweens independently of the
// engine that plays them. Renderers and the browser runtime receive an
// Animator; Noop is the default and changes nothing.
package motion

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Tween is an animation from (or to) the given offsets
type Tween struct {
	Duration time.Duration `json:"duration"`
	Delay    time.Duration `json:"delay,omitempty"`
	Stagger  time.Duration `json:"stagger,omitempty"`
	Ease     string        `json:"ease,omitempty"`
	X        float64       `json:"x,omitempty"`
	Y        float64       `json:"y,omitempty"`
	Scale    float64       `json:"scale,omitempty"`
	// Fade animates opacity/visibility (gsap's autoAlpha) from zero.
	Fade bool `json:"fade,omitempty"`
	// Trigger starts the tween once the element scrolls into view, in
	// ScrollTrigger "start" syntax such as "top 80%". Empty plays now.
	Trigger string `json:"trigger,omitempty"`
	// TriggerOn names the element watched for Trigger when it is not the
	// animated element itself.
	TriggerOn string `json:"trigger_on,omitempty"`
}

// DelayFor returns the start offset of the i-th staggered target
func (t Tween) DelayFor(i int) time.Duration {
	return t.Delay + time.Duration(i)*t.Stagger
}

// Target is an engine-specific handle on something animatable: a
// *Element for server-rendered markup, a DOM node in the browser.
type Target any

// Animator plays tweens on targets. Implementations ignore targets they
// cannot handle.
type Animator interface {
	From(targets []Target, t Tween)
	To(target Target, props map[string]string, t Tween)
}

// Noop is the Animator used when no animation capability is available
type Noop struct{}

func (Noop) From([]Target, Tween) {}

func (Noop) To(Target, map[string]string, Tween) {}

// Element is a server-rendered element whose class and inline style the
// CSS animator can extend before the markup is written.
type Element struct {
	Classes []string
	Style   map[string]string
}

// NewElement returns an empty element
func NewElement() *Element {
	return &Element{Style: map[string]string{}}
}

// StyleAttr renders Style as a deterministic inline declaration list
func (e *Element) StyleAttr() string {
	if len(e.Style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Style))
	for k := range e.Style {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Style[k])
	}
	return b.String()
}

// ClassAttr joins Classes with spaces
func (e *Element) ClassAttr() string {
	return strings.Join(e.Classes, " ")
}

// CSS realises tweens as CSS custom properties consumed by the
// .enter keyframes in the stylesheet. It only handles *Element targets.
type CSS struct{}

func (CSS) From(targets []Target, t Tween) {
	for i, target := range targets {
		el, ok := target.(*Element)
		if !ok {
			continue
		}
		el.Classes = append(el.Classes, "enter")
		el.Style["--enter-delay"] = ms(t.DelayFor(i))
		el.Style["--enter-duration"] = ms(t.Duration)
		el.Style["--enter-x"] = px(t.X)
		el.Style["--enter-y"] = px(t.Y)
		if t.Ease != "" {
			el.Style["--enter-ease"] = CSSEase(t.Ease)
		}
	}
}

func (CSS) To(target Target, props map[string]string, t Tween) {
	el, ok := target.(*Element)
	if !ok {
		return
	}
	for k, v := range props {
		el.Style[k] = v
	}
	el.Style["transition-duration"] = ms(t.Duration)
}

// CSSEase translates the gsap ease names used by the presets into
// cubic-bezier curves. Unknown names pass through unchanged.
func CSSEase(ease string) string {
	switch ease {
	case "power2.out":
		return "cubic-bezier(0.215, 0.61, 0.355, 1)"
	case "power3.out":
		return "cubic-bezier(0.165, 0.84, 0.44, 1)"
	case "power2.in":
		return "cubic-bezier(0.55, 0.085, 0.68, 0.53)"
	default:
		return ease
	}
}

// Seconds formats d the way gsap expects durations
func Seconds(d time.Duration) float64 {
	return d.Seconds()
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}

//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"folio.dev/internal/motion"
)

// gsapAnimator plays tweens through window.gsap. Targets may be js.Value
// nodes or CSS selector strings.
type gsapAnimator struct {
	gsap js.Value
}

// newAnimator returns a gsap-backed animator, or motion.Noop when the
// library did not load.
func newAnimator() motion.Animator {
	g := js.Global().Get("gsap")
	if !truthy(g) {
		return motion.Noop{}
	}
	if st := js.Global().Get("ScrollTrigger"); truthy(st) {
		g.Call("registerPlugin", st)
	}
	return gsapAnimator{gsap: g}
}

func (a gsapAnimator) From(targets []motion.Target, t motion.Tween) {
	list := make([]any, 0, len(targets))
	for _, target := range targets {
		switch v := target.(type) {
		case js.Value:
			list = append(list, v)
		case string:
			list = append(list, v)
		}
	}
	if len(list) == 0 {
		return
	}

	vars := map[string]any{
		"duration":   motion.Seconds(t.Duration),
		"clearProps": "all",
	}
	if t.Fade {
		vars["autoAlpha"] = 0
	}
	if t.X != 0 {
		vars["x"] = t.X
	}
	if t.Y != 0 {
		vars["y"] = t.Y
	}
	if t.Scale != 0 {
		vars["scale"] = t.Scale
	}
	if t.Delay != 0 {
		vars["delay"] = motion.Seconds(t.Delay)
	}
	if t.Stagger != 0 {
		vars["stagger"] = motion.Seconds(t.Stagger)
	}
	if t.Ease != "" {
		vars["ease"] = t.Ease
	}
	if t.Trigger != "" {
		trigger := any(t.TriggerOn)
		if t.TriggerOn == "" {
			trigger = list[0]
		}
		vars["immediateRender"] = false
		vars["scrollTrigger"] = map[string]any{
			"trigger":       trigger,
			"start":         t.Trigger,
			"toggleActions": "play none none none",
			"once":          true,
		}
	}

	var target any = list
	if len(list) == 1 {
		target = list[0]
	}
	a.gsap.Call("from", target, vars)
}

func (a gsapAnimator) To(target motion.Target, props map[string]string, t motion.Tween) {
	var node any
	switch v := target.(type) {
	case js.Value:
		node = v
	case string:
		node = v
	default:
		return
	}

	vars := map[string]any{"duration": motion.Seconds(t.Duration)}
	if t.Ease != "" {
		vars["ease"] = t.Ease
	}
	for k, v := range props {
		vars[k] = v
	}
	a.gsap.Call("to", node, vars)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "px"
}

//go:build js && wasm

// Command wasm is the browser runtime of the portfolio page. It wires the
// pure state machines in internal/nav, internal/theme, internal/cursor and
// internal/motion to DOM events.
package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"folio.dev/internal/cursor"
	"folio.dev/internal/models"
	"folio.dev/internal/motion"
	"folio.dev/internal/nav"
	"folio.dev/internal/theme"
)

func main() {
	doc := js.Global().Get("document")
	settings := readSettings(doc.Get("body"))
	anim := newAnimator()

	setupNavigation(doc, settings)
	setupSpotlight(doc, settings, anim)
	setupFollower(doc, settings)
	if settings.Animate {
		playIntro(anim)
		setupScrollAnimations(anim, settings)
	}
	setupTheme(doc, settings, anim)

	if st := js.Global().Get("ScrollTrigger"); truthy(st) {
		st.Call("refresh")
	}

	select {}
}

func readSettings(body js.Value) models.Settings {
	s := models.Settings{
		NavMargin:      nav.DefaultMargin,
		SpotSize:       320,
		SpotTweenMs:    450,
		FollowerFactor: cursor.DefaultFactor,
	}
	raw := body.Get("dataset").Get("settings")
	if raw.Type() == js.TypeString {
		_ = json.Unmarshal([]byte(raw.String()), &s)
	}
	return s
}

func truthy(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull() && v.Truthy()
}

func querySelectorAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func scrollY() float64 {
	return js.Global().Get("pageYOffset").Float()
}

func viewportHeight() float64 {
	return js.Global().Get("innerHeight").Float()
}

func setupNavigation(doc js.Value, settings models.Settings) {
	links := querySelectorAll(doc, ".nav-link")
	sections := querySelectorAll(doc, "section")

	hrefs := make([]string, len(links))
	byHref := make(map[string]js.Value, len(links))
	for i, l := range links {
		hrefs[i] = l.Call("getAttribute", "href").String()
		byHref[hrefs[i]] = l
	}

	h := nav.NewHighlighter(hrefs)
	h.Margin = settings.NavMargin
	var state nav.State

	onScroll := js.FuncOf(func(this js.Value, args []js.Value) any {
		measured := make([]nav.Section, len(sections))
		for i, s := range sections {
			measured[i] = nav.Section{ID: s.Get("id").String(), Top: s.Get("offsetTop").Float()}
		}
		var effects []nav.Effect
		state, effects = h.Scroll(state, measured, scrollY())
		applyNav(effects, byHref, doc, js.Undefined())
		return nil
	})
	js.Global().Call("addEventListener", "scroll", onScroll, map[string]any{"passive": true})

	exists := func(id string) bool { return truthy(doc.Call("getElementById", id)) }
	for _, l := range links {
		href := l.Call("getAttribute", "href").String()
		onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
			applyNav(h.Click(href, exists), byHref, doc, args[0])
			return nil
		})
		l.Call("addEventListener", "click", onClick)
	}
}

func applyNav(effects []nav.Effect, byHref map[string]js.Value, doc, event js.Value) {
	for _, e := range effects {
		switch e.Kind {
		case nav.Activate:
			if l, ok := byHref[e.Href]; ok {
				l.Get("classList").Call("add", "active")
			}
		case nav.Deactivate:
			if l, ok := byHref[e.Href]; ok {
				l.Get("classList").Call("remove", "active")
			}
		case nav.PreventDefault:
			if truthy(event) {
				event.Call("preventDefault")
			}
		case nav.SmoothScroll:
			if target := doc.Call("getElementById", e.Target); truthy(target) {
				target.Call("scrollIntoView", map[string]any{"behavior": "smooth"})
			}
		}
	}
}

func setupSpotlight(doc js.Value, settings models.Settings, anim motion.Animator) {
	root := doc.Get("documentElement")
	style := root.Get("style")
	set := func(props map[string]string) {
		for k, v := range props {
			style.Call("setProperty", k, v)
		}
	}

	spot := cursor.NewSpotlight(settings.SpotSize, time.Duration(settings.SpotTweenMs)*time.Millisecond)
	set(spot.Init())

	onMove := js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		spot.Apply(anim, root, e.Get("clientX").Float(), e.Get("clientY").Float(), set)
		return nil
	})
	doc.Call("addEventListener", "mousemove", onMove)
}

func setupFollower(doc js.Value, settings models.Settings) {
	el := doc.Call("querySelector", ".cursor-follower")
	if !truthy(el) {
		return
	}
	f := cursor.NewFollower(settings.FollowerFactor)

	onMove := js.FuncOf(func(this js.Value, args []js.Value) any {
		f.Move(args[0].Get("clientX").Float(), args[0].Get("clientY").Float())
		return nil
	})
	doc.Call("addEventListener", "mousemove", onMove)

	style := el.Get("style")
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		x, y := f.Step()
		style.Set("transform", "translate3d("+px(x)+", "+px(y)+", 0)")
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
}

func setupTheme(doc js.Value, settings models.Settings, anim motion.Animator) {
	sw := theme.NewSwitcher(theme.Bindings(settings.Themes))
	body := doc.Get("body")

	elements := make(map[string]js.Value, len(settings.Themes))
	for _, s := range settings.Themes {
		if el := doc.Call("getElementById", s.ID); truthy(el) {
			elements[s.ID] = el
		}
	}

	rects := make([]theme.Bounds, 0, len(elements))
	for id, el := range elements {
		r := el.Call("getBoundingClientRect")
		rects = append(rects, theme.Bounds{ID: id, Top: r.Get("top").Float(), Bottom: r.Get("bottom").Float()})
	}
	applyTheme(sw.Initial(rects, viewportHeight()), body, anim)

	prevY := scrollY()
	onScroll := js.FuncOf(func(this js.Value, args []js.Value) any {
		y := scrollY()
		bounds := make([]theme.Bounds, 0, len(elements))
		for id, el := range elements {
			top := el.Get("offsetTop").Float()
			bounds = append(bounds, theme.Bounds{ID: id, Top: top, Bottom: top + el.Get("offsetHeight").Float()})
		}
		applyTheme(sw.Scroll(prevY, y, viewportHeight(), bounds), body, anim)
		prevY = y
		return nil
	})
	js.Global().Call("addEventListener", "scroll", onScroll, map[string]any{"passive": true})
}

func applyTheme(effects []theme.Effect, body js.Value, anim motion.Animator) {
	classList := body.Get("classList")
	for _, e := range effects {
		switch e.Kind {
		case theme.RemoveClasses, theme.AddClass:
			args := make([]any, len(e.Classes))
			for i, c := range e.Classes {
				args[i] = c
			}
			method := "add"
			if e.Kind == theme.RemoveClasses {
				method = "remove"
			}
			classList.Call(method, args...)
		case theme.Animate:
			anim.To(body, nil, motion.ThemeChange)
		}
	}
}

func playIntro(anim motion.Animator) {
	for _, step := range motion.Intro {
		anim.From([]motion.Target{step.Selector}, step.Tween)
	}
}

func setupScrollAnimations(anim motion.Animator, settings models.Settings) {
	doc := js.Global().Get("document")
	for _, step := range []motion.Step{motion.SectionReveal, motion.TitleReveal} {
		for _, el := range querySelectorAll(doc, step.Selector) {
			anim.From([]motion.Target{el}, step.Tween)
		}
	}
	if settings.SkillsSection != "" {
		step := motion.SkillsReveal(settings.SkillsSection)
		cards := querySelectorAll(doc, step.Selector)
		if len(cards) == 0 {
			return
		}
		targets := make([]motion.Target, len(cards))
		for i, c := range cards {
			targets[i] = c
		}
		anim.From(targets, step.Tween)
	}
}

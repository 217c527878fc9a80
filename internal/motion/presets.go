package motion

import "time"

// Step binds a tween to a CSS selector
type Step struct {
	Selector string `json:"selector"`
	Tween    Tween  `json:"tween"`
}

// Intro plays once on load, top to bottom through the sidebar
var Intro = []Step{
	{Selector: ".name", Tween: Tween{Duration: 1100 * time.Millisecond, Y: 40, Fade: true, Ease: "power3.out"}},
	{Selector: ".role", Tween: Tween{Duration: 900 * time.Millisecond, Y: 20, Fade: true, Delay: 250 * time.Millisecond, Ease: "power2.out"}},
	{Selector: ".sidebar-intro", Tween: Tween{Duration: time.Second, Y: 30, Fade: true, Delay: 400 * time.Millisecond}},
	{Selector: ".nav-link", Tween: Tween{Duration: 600 * time.Millisecond, Y: 12, Fade: true, Stagger: 120 * time.Millisecond, Delay: 550 * time.Millisecond, Ease: "power2.out"}},
	{Selector: ".social-link", Tween: Tween{Duration: 600 * time.Millisecond, Y: 10, Fade: true, Stagger: 100 * time.Millisecond, Delay: 900 * time.Millisecond}},
}

// SectionReveal plays per section when its top reaches 80% of the viewport
var SectionReveal = Step{
	Selector: "section",
	Tween:    Tween{Duration: 900 * time.Millisecond, Y: 70, Fade: true, Ease: "power3.out", Trigger: "top 80%"},
}

// TitleReveal slides section titles in from the left
var TitleReveal = Step{
	Selector: ".section-title",
	Tween:    Tween{Duration: 600 * time.Millisecond, X: -40, Fade: true, Ease: "power2.out", Trigger: "top 85%"},
}

// SkillsReveal pops the skill cards in once the skills section is in view
func SkillsReveal(sectionID string) Step {
	return Step{
		Selector: ".skill-card",
		Tween: Tween{
			Duration:  600 * time.Millisecond,
			Y:         30,
			Scale:     0.85,
			Fade:      true,
			Ease:      "power2.out",
			Stagger:   80 * time.Millisecond,
			Trigger:   "top 75%",
			TriggerOn: "#" + sectionID,
		},
	}
}

// CardEntrance staggers freshly rendered project cards
var CardEntrance = Tween{
	Duration: 700 * time.Millisecond,
	Y:        40,
	Fade:     true,
	Ease:     "power2.out",
	Stagger:  120 * time.Millisecond,
}

// ThemeChange smooths the repaint after a body theme swap
var ThemeChange = Tween{Duration: 600 * time.Millisecond, Ease: "power2.out"}

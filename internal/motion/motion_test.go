package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayFor(t *testing.T) {
	tw := Tween{Delay: 100 * time.Millisecond, Stagger: 50 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, tw.DelayFor(0))
	assert.Equal(t, 200*time.Millisecond, tw.DelayFor(2))
}

func TestCSSFromStaggers(t *testing.T) {
	els := []*Element{NewElement(), NewElement(), NewElement()}
	targets := []Target{els[0], els[1], els[2], "not an element"}

	CSS{}.From(targets, CardEntrance)

	for i, el := range els {
		assert.Equal(t, []string{"enter"}, el.Classes)
		assert.Equal(t, []string{"0ms", "120ms", "240ms"}[i], el.Style["--enter-delay"])
		assert.Equal(t, "700ms", el.Style["--enter-duration"])
		assert.Equal(t, "40px", el.Style["--enter-y"])
	}
	assert.Equal(t,
		"--enter-delay: 120ms; --enter-duration: 700ms; --enter-ease: cubic-bezier(0.215, 0.61, 0.355, 1); --enter-x: 0px; --enter-y: 40px",
		els[1].StyleAttr())
}

func TestCSSTo(t *testing.T) {
	el := NewElement()
	CSS{}.To(el, map[string]string{"--spot-x": "10px"}, Tween{Duration: 450 * time.Millisecond})
	assert.Equal(t, "10px", el.Style["--spot-x"])
	assert.Equal(t, "450ms", el.Style["transition-duration"])
}

func TestNoopLeavesElementsAlone(t *testing.T) {
	el := NewElement()
	Noop{}.From([]Target{el}, CardEntrance)
	Noop{}.To(el, map[string]string{"a": "b"}, CardEntrance)
	assert.Empty(t, el.Classes)
	assert.Empty(t, el.StyleAttr())
}

func TestSkillsReveal(t *testing.T) {
	s := SkillsReveal("skills")
	require.Equal(t, ".skill-card", s.Selector)
	assert.Equal(t, "#skills", s.Tween.TriggerOn)
	assert.Equal(t, 0.85, s.Tween.Scale)
}

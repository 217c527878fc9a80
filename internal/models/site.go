package models

// Link represents a labelled outbound link in the sidebar
type Link struct {
	Label string `json:"label" yaml:"label" koanf:"label"`
	URL   string `json:"url" yaml:"url" koanf:"url"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty" koanf:"icon"`
}

// Section kinds select the content block rendered inside a section
const (
	KindAbout    = "about"
	KindSkills   = "skills"
	KindProjects = "projects"
)

// Section represents one page section and its menu entry
type Section struct {
	ID    string `json:"id" yaml:"id" koanf:"id"`
	Title string `json:"title" yaml:"title" koanf:"title"`
	Kind  string `json:"kind,omitempty" yaml:"kind,omitempty" koanf:"kind"`
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty" koanf:"theme"`
}

// Skill represents a card in the skills grid
type Skill struct {
	Name  string `json:"name" yaml:"name" koanf:"name"`
	Level string `json:"level,omitempty" yaml:"level,omitempty" koanf:"level"`
}

// Settings is the effect configuration handed to the browser runtime
// through the body's data-settings attribute.
type Settings struct {
	NavMargin      float64   `json:"nav_margin"`
	SpotSize       float64   `json:"spot_size"`
	SpotTweenMs    int64     `json:"spot_tween_ms"`
	FollowerFactor float64   `json:"follower_factor"`
	Animate        bool      `json:"animate"`
	Themes         []Section `json:"themes"`
	SkillsSection  string    `json:"skills_section,omitempty"`
}

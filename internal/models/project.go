package models

// Project represents one portfolio project as returned by the public API.
// Every field is optional upstream, so absent values stay nil.
type Project struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Repository   *string  `json:"repository,omitempty"`
}

// ProjectList is the ordered result of one fetch
type ProjectList []Project

// StringPtr returns a pointer to s, handy for building projects in code
func StringPtr(s string) *string {
	return &s
}

// Str dereferences an optional field, returning "" when it is absent
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package render

import (
	"html"
	"net/url"
	"strings"
)

// Escape makes text safe to place in element content and in quoted
// attribute values. It escapes &, <, >, " and '.
func Escape(text string) string {
	return html.EscapeString(text)
}

// SafeURL returns raw when it is an http(s) or relative URL, "" otherwise.
// Schemes such as javascript: and data: are dropped before escaping.
func SafeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return raw
	default:
		return ""
	}
}

package services

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// storedUser is the user object the backoffice leaves behind. Both
// spellings of the identifier field occur in the wild.
type storedUser struct {
	ItsonID    json.RawMessage `json:"itsonId"`
	ItsonIDAlt json.RawMessage `json:"itsonID"`
}

// ViewerResolver picks whose projects to fetch for a request
type ViewerResolver struct {
	QueryParam string
	Cookie     string
	Fallback   string
}

// Resolve returns the viewer identifier and where it came from:
// "query", "stored", "fallback", or "" when nothing resolved.
func (v ViewerResolver) Resolve(r *http.Request) (id, source string) {
	if v.QueryParam != "" {
		if q := r.URL.Query().Get(v.QueryParam); q != "" {
			return q, "query"
		}
	}

	if v.Cookie != "" {
		if c, err := r.Cookie(v.Cookie); err == nil {
			if id := ParseStoredUser(c.Value); id != "" {
				return id, "stored"
			}
		}
	}

	if v.Fallback != "" {
		return v.Fallback, "fallback"
	}
	return "", ""
}

// ResolveViewer applies the precedence query -> stored -> fallback to
// already extracted values.
func ResolveViewer(query, stored, fallback string) string {
	if query != "" {
		return query
	}
	if id := ParseStoredUser(stored); id != "" {
		return id
	}
	return fallback
}

// ParseStoredUser extracts the identifier from a stored user object.
// The value may be URL-encoded, as cookies usually are. Anything that
// does not parse yields "".
func ParseStoredUser(raw string) string {
	if raw == "" {
		return ""
	}
	if unescaped, err := url.QueryUnescape(raw); err == nil {
		raw = unescaped
	}

	var u storedUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return ""
	}
	if id := idString(u.ItsonID); id != "" {
		return id
	}
	return idString(u.ItsonIDAlt)
}

// idString accepts the identifier as a JSON string or number
func idString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

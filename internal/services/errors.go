package services

import (
	"fmt"
)

// TransportError reports a network-level or body-decoding failure
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports a non-success HTTP status from the upstream API
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// EmptyResultError reports a well-formed response without any projects
type EmptyResultError struct {
	ViewerID string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no projects available for viewer %q", e.ViewerID)
}

// ConfigurationError reports that no viewer identifier could be resolved
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

package qbittorrent

import "fmt"

// AuthError reports a login attempt the daemon rejected. The Body is
// whatever the daemon answered instead of "Ok.".
type AuthError struct {
	Body string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Body)
}

// APIError reports a request the daemon answered with a non-success
// status. The Body carries the daemon's diagnostic text.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

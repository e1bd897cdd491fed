package api

import "fmt"

// ServerError is an error response that reached the server: the backend
// answered with a 4xx/5xx status and (usually) a message body. Anything
// else — DNS failure, refused connection, timeout — surfaces as the
// transport error itself, so callers can tell "server said no" apart from
// "server unreachable" when wording the notice.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

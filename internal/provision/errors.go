package provision

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/digitalocean/godo"
)

// AuthOrTransportError reports a network failure, a rejected credential, or
// a server-side error. StatusCode is 0 when no response was received.
type AuthOrTransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *AuthOrTransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AuthOrTransportError) Unwrap() error { return e.Err }

// ResourceCreationError reports that the API refused a create request body.
type ResourceCreationError struct {
	StatusCode int
	Message    string
	RequestID  string
	Err        error
}

func (e *ResourceCreationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.RequestID != "" {
		return fmt.Sprintf("create agent rejected: HTTP %d (request %s): %s", e.StatusCode, e.RequestID, msg)
	}
	return fmt.Sprintf("create agent rejected: HTTP %d: %s", e.StatusCode, msg)
}

func (e *ResourceCreationError) Unwrap() error { return e.Err }

// classify wraps a godo error. Client-side 4xx responses to a create call
// (other than 401/403/429) mean the body was rejected; everything else is
// an auth or transport failure.
func classify(op string, err error, creating bool) error {
	var er *godo.ErrorResponse
	if !errors.As(err, &er) || er.Response == nil {
		return &AuthOrTransportError{Op: op, Err: err}
	}

	code := er.Response.StatusCode
	if creating && code >= 400 && code < 500 && !isAuthOrThrottle(code) {
		return &ResourceCreationError{
			StatusCode: code,
			Message:    er.Message,
			RequestID:  er.RequestID,
			Err:        err,
		}
	}
	return &AuthOrTransportError{Op: op, StatusCode: code, Err: err}
}

func isAuthOrThrottle(code int) bool {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return true
	}
	return false
}

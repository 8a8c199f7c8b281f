package domain

import "errors"

// Sentinel errors shared by the store, the services and the HTTP layer.
// Services return these (possibly wrapped); controllers map them to status codes.
var (
	// ErrNotFound is returned when a sport, session or membership does not exist.
	// Edit and delete of a session the requester does not own also return it.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the actor may not perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned for a duplicate membership or a sport still referenced by sessions.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned when the request is malformed (e.g. an unparseable id or empty name).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable wraps unexpected store failures so callers can tell them apart from request errors.
	ErrUnavailable = errors.New("store unavailable")
)

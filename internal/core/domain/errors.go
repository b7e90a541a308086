package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyEquation is returned for a blank equation before any
	// collaborator is consulted. The message text is part of the wire
	// contract and must not change.
	ErrEmptyEquation = zerr.New("Empty equation")

	// ErrNoTypesetter is returned when no typesetter command is configured.
	ErrNoTypesetter = zerr.New("typesetter command not configured")

	// ErrNoRasterizer is returned when no rasterizer command is configured.
	ErrNoRasterizer = zerr.New("rasterizer command not configured")
)

// TypesetError reports LaTeX the typesetter rejected as malformed. It is
// the recoverable error class: the cache layer stores it and replays the
// same message on every identical request. Every other failure coming out
// of a collaborator is a tooling failure and is never cached.
type TypesetError struct {
	Message string
}

// Error implements the error interface.
func (e *TypesetError) Error() string {
	return e.Message
}

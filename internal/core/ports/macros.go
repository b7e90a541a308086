package ports

import "go.trai.ch/texd/internal/core/domain"

// MacroProvider extracts user macro definitions from a preamble document.
// It is consulted once at startup; the result is injected into the
// typesetter configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=macros.go -destination=mocks/mock_macros.go -package=mocks
type MacroProvider interface {
	// Parse returns the macros defined in the document, keyed by name.
	Parse(doc string) (map[string]domain.Macro, error)
}

// Package ports defines the core interfaces for the application.
package ports

import "context"

// Typesetter converts LaTeX source text into SVG markup.
//
//go:generate go run go.uber.org/mock/mockgen -source=typesetter.go -destination=mocks/mock_typesetter.go -package=mocks
type Typesetter interface {
	// Typeset returns the SVG document for the given equation.
	//
	// Malformed input is reported as a *domain.TypesetError carrying the
	// tool's message; any other failure is a tooling error.
	Typeset(ctx context.Context, equation string) (string, error)
}

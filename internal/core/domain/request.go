// Package domain holds the semantic types of the render daemon.
package domain

// RenderFlags is the bit-field carried by render requests.
type RenderFlags int

const (
	// FlagDynamic selects auto-fit sizing: the equation renders at its
	// natural size and the cell span grows to cover it.
	FlagDynamic RenderFlags = 1 << iota
	// FlagCenter centers the raster inside the final box instead of
	// anchoring it top-left. Only meaningful in dynamic mode.
	FlagCenter
)

// Dynamic reports whether auto-fit sizing is requested.
func (f RenderFlags) Dynamic() bool {
	return f&FlagDynamic != 0
}

// Center reports whether the raster should be centered in its box.
func (f RenderFlags) Center() bool {
	return f&FlagCenter != 0
}

// RenderRequest is one decoded render request. Immutable once received.
//
// ID is an opaque correlation token assigned by the caller. It is unique
// per in-flight request but may be reused across the process lifetime.
type RenderRequest struct {
	ID       string
	Equation string

	// CellWidth and CellHeight are the pixel size of one text-grid cell
	// in the host UI.
	CellWidth  int
	CellHeight int

	// Width and Height are the requested span in cells.
	Width  int
	Height int

	Flags RenderFlags

	// Color is consumed literally by the rasterizer (hex or keyword).
	Color string
}

// RenderedEquation describes a completed render. Width and Height are the
// final logical span in cells, after any auto-fit adjustment.
type RenderedEquation struct {
	Equation string
	Filename string
	Width    int
	Height   int
}

// Macro is a user macro definition taken from the preamble document.
// Arity is the number of arguments, zero for parameterless macros.
type Macro struct {
	Body  string
	Arity int
}

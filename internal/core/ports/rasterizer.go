package ports

import "context"

// RasterOptions selects the output size of a rasterization. Exactly one of
// the two forms is used: a fixed pixel box (Width/Height) or a zoom factor
// applied to the document's natural size.
type RasterOptions struct {
	Width  int
	Height int
	Zoom   float64
}

// Rasterizer converts SVG markup into raster bytes and re-fits existing
// rasters into a target box.
//
//go:generate go run go.uber.org/mock/mockgen -source=rasterizer.go -destination=mocks/mock_rasterizer.go -package=mocks
type Rasterizer interface {
	// Rasterize renders the SVG to PNG bytes at the requested size.
	Rasterize(ctx context.Context, svg string, opts RasterOptions) ([]byte, error)

	// FitTo scales the raster to fit inside width x height, anchors it
	// centered or top-left, and writes the result to path.
	FitTo(ctx context.Context, raster []byte, path string, width, height int, center bool) error
}

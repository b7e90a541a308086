package render

import (
	"math"

	"go.trai.ch/texd/internal/core/domain"
)

// referenceDPI is the CSS baseline the typesetter's natural units assume.
const referenceDPI = 96

// zoomBase maps one cell-height pixel to zoom units at the reference DPI.
const zoomBase = 10

// PixelBox is a physical pixel target for the rasterizer.
type PixelBox struct {
	Width  int
	Height int
}

// FixedBox computes the physical pixel dimensions for fixed-mode sizing:
// the requested cell span times the cell size, oversampled by the internal
// scale.
func FixedBox(req domain.RenderRequest, scale domain.Scale) PixelBox {
	return PixelBox{
		Width:  scalePx(req.Width*req.CellWidth, scale.Internal),
		Height: scalePx(req.Height*req.CellHeight, scale.Internal),
	}
}

// DynamicZoom computes the zoom factor for the natural-size render in
// dynamic mode.
func DynamicZoom(req domain.RenderRequest, scale domain.Scale) float64 {
	return zoomBase * scale.Dynamic * float64(req.CellHeight) * scale.Internal / referenceDPI
}

// CellSpan is the logical size of a render in grid cells.
type CellSpan struct {
	Width  int
	Height int
}

// FitNatural reconciles the natural pixel size of a dynamic render with
// the requested cell span: the span grows to cover the natural size but
// never shrinks below what the caller reserved. It returns the final span
// and the physical box the raster is re-fit into.
func FitNatural(naturalWidth, naturalHeight int, req domain.RenderRequest, scale domain.Scale) (CellSpan, PixelBox) {
	span := CellSpan{
		Width:  max(req.Width, naturalCells(naturalWidth, req.CellWidth, scale.Internal)),
		Height: max(req.Height, naturalCells(naturalHeight, req.CellHeight, scale.Internal)),
	}
	box := PixelBox{
		Width:  scalePx(span.Width*req.CellWidth, scale.Internal),
		Height: scalePx(span.Height*req.CellHeight, scale.Internal),
	}
	return span, box
}

// naturalCells converts a natural pixel dimension back into whole cells.
func naturalCells(px, cellPx int, internal float64) int {
	if cellPx <= 0 {
		return 0
	}
	return int(math.Ceil(float64(px) / internal / float64(cellPx)))
}

func scalePx(logical int, internal float64) int {
	return int(math.Round(float64(logical) * internal))
}

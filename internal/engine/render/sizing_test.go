package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/engine/render"
)

func req(cellW, cellH, w, h int) domain.RenderRequest {
	return domain.RenderRequest{CellWidth: cellW, CellHeight: cellH, Width: w, Height: h}
}

func TestFixedBox(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.RenderRequest
		internal float64
		want     render.PixelBox
	}{
		{"one cell", req(8, 16, 1, 1), 1, render.PixelBox{Width: 8, Height: 16}},
		{"multi cell", req(8, 16, 3, 2), 1, render.PixelBox{Width: 24, Height: 32}},
		{"hidpi", req(8, 16, 1, 1), 2, render.PixelBox{Width: 16, Height: 32}},
		{"fractional scale", req(8, 16, 1, 1), 1.5, render.PixelBox{Width: 12, Height: 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render.FixedBox(tt.req, domain.Scale{Internal: tt.internal, Dynamic: 1})
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDynamicZoom(t *testing.T) {
	r := req(8, 16, 1, 1)

	base := render.DynamicZoom(r, domain.Scale{Internal: 1, Dynamic: 1})
	require.InDelta(t, 10.0*16.0/96.0, base, 1e-12)

	// The dynamic factor multiplies the zoom linearly.
	doubled := render.DynamicZoom(r, domain.Scale{Internal: 1, Dynamic: 2})
	require.InDelta(t, 2*base, doubled, 1e-12)

	// So does the internal oversampling factor.
	hidpi := render.DynamicZoom(r, domain.Scale{Internal: 2, Dynamic: 1})
	require.InDelta(t, 2*base, hidpi, 1e-12)
}

func TestFitNatural_GrowsToCoverNaturalSize(t *testing.T) {
	r := req(8, 16, 1, 1)

	span, box := render.FitNatural(20, 10, r, domain.Scale{Internal: 1, Dynamic: 1})
	require.Equal(t, render.CellSpan{Width: 3, Height: 1}, span)
	require.Equal(t, render.PixelBox{Width: 24, Height: 16}, box)
}

func TestFitNatural_NeverShrinksBelowRequest(t *testing.T) {
	r := req(8, 16, 4, 2)

	span, box := render.FitNatural(4, 4, r, domain.Scale{Internal: 1, Dynamic: 1})
	require.Equal(t, render.CellSpan{Width: 4, Height: 2}, span)
	require.Equal(t, render.PixelBox{Width: 32, Height: 32}, box)
}

func TestFitNatural_DividesOutInternalScale(t *testing.T) {
	r := req(8, 16, 1, 1)

	// 32x32 physical pixels at 2x oversampling are 16x16 logical pixels:
	// two cells wide, one high.
	span, box := render.FitNatural(32, 32, r, domain.Scale{Internal: 2, Dynamic: 1})
	require.Equal(t, render.CellSpan{Width: 2, Height: 1}, span)
	require.Equal(t, render.PixelBox{Width: 32, Height: 32}, box)
}

package raster_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.trai.ch/texd/internal/adapters/raster"
)

// solidPNG encodes a solid-color PNG of the given size.
func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestFitTo_CenteredKeepsAspect(t *testing.T) {
	r := raster.New(nil)
	out := filepath.Join(t.TempDir(), "out.png")

	// 2:1 source into a square box: scaled to 8x4, vertically centered.
	src := solidPNG(t, 2, 1, color.White)
	require.NoError(t, r.FitTo(context.Background(), src, out, 8, 8, true))

	img := decodeFile(t, out)
	require.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	require.Zero(t, alphaAt(img, 4, 0))    // above the band
	require.NotZero(t, alphaAt(img, 4, 3)) // inside the band
	require.NotZero(t, alphaAt(img, 4, 4)) // inside the band
	require.Zero(t, alphaAt(img, 4, 7))    // below the band
}

func TestFitTo_TopLeftAnchored(t *testing.T) {
	r := raster.New(nil)
	out := filepath.Join(t.TempDir(), "out.png")

	src := solidPNG(t, 2, 1, color.White)
	require.NoError(t, r.FitTo(context.Background(), src, out, 8, 8, false))

	img := decodeFile(t, out)
	require.NotZero(t, alphaAt(img, 4, 1)) // band starts at the top
	require.Zero(t, alphaAt(img, 4, 6))    // bottom stays empty
}

func TestFitTo_ExactBoxFillsCompletely(t *testing.T) {
	r := raster.New(nil)
	out := filepath.Join(t.TempDir(), "out.png")

	src := solidPNG(t, 4, 4, color.White)
	require.NoError(t, r.FitTo(context.Background(), src, out, 4, 4, true))

	img := decodeFile(t, out)
	for _, p := range []image.Point{{0, 0}, {3, 0}, {0, 3}, {3, 3}, {2, 2}} {
		require.NotZero(t, alphaAt(img, p.X, p.Y), "pixel %v", p)
	}
}

func TestFitTo_RejectsGarbage(t *testing.T) {
	r := raster.New(nil)
	out := filepath.Join(t.TempDir(), "out.png")

	err := r.FitTo(context.Background(), []byte("not a png"), out, 4, 4, false)
	require.Error(t, err)
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}

func TestFitTo_RejectsEmptyBox(t *testing.T) {
	r := raster.New(nil)
	err := r.FitTo(context.Background(), solidPNG(t, 1, 1, color.White), filepath.Join(t.TempDir(), "out.png"), 0, 4, false)
	require.Error(t, err)
}

package raster

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"

	"go.trai.ch/zerr"
	xdraw "golang.org/x/image/draw"
)

// FitTo scales the PNG raster to fit inside width x height preserving its
// aspect ratio, anchors it centered or top-left, and writes the composed
// image to path. The box's uncovered area stays transparent.
func (r *Rasterizer) FitTo(ctx context.Context, raster []byte, path string, width, height int, center bool) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "fit canceled")
	}
	if width <= 0 || height <= 0 {
		return zerr.With(zerr.With(zerr.New("fit box must be positive"), "width", width), "height", height)
	}

	src, err := png.Decode(bytes.NewReader(raster))
	if err != nil {
		return zerr.Wrap(err, "failed to decode raster")
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, fitRect(src.Bounds(), width, height, center), src, src.Bounds(), xdraw.Over, nil)

	f, err := os.Create(path) //nolint:gosec // path lies inside the private workspace
	if err != nil {
		return zerr.Wrap(err, "failed to create output file")
	}

	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to encode output image")
	}
	if err := f.Close(); err != nil {
		return zerr.Wrap(err, "failed to write output file")
	}
	return nil
}

// fitRect computes the destination rectangle for a source of the given
// bounds scaled to fit a width x height box.
func fitRect(src image.Rectangle, width, height int, center bool) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return image.Rect(0, 0, 0, 0)
	}

	// Contain: the larger relative dimension hits the box edge.
	w, h := width, sh*width/sw
	if h > height {
		w, h = sw*height/sh, height
	}

	x, y := 0, 0
	if center {
		x = (width - w) / 2
		y = (height - h) / 2
	}
	return image.Rect(x, y, x+w, y+h)
}

package render

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/png"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
	"go.trai.ch/zerr"
)

// colorMarker is the placeholder the typesetter leaves for the foreground
// color.
const colorMarker = "currentColor"

// styleAttrRe matches inline style attributes; the typesetter emits one on
// the root element that would override the substituted fill color.
var styleAttrRe = regexp.MustCompile(`\s+style="[^"]*"`)

// Materializer turns typeset SVG into a sized image file inside the
// workspace.
type Materializer struct {
	rasterizer ports.Rasterizer
	workspace  artifactDir
}

// artifactDir is the slice of the workspace the materializer needs.
type artifactDir interface {
	Path(name string) string
	Track(path string)
}

// NewMaterializer creates a Materializer writing into the given workspace.
func NewMaterializer(rasterizer ports.Rasterizer, workspace artifactDir) *Materializer {
	return &Materializer{
		rasterizer: rasterizer,
		workspace:  workspace,
	}
}

// Materialize renders the SVG at the size the request and scale demand and
// writes the image file. It returns the descriptor with the final cell
// span. Any failure here is a tooling failure; the caller converts it to
// an error response.
func (m *Materializer) Materialize(
	ctx context.Context,
	req domain.RenderRequest,
	svg string,
	scale domain.Scale,
) (domain.RenderedEquation, error) {
	svg = Colorize(svg, req.Color)

	if !req.Flags.Dynamic() {
		return m.materializeFixed(ctx, req, svg, scale)
	}
	return m.materializeDynamic(ctx, req, svg, scale)
}

// materializeFixed asks the rasterizer for the exact target box; the base
// raster already matches, so it is written out directly.
func (m *Materializer) materializeFixed(
	ctx context.Context,
	req domain.RenderRequest,
	svg string,
	scale domain.Scale,
) (domain.RenderedEquation, error) {
	box := FixedBox(req, scale)

	data, err := m.rasterizer.Rasterize(ctx, svg, ports.RasterOptions{Width: box.Width, Height: box.Height})
	if err != nil {
		return domain.RenderedEquation{}, err
	}

	path := m.outputPath(req.Equation, box)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.RenderedEquation{}, zerr.Wrap(err, "failed to write image")
	}
	m.workspace.Track(path)

	return domain.RenderedEquation{
		Equation: req.Equation,
		Filename: path,
		Width:    req.Width,
		Height:   req.Height,
	}, nil
}

// materializeDynamic renders once at natural size, derives the final cell
// span from the measured pixels, and re-fits the raster into the grown
// box.
func (m *Materializer) materializeDynamic(
	ctx context.Context,
	req domain.RenderRequest,
	svg string,
	scale domain.Scale,
) (domain.RenderedEquation, error) {
	zoom := DynamicZoom(req, scale)

	data, err := m.rasterizer.Rasterize(ctx, svg, ports.RasterOptions{Zoom: zoom})
	if err != nil {
		return domain.RenderedEquation{}, err
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.RenderedEquation{}, zerr.Wrap(err, "failed to measure natural render")
	}

	span, box := FitNatural(cfg.Width, cfg.Height, req, scale)

	path := m.outputPath(req.Equation, box)
	if err := m.rasterizer.FitTo(ctx, data, path, box.Width, box.Height, req.Flags.Center()); err != nil {
		return domain.RenderedEquation{}, err
	}
	m.workspace.Track(path)

	return domain.RenderedEquation{
		Equation: req.Equation,
		Filename: path,
		Width:    span.Width,
		Height:   span.Height,
	}, nil
}

// outputPath derives the content-addressed artifact path: a digest prefix
// of the equation text plus the physical dimensions. Requests that agree
// on both share one path and overwrite each other with identical bytes.
func (m *Materializer) outputPath(equation string, box PixelBox) string {
	sum := sha256.Sum256([]byte(equation))
	name := fmt.Sprintf("%s_%dx%d.png", hex.EncodeToString(sum[:8]), box.Width, box.Height)
	return m.workspace.Path(name)
}

// Colorize substitutes the foreground-color marker with the request's
// literal color and strips inline style attributes that would override it.
func Colorize(svg, color string) string {
	svg = styleAttrRe.ReplaceAllString(svg, "")
	if color == "" {
		return svg
	}
	return strings.ReplaceAll(svg, colorMarker, color)
}

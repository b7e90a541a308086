// Package raster provides the SVG-to-PNG rasterizer adapter.
package raster

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Rasterizer = (*Rasterizer)(nil)

// Rasterizer runs an external SVG converter (rsvg-convert compatible: SVG
// on stdin, PNG on stdout, size via --width/--height or --zoom). Re-fitting
// an existing raster is done in-process, see fit.go.
type Rasterizer struct {
	argv []string
}

// New creates a Rasterizer for the given argv prefix.
func New(argv []string) *Rasterizer {
	return &Rasterizer{argv: argv}
}

// Rasterize converts the SVG to PNG bytes at the requested size. Any
// failure is a tooling error; the converter has no recoverable class.
func (r *Rasterizer) Rasterize(ctx context.Context, svg string, opts ports.RasterOptions) ([]byte, error) {
	if len(r.argv) == 0 {
		return nil, domain.ErrNoRasterizer
	}

	args := append([]string{}, r.argv[1:]...)
	if opts.Zoom > 0 {
		args = append(args, "--zoom", strconv.FormatFloat(opts.Zoom, 'f', -1, 64))
	} else {
		args = append(args,
			"--width", strconv.Itoa(opts.Width),
			"--height", strconv.Itoa(opts.Height),
		)
	}

	cmd := exec.CommandContext(ctx, r.argv[0], args...) //nolint:gosec // argv comes from trusted config
	cmd.Stdin = strings.NewReader(svg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "rasterizer failed"), "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return nil, wrapped
	}

	if stdout.Len() == 0 {
		return nil, zerr.New("rasterizer produced no output")
	}
	return stdout.Bytes(), nil
}

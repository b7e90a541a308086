// Package app implements the application layer for texd.
package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"go.trai.ch/texd/internal/adapters/wire"
	"go.trai.ch/texd/internal/adapters/workspace"
	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
	"go.trai.ch/texd/internal/engine/dispatch"
	"go.trai.ch/texd/internal/engine/render"
	"go.trai.ch/zerr"
)

// maxLineBytes bounds one request line. Equations are short; a megabyte
// already means a runaway client.
const maxLineBytes = 1 << 20

// App owns the serve loop and the per-process state it feeds.
type App struct {
	dispatcher *dispatch.Dispatcher
	workspace  *workspace.Workspace
	logger     ports.Logger
}

// New wires the engine on top of the injected collaborators. The output
// writer receives only protocol frames.
func New(
	typesetter ports.Typesetter,
	rasterizer ports.Rasterizer,
	ws *workspace.Workspace,
	logger ports.Logger,
	out io.Writer,
) *App {
	cache := render.NewCache(typesetter)
	materializer := render.NewMaterializer(rasterizer, ws)
	framer := wire.NewFramer(out)
	scale := domain.NewScaleState()

	return &App{
		dispatcher: dispatch.New(scale, cache, materializer, framer, logger),
		workspace:  ws,
		logger:     logger,
	}
}

// Serve reads request lines until EOF or context cancellation, then drains
// in-flight renders and removes the workspace. Malformed lines are logged
// and skipped; only a broken input stream ends the loop with an error.
func (a *App) Serve(ctx context.Context, in io.Reader) error {
	defer a.workspace.Cleanup()

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			line := bytes.Clone(scanner.Bytes())
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			req, err := wire.Decode(line)
			if err != nil {
				a.logger.Warn(fmt.Sprintf("skipping malformed request line: %v", err))
				continue
			}
			a.dispatcher.Dispatch(ctx, req)
		}
	}

	a.dispatcher.Wait()

	select {
	case err := <-readErr:
		if err != nil {
			return zerr.Wrap(err, "input stream failed")
		}
	default:
	}
	return nil
}

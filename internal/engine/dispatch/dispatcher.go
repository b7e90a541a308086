// Package dispatch routes decoded requests into the render pipeline.
package dispatch

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/texd/internal/adapters/wire"
	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
	"go.trai.ch/texd/internal/engine/render"
)

// Dispatcher routes each decoded request: render requests run concurrently
// on the in-flight group and answer on the framer, scale updates mutate
// the shared scale state inline, unknown types are ignored.
//
// Every render request produces exactly one response frame, in completion
// order, not arrival order. Correlation is the caller's job via the
// request ID.
type Dispatcher struct {
	scale        *domain.ScaleState
	cache        *render.Cache
	materializer *render.Materializer
	framer       *wire.Framer
	logger       ports.Logger

	inflight *errgroup.Group
}

// New creates a Dispatcher. The in-flight group is bounded so a burst of
// requests cannot spawn an unbounded number of tool processes.
func New(
	scale *domain.ScaleState,
	cache *render.Cache,
	materializer *render.Materializer,
	framer *wire.Framer,
	logger ports.Logger,
) *Dispatcher {
	g := new(errgroup.Group)
	g.SetLimit(4 * runtime.GOMAXPROCS(0))

	return &Dispatcher{
		scale:        scale,
		cache:        cache,
		materializer: materializer,
		framer:       framer,
		logger:       logger,
		inflight:     g,
	}
}

// Dispatch routes one request. It blocks only when the in-flight group is
// at capacity; scale updates and unknown types return immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, req wire.Request) {
	switch req.Type {
	case wire.TypeRender:
		rr := req.RenderRequest()
		d.inflight.Go(func() error {
			d.handleRender(ctx, rr)
			return nil
		})
	case wire.TypeScaleDynamic:
		d.scale.SetDynamic(req.Scale)
	case wire.TypeScaleInternal:
		d.scale.SetInternal(req.Scale)
	default:
		// Unknown types are tolerated for forward compatibility.
	}
}

// Wait blocks until every in-flight render has answered.
func (d *Dispatcher) Wait() {
	_ = d.inflight.Wait()
}

// handleRender runs the pipeline and writes exactly one frame. A render
// failure never escapes: it becomes an error frame and the daemon keeps
// serving.
func (d *Dispatcher) handleRender(ctx context.Context, req domain.RenderRequest) {
	re, err := d.render(ctx, req)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("render %s failed: %v", req.ID, err))
		if werr := d.framer.WriteError(req.ID, err.Error()); werr != nil {
			d.logger.Error(werr)
		}
		return
	}
	if werr := d.framer.WriteImage(req.ID, re.Width, re.Height, re.Filename); werr != nil {
		d.logger.Error(werr)
	}
}

func (d *Dispatcher) render(ctx context.Context, req domain.RenderRequest) (domain.RenderedEquation, error) {
	if strings.TrimSpace(req.Equation) == "" {
		// Reported before any cache or collaborator interaction.
		return domain.RenderedEquation{}, domain.ErrEmptyEquation
	}

	key := render.Key(req)
	if re, ok := d.cache.LookupRendered(key); ok {
		return re, nil
	}

	svg, err := d.cache.LookupTypeset(ctx, req.Equation)
	if err != nil {
		return domain.RenderedEquation{}, err
	}

	re, err := d.materializer.Materialize(ctx, req, svg, d.scale.Snapshot())
	if err != nil {
		return domain.RenderedEquation{}, err
	}

	d.cache.PutRendered(key, re)
	return re, nil
}

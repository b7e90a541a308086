package render

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
)

// Cache holds the two render caches: typeset output per equation text,
// and fully rendered images per parameter key. Both grow without bound;
// the process lives for one editing session and entries are small.
//
// Reads and writes are guarded, but a lookup that misses runs the
// underlying work outside the lock: two concurrent misses on the same key
// both render and the second write wins. Content is deterministic, so the
// only cost is the wasted work.
type Cache struct {
	typesetter ports.Typesetter

	mu       sync.RWMutex
	typeset  map[string]typesetEntry
	rendered map[string]domain.RenderedEquation
}

// typesetEntry caches either the SVG or the recoverable failure. Exactly
// one of the fields is set.
type typesetEntry struct {
	svg  string
	terr *domain.TypesetError
}

// NewCache creates a Cache delegating typeset misses to the given port.
func NewCache(typesetter ports.Typesetter) *Cache {
	return &Cache{
		typesetter: typesetter,
		typeset:    make(map[string]typesetEntry),
		rendered:   make(map[string]domain.RenderedEquation),
	}
}

// LookupTypeset returns the SVG for the equation, consulting the
// typesetter on a miss. Successes and malformed-input failures are
// cached — a malformed equation replays the identical message without
// re-invoking the tool. Tooling failures are returned uncached so a
// retry attempts the tool again.
func (c *Cache) LookupTypeset(ctx context.Context, equation string) (string, error) {
	c.mu.RLock()
	entry, ok := c.typeset[equation]
	c.mu.RUnlock()
	if ok {
		if entry.terr != nil {
			return "", entry.terr
		}
		return entry.svg, nil
	}

	svg, err := c.typesetter.Typeset(ctx, equation)
	if err != nil {
		var terr *domain.TypesetError
		if errors.As(err, &terr) {
			c.mu.Lock()
			c.typeset[equation] = typesetEntry{terr: terr}
			c.mu.Unlock()
		}
		return "", err
	}

	c.mu.Lock()
	c.typeset[equation] = typesetEntry{svg: svg}
	c.mu.Unlock()
	return svg, nil
}

// LookupRendered returns the cached render for the key, if any.
func (c *Cache) LookupRendered(key string) (domain.RenderedEquation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	re, ok := c.rendered[key]
	return re, ok
}

// PutRendered stores a completed render. Last writer wins.
func (c *Cache) PutRendered(key string, re domain.RenderedEquation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rendered[key] = re
}

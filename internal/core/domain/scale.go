package domain

import "sync"

// Scale is one consistent snapshot of the process-wide scale factors.
type Scale struct {
	// Internal is the oversampling multiplier applied to every physical
	// dimension (HiDPI).
	Internal float64
	// Dynamic is the extra multiplier applied only in dynamic-fit mode.
	Dynamic float64
}

// ScaleState holds the process-wide scale factors. It is shared read/write
// across all in-flight render pipelines, so access goes through a mutex.
//
// Cached render results are keyed without the scale factors, so entries
// computed under an old scale survive a scale update unchanged.
type ScaleState struct {
	mu       sync.Mutex
	internal float64
	dynamic  float64
}

// NewScaleState returns scale state with both factors at 1.0.
func NewScaleState() *ScaleState {
	return &ScaleState{internal: 1, dynamic: 1}
}

// SetInternal updates the oversampling multiplier.
func (s *ScaleState) SetInternal(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.internal = v
}

// SetDynamic updates the dynamic-mode multiplier.
func (s *ScaleState) SetDynamic(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dynamic = v
}

// Snapshot returns both factors atomically so a single render pipeline
// never observes a half-applied update.
func (s *ScaleState) Snapshot() Scale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Scale{Internal: s.internal, Dynamic: s.dynamic}
}

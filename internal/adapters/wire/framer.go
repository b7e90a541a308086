package wire

import (
	"fmt"
	"io"
	"sync"

	"go.trai.ch/zerr"
)

// Framer writes response frames. Render pipelines complete concurrently,
// so writes are serialized by a mutex; each frame is emitted in a single
// Fprintf so lines never interleave.
type Framer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewFramer creates a Framer over the output stream.
func NewFramer(w io.Writer) *Framer {
	return &Framer{w: w}
}

// WriteImage emits a success frame. Width and height are the final logical
// span in cells; the payload is the artifact path.
func (f *Framer) WriteImage(id string, width, height int, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := fmt.Fprintf(f.w, "%s:image:%d:%d:%d:%s\n", id, width, height, len(path), path); err != nil {
		return zerr.Wrap(err, "failed to write image frame")
	}
	return nil
}

// WriteError emits an error frame carrying the failure message.
func (f *Framer) WriteError(id, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := fmt.Fprintf(f.w, "%s:error:0:0:%d:%s\n", id, len(msg), msg); err != nil {
		return zerr.Wrap(err, "failed to write error frame")
	}
	return nil
}

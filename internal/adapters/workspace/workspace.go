// Package workspace manages the private artifact directory of one daemon
// process.
package workspace

import (
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
)

// Workspace is the uniquely-suffixed directory holding rendered images.
// Every artifact written into it is tracked so Cleanup can remove the
// files and then the directory itself on process exit.
type Workspace struct {
	dir string

	mu    sync.Mutex
	files []string
}

// New creates the workspace directory under the system temp root.
func New() (*Workspace, error) {
	parent := filepath.Join(os.TempDir(), "texd")
	if err := os.MkdirAll(parent, 0o700); err != nil {
		return nil, zerr.Wrap(err, "failed to create workspace parent")
	}

	dir, err := os.MkdirTemp(parent, "render-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create workspace directory")
	}

	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path returns the absolute path for an artifact filename.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Track records an artifact path for removal at cleanup. Tracking the same
// path twice is harmless; removal is best-effort anyway.
func (w *Workspace) Track(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files = append(w.files, path)
}

// Cleanup removes every tracked artifact and then the workspace directory.
// Individual failures are ignored: cleanup runs on the exit path where
// there is nothing left to report to.
func (w *Workspace) Cleanup() {
	w.mu.Lock()
	files := w.files
	w.files = nil
	w.mu.Unlock()

	for _, f := range files {
		_ = os.Remove(f)
	}
	_ = os.Remove(w.dir)
}

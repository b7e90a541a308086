// Package render implements the render cache, sizing arithmetic, and
// image materialization pipeline.
package render

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"go.trai.ch/texd/internal/core/domain"
)

// Key computes the rendered-image cache key: a digest over every request
// field that influences the output. Requests differing in any field are
// distinct entries even when the resulting pixels would coincide; the
// scale factors are deliberately absent, so entries rendered under an old
// scale remain valid keys after a scale update.
func Key(req domain.RenderRequest) string {
	h := xxhash.New()

	writeField(h, req.Equation)
	writeField(h, strconv.Itoa(req.CellWidth))
	writeField(h, strconv.Itoa(req.Width))
	writeField(h, strconv.Itoa(req.CellHeight))
	writeField(h, strconv.Itoa(req.Height))
	writeField(h, strconv.Itoa(int(req.Flags)))
	writeField(h, req.Color)

	return fmt.Sprintf("%016x", h.Sum64())
}

func writeField(h *xxhash.Digest, s string) {
	_, _ = h.WriteString(s)
	_, _ = h.Write([]byte{0}) // Separator
}

// Package wire implements the line protocol spoken on stdin/stdout.
package wire

import (
	"encoding/json"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/zerr"
)

// Request types understood by the dispatcher. Unknown types are ignored
// for forward compatibility.
const (
	TypeRender        = "render"
	TypeScaleDynamic  = "scale-dynamic"
	TypeScaleInternal = "scale-internal"
)

// Request is one decoded input line.
type Request struct {
	Type string `json:"type"`

	// Render fields.
	ID         string `json:"identifier"`
	Equation   string `json:"equation"`
	CellWidth  int    `json:"cellWidth"`
	CellHeight int    `json:"cellHeight"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Flags      int    `json:"flags"`
	Color      string `json:"color"`

	// Scale-update field.
	Scale float64 `json:"scale"`
}

// Decode parses one JSON line into a Request.
func Decode(line []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Request{}, zerr.Wrap(err, "failed to decode request line")
	}
	if req.Type == "" {
		return Request{}, zerr.New("request line has no type")
	}
	return req, nil
}

// RenderRequest converts the wire form into the immutable domain request.
func (r Request) RenderRequest() domain.RenderRequest {
	return domain.RenderRequest{
		ID:         r.ID,
		Equation:   r.Equation,
		CellWidth:  r.CellWidth,
		CellHeight: r.CellHeight,
		Width:      r.Width,
		Height:     r.Height,
		Flags:      domain.RenderFlags(r.Flags),
		Color:      r.Color,
	}
}

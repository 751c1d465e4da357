package wilsoncowan

import "wilson-ca/internal/core"

// Replay plays a completed History as a looping core.Sim.
type Replay struct {
	hist *History
	t    int
}

// NewReplay wraps h. It panics if h has no committed frames.
func NewReplay(h *History) *Replay {
	if h.Len() == 0 {
		panic("replay: empty history")
	}
	return &Replay{hist: h}
}

// Name identifies the simulation.
func (r *Replay) Name() string { return "wilsoncowan replay" }

// Size returns the grid dimensions.
func (r *Replay) Size() core.Size { return core.Size{W: r.hist.Cols(), H: r.hist.Rows()} }

// Cells returns the frame currently shown.
func (r *Replay) Cells() []uint8 { return r.hist.Frame(r.t) }

// Frame returns the index of the frame currently shown.
func (r *Replay) Frame() int { return r.t }

// Reset rewinds to the first frame. The seed is ignored; a replay is fixed.
func (r *Replay) Reset(int64) { r.t = 0 }

// Step moves to the next frame, wrapping at the end.
func (r *Replay) Step() { r.t = (r.t + 1) % r.hist.Len() }

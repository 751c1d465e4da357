package wilsoncowan

import "wilson-ca/internal/core"

// History is the append-only activity record of a run, indexed [t][row][col]
// and stored as one contiguous buffer of 0/1 bytes.
type History struct {
	steps, rows, cols int
	data              []uint8
	committed         int
}

// NewHistory allocates room for steps frames of rows x cols cells.
func NewHistory(steps, rows, cols int) *History {
	return &History{
		steps: steps,
		rows:  rows,
		cols:  cols,
		data:  make([]uint8, steps*rows*cols),
	}
}

// Steps returns the capacity in frames.
func (h *History) Steps() int { return h.steps }

// Len returns the number of committed frames.
func (h *History) Len() int { return h.committed }

// Rows returns the grid height.
func (h *History) Rows() int { return h.rows }

// Cols returns the grid width.
func (h *History) Cols() int { return h.cols }

// At returns the activity of (row, col) at step t.
func (h *History) At(t, row, col int) uint8 {
	return h.Frame(t)[row*h.cols+col]
}

// Frame returns the committed frame t in row-major order. The slice aliases
// the history and must not be modified.
func (h *History) Frame(t int) []uint8 {
	if t < 0 || t >= h.committed {
		panic("history: frame index out of range")
	}
	size := h.rows * h.cols
	return h.data[t*size : (t+1)*size]
}

// Grid returns frame t as a ByteGrid view.
func (h *History) Grid(t int) *core.ByteGrid {
	return core.ViewByteGrid(h.cols, h.rows, h.Frame(t))
}

// ActiveCount returns the number of firing cells at step t.
func (h *History) ActiveCount(t int) int {
	n := 0
	for _, v := range h.Frame(t) {
		n += int(v)
	}
	return n
}

// ActivitySeries returns the fraction of firing cells for every committed
// step.
func (h *History) ActivitySeries() []float64 {
	out := make([]float64, h.committed)
	total := float64(h.rows * h.cols)
	for t := range out {
		out[t] = float64(h.ActiveCount(t)) / total
	}
	return out
}

// Bytes returns the committed frames as one buffer.
func (h *History) Bytes() []uint8 {
	return h.data[:h.committed*h.rows*h.cols]
}

func (h *History) slot(t int) []uint8 {
	size := h.rows * h.cols
	return h.data[t*size : (t+1)*size]
}

func (h *History) commit() { h.committed++ }

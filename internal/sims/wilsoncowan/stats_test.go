package wilsoncowan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func historyWithCounts(cells int, counts ...int) *History {
	h := NewHistory(len(counts), 1, cells)
	for t, n := range counts {
		frame := h.slot(t)
		for i := 0; i < n; i++ {
			frame[i] = 1
		}
		h.commit()
	}
	return h
}

func TestSummarize(t *testing.T) {
	h := historyWithCounts(10, 2, 4, 0, 1)
	st := Summarize(h)

	assert.Equal(t, 4, st.Steps)
	assert.Equal(t, 4, st.PeakActive)
	assert.Equal(t, 1, st.PeakStep)
	assert.Equal(t, 1, st.SilentSteps)
	assert.InDelta(t, 7.0/40.0, st.MeanActivity, 1e-12)
	// (4/2 + 0/4) / 2; the silent step has no successor ratio.
	assert.InDelta(t, 1.0, st.BranchingRatio, 1e-12)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(NewHistory(3, 2, 2)))
}

func TestHistoryViews(t *testing.T) {
	h := historyWithCounts(4, 1, 3)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []float64{0.25, 0.75}, h.ActivitySeries())
	assert.Equal(t, []uint8{1, 0, 0, 0, 1, 1, 1, 0}, h.Bytes())
	assert.Equal(t, uint8(1), h.At(1, 0, 2))
	assert.Equal(t, 3, h.Grid(1).Count())
	assert.Panics(t, func() { h.Frame(2) })
}

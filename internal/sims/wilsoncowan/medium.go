package wilsoncowan

import (
	"wilson-ca/internal/core"
	pcore "wilson-ca/pkg/core"
)

// Medium is an unbounded live run of the model for interactive viewing. It
// keeps only the current and next frame instead of a full History.
type Medium struct {
	cfg  Config
	grid *Grid
	rng  *pcore.RNG
	cur  []uint8
	nxt  []uint8
	gen  int
}

// NewMedium creates a live medium and seeds it with cfg.Seed.
func NewMedium(cfg Config) (*Medium, error) {
	rng := pcore.NewRNG(cfg.Seed)
	grid, err := NewGrid(cfg, rng)
	if err != nil {
		return nil, err
	}
	cells := make([]uint8, cfg.Rows*cfg.Cols)
	m := &Medium{cfg: cfg, grid: grid, rng: rng, cur: cells, nxt: make([]uint8, len(cells))}
	if err := grid.Seed(m.cur); err != nil {
		return nil, err
	}
	return m, nil
}

// Name identifies the simulation.
func (m *Medium) Name() string { return "wilsoncowan" }

// Size returns the grid dimensions.
func (m *Medium) Size() core.Size { return core.Size{W: m.cfg.Cols, H: m.cfg.Rows} }

// Cells exposes the current activity buffer.
func (m *Medium) Cells() []uint8 { return m.cur }

// Generation returns the number of steps taken since the last reset.
func (m *Medium) Generation() int { return m.gen }

// Grid exposes the underlying cells.
func (m *Medium) Grid() *Grid { return m.grid }

// Reset redraws the initial activity from a fresh source seeded with seed.
func (m *Medium) Reset(seed int64) {
	m.rng = pcore.NewRNG(seed)
	m.grid.Reset(m.rng)
	// Buffer sizes are fixed at construction, so Seed cannot fail here.
	_ = m.grid.Seed(m.cur)
	m.gen = 0
}

// Step advances the medium by one tick.
func (m *Medium) Step() {
	if err := m.grid.Advance(m.cur, m.nxt, m.rng); err != nil {
		panic(err)
	}
	m.cur, m.nxt = m.nxt, m.cur
	m.gen++
}

func init() {
	core.Register("wilsoncowan", func(cfg map[string]string) (core.Sim, error) {
		return NewMedium(FromMap(cfg))
	})
}

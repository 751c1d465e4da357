package wilsoncowan

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wilson-ca/pkg/core"
)

// Grid owns the cells of a run and advances them one step at a time.
type Grid struct {
	shape   Shape
	rule    Rule
	radius  float64
	cells   []Cell
	table   *NeighborTable
	input   []int32
	workers int
	started bool
}

// NewGrid validates cfg, precomputes the neighbour table and draws the initial
// activity of every cell from rng.
func NewGrid(cfg Config, rng core.Bernoulli) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shape := cfg.Shape()
	table, err := NewNeighborTable(shape, cfg.ConnectivityRadius)
	if err != nil {
		return nil, fmt.Errorf("building neighbor table: %w", err)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g := &Grid{
		shape:   shape,
		rule:    cfg.Rule(),
		radius:  cfg.ConnectivityRadius,
		cells:   make([]Cell, shape.Len()),
		table:   table,
		input:   make([]int32, shape.Len()),
		workers: workers,
	}
	g.Reset(rng)
	return g, nil
}

// Reset redraws the initial activity and clears every refractory counter.
func (g *Grid) Reset(rng core.Bernoulli) {
	for i := range g.cells {
		g.cells[i] = Cell{Pos: g.shape.Position(i), Active: g.rule.Initial(rng)}
	}
	g.started = false
}

// Shape returns the grid dimensions.
func (g *Grid) Shape() Shape { return g.shape }

// Rule returns the shared transition rule.
func (g *Grid) Rule() Rule { return g.rule }

// Cell returns a copy of the cell at (row, col).
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Neighbors returns the cached neighbour positions of (row, col).
func (g *Grid) Neighbors(row, col int) []Position {
	idx := g.table.Of(g.index(row, col))
	out := make([]Position, len(idx))
	for i, j := range idx {
		out[i] = g.shape.Position(int(j))
	}
	return out
}

// SetActivity overrides the initial activity of a cell. The cell stays
// excitable.
func (g *Grid) SetActivity(row, col int, active bool) error {
	if g.started {
		return ErrAlreadyStarted
	}
	c := &g.cells[g.index(row, col)]
	c.Active = active
	c.Refractory = 0
	return nil
}

// Stimulate forces a cell to fire at t=0, leaving it refractory exactly as a
// threshold-triggered firing would.
func (g *Grid) Stimulate(row, col int) error {
	if g.started {
		return ErrAlreadyStarted
	}
	c := &g.cells[g.index(row, col)]
	c.Active = true
	c.Refractory = g.rule.RefractoryPeriod
	return nil
}

// Seed writes the initial activity into frame and freezes it.
func (g *Grid) Seed(frame []uint8) error {
	if len(frame) != len(g.cells) {
		return fmt.Errorf("seed frame has %d cells, grid has %d", len(frame), len(g.cells))
	}
	g.Snapshot(frame)
	g.started = true
	return nil
}

// Snapshot copies the current activity into dst.
func (g *Grid) Snapshot(dst []uint8) {
	for i, c := range g.cells {
		dst[i] = 0
		if c.Active {
			dst[i] = 1
		}
	}
}

// Advance computes the next step from the completed prev frame and writes it
// into next. Neighbour sums only read prev and may run in parallel; the
// transitions then run in row-major order so random draws are consumed in the
// same sequence for any worker count.
func (g *Grid) Advance(prev, next []uint8, rng core.Bernoulli) error {
	if len(prev) != len(g.cells) || len(next) != len(g.cells) {
		return fmt.Errorf("advance: frame sizes %d/%d do not match %d cells", len(prev), len(next), len(g.cells))
	}
	g.gather(prev)
	for i := range g.cells {
		c := &g.cells[i]
		c.Active, c.Refractory = g.rule.Transition(c.Refractory, int(g.input[i]), rng)
		next[i] = 0
		if c.Active {
			next[i] = 1
		}
	}
	g.started = true
	return nil
}

func (g *Grid) gather(prev []uint8) {
	rows := g.shape.Rows
	if g.workers <= 1 || rows == 1 {
		g.gatherRows(prev, 0, rows)
		return
	}
	band := rows / (g.workers * 4)
	if band < 1 {
		band = 1
	}
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for lo := 0; lo < rows; lo += band {
		hi := min(lo+band, rows)
		eg.Go(func() error {
			g.gatherRows(prev, lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
}

func (g *Grid) gatherRows(prev []uint8, lo, hi int) {
	cols := g.shape.Cols
	for i := lo * cols; i < hi*cols; i++ {
		if g.cells[i].Refractory > 0 {
			g.input[i] = 0
			continue
		}
		g.input[i] = int32(g.table.Sum(i, prev))
	}
}

func (g *Grid) index(row, col int) int {
	p := Position{Row: row, Col: col}
	if !g.shape.Contains(p) {
		panic(&BoundsError{Origin: p, Position: p, Shape: g.shape})
	}
	return g.shape.Index(p)
}

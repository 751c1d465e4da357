package wilsoncowan

import (
	"fmt"
	"math"
)

// Position identifies a cell by row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Shape describes the grid dimensions.
type Shape struct {
	Rows, Cols int
}

// Len returns the number of cells.
func (s Shape) Len() int { return s.Rows * s.Cols }

// Contains reports whether p lies in [0,Rows) x [0,Cols).
func (s Shape) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Index returns the row-major index of p.
func (s Shape) Index(p Position) int { return p.Row*s.Cols + p.Col }

// Position is the inverse of Index.
func (s Shape) Position(i int) Position { return Position{Row: i / s.Cols, Col: i % s.Cols} }

// IsHalfIntegral reports whether radius has the form k+0.5.
func IsHalfIntegral(radius float64) bool {
	return math.Floor(radius)+0.5 == radius
}

// DirectNeighbors returns the axis-aligned neighbours of pos. For each offset
// a in 1..floor(radius) the row pair (row±a, col) is included when both rows
// are inside the grid, and the column pair likewise. The two axes are checked
// independently.
func DirectNeighbors(pos Position, radius float64, shape Shape) []Position {
	reach := int(math.Floor(radius))
	var out []Position
	for a := 1; a <= reach; a++ {
		if pos.Row-a >= 0 && pos.Row+a < shape.Rows {
			out = append(out, Position{pos.Row - a, pos.Col}, Position{pos.Row + a, pos.Col})
		}
		if pos.Col-a >= 0 && pos.Col+a < shape.Cols {
			out = append(out, Position{pos.Row, pos.Col - a}, Position{pos.Row, pos.Col + a})
		}
	}
	return out
}

// DiagonalNeighbors returns the off-axis neighbours of pos. A half-integral
// radius yields none. Otherwise every (b, c) in 1..floor(radius)-1 contributes
// the four corners (row±b, col±c), except that a pair is skipped when all of
// row-b, col-b, row-c and col-c underflow, or when any of row+b, col+b, row+c
// and col+c overflows. Corners that still fall below zero are dropped.
//
// This is not a per-corner bounds test: cells near the lower and right
// borders lose diagonal neighbours that are inside the grid.
func DiagonalNeighbors(pos Position, radius float64, shape Shape) []Position {
	if IsHalfIntegral(radius) {
		return nil
	}
	dist := int(math.Floor(radius)) - 1
	r, c := pos.Row, pos.Col
	var out []Position
	for b := 1; b <= dist; b++ {
		for d := 1; d <= dist; d++ {
			if r-b < 0 && c-b < 0 && r-d < 0 && c-d < 0 {
				continue
			}
			if r+b >= shape.Rows || c+b >= shape.Cols || r+d >= shape.Rows || c+d >= shape.Cols {
				continue
			}
			corners := [4]Position{{r - b, c - d}, {r - b, c + d}, {r + b, c - d}, {r + b, c + d}}
			for _, p := range corners {
				if shape.Contains(p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// Neighbors returns the union of the direct and diagonal neighbours of pos,
// without duplicates, direct ones first.
func Neighbors(pos Position, radius float64, shape Shape) []Position {
	direct := DirectNeighbors(pos, radius, shape)
	diagonal := DiagonalNeighbors(pos, radius, shape)
	out := make([]Position, 0, len(direct)+len(diagonal))
	seen := make(map[Position]struct{}, cap(out))
	for _, set := range [2][]Position{direct, diagonal} {
		for _, p := range set {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// NeighborTable caches the neighbour indices of every cell in compressed rows:
// the neighbours of cell i are idx[start[i]:start[i+1]].
type NeighborTable struct {
	shape Shape
	start []int32
	idx   []int32
}

// NewNeighborTable precomputes the neighbourhoods of every cell. It fails with
// a *BoundsError if the geometry yields a position outside the grid.
func NewNeighborTable(shape Shape, radius float64) (*NeighborTable, error) {
	n := shape.Len()
	t := &NeighborTable{shape: shape, start: make([]int32, n+1)}
	for i := 0; i < n; i++ {
		origin := shape.Position(i)
		for _, p := range Neighbors(origin, radius, shape) {
			if !shape.Contains(p) {
				return nil, &BoundsError{Origin: origin, Position: p, Shape: shape}
			}
			t.idx = append(t.idx, int32(shape.Index(p)))
		}
		t.start[i+1] = int32(len(t.idx))
	}
	return t, nil
}

// Of returns the neighbour indices of cell i. The slice must not be modified.
func (t *NeighborTable) Of(i int) []int32 { return t.idx[t.start[i]:t.start[i+1]] }

// Sum counts the active neighbours of cell i in frame.
func (t *NeighborTable) Sum(i int, frame []uint8) int {
	sum := 0
	for _, j := range t.Of(i) {
		sum += int(frame[j])
	}
	return sum
}

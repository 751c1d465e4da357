package wilsoncowan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsInterior(t *testing.T) {
	cases := []struct {
		name     string
		shape    Shape
		pos      Position
		radius   float64
		direct   int
		diagonal int
	}{
		{"radius 1", Shape{5, 5}, Position{2, 2}, 1, 4, 0},
		{"radius 1.5 has no diagonals", Shape{5, 5}, Position{2, 2}, 1.5, 4, 0},
		{"radius 2", Shape{7, 7}, Position{3, 3}, 2, 8, 4},
		{"radius 2.3 keeps diagonals", Shape{7, 7}, Position{3, 3}, 2.3, 8, 4},
		{"radius 2.5 drops diagonals", Shape{7, 7}, Position{3, 3}, 2.5, 8, 0},
		{"radius 3", Shape{9, 9}, Position{4, 4}, 3, 12, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, DirectNeighbors(tc.pos, tc.radius, tc.shape), tc.direct)
			assert.Len(t, DiagonalNeighbors(tc.pos, tc.radius, tc.shape), tc.diagonal)
			assert.Len(t, Neighbors(tc.pos, tc.radius, tc.shape), tc.direct+tc.diagonal)
		})
	}
}

func TestDirectNeighborsOrthogonalCross(t *testing.T) {
	got := DirectNeighbors(Position{2, 2}, 1, Shape{5, 5})
	assert.ElementsMatch(t, []Position{{1, 2}, {3, 2}, {2, 1}, {2, 3}}, got)
}

func TestDirectNeighborsAxesIndependent(t *testing.T) {
	// The row pair of (0,2) leaves the grid, the column pair does not.
	got := DirectNeighbors(Position{0, 2}, 1, Shape{5, 5})
	assert.ElementsMatch(t, []Position{{0, 1}, {0, 3}}, got)

	got = DirectNeighbors(Position{2, 4}, 1, Shape{5, 5})
	assert.ElementsMatch(t, []Position{{1, 4}, {3, 4}}, got)
}

func TestDiagonalNeighborsHalfIntegralEmpty(t *testing.T) {
	shape := Shape{12, 12}
	for k := 0; k <= 5; k++ {
		radius := float64(k) + 0.5
		require.True(t, IsHalfIntegral(radius))
		for i := 0; i < shape.Len(); i++ {
			assert.Empty(t, DiagonalNeighbors(shape.Position(i), radius, shape), "radius %v", radius)
		}
	}
	assert.False(t, IsHalfIntegral(3))
	assert.False(t, IsHalfIntegral(2.3))
}

func TestDiagonalNeighborsEdgeRules(t *testing.T) {
	shape := Shape{5, 5}

	// Top-left corner: every negative offset underflows, the pair is skipped.
	assert.Empty(t, DiagonalNeighbors(Position{0, 0}, 2, shape))

	// Only the row underflows: the in-grid corners survive.
	got := DiagonalNeighbors(Position{0, 1}, 2, shape)
	assert.ElementsMatch(t, []Position{{1, 0}, {1, 2}}, got)

	// Bottom-right corner: the upper-bound rule drops (3,3) even though it is
	// inside the grid.
	assert.Empty(t, DiagonalNeighbors(Position{4, 4}, 2, shape))
	assert.Empty(t, DiagonalNeighbors(Position{4, 2}, 2, shape))
}

func TestNeighborsStayInBounds(t *testing.T) {
	shapes := []Shape{{1, 1}, {3, 7}, {6, 4}, {10, 10}}
	radii := []float64{0.5, 1, 1.5, 2, 2.3, 3, 3.5, 4, 6}
	for _, shape := range shapes {
		for _, radius := range radii {
			table, err := NewNeighborTable(shape, radius)
			require.NoError(t, err)
			for i := 0; i < shape.Len(); i++ {
				pos := shape.Position(i)
				got := Neighbors(pos, radius, shape)
				seen := map[Position]bool{}
				for _, p := range got {
					require.True(t, shape.Contains(p), "%v of %v outside %v at radius %v", p, pos, shape, radius)
					require.NotEqual(t, pos, p, "cell is its own neighbor")
					require.False(t, seen[p], "duplicate %v", p)
					seen[p] = true
				}
				idx := table.Of(i)
				require.Len(t, idx, len(got))
				for k, j := range idx {
					assert.Equal(t, got[k], shape.Position(int(j)))
				}
			}
		}
	}
}

func TestNeighborTableSum(t *testing.T) {
	shape := Shape{3, 3}
	table, err := NewNeighborTable(shape, 1)
	require.NoError(t, err)

	frame := []uint8{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	}
	assert.Equal(t, 4, table.Sum(shape.Index(Position{1, 1}), frame))
	// (0,1) only sees its row: (0,0) and (0,2).
	assert.Equal(t, 0, table.Sum(shape.Index(Position{0, 1}), frame))
}

func TestBoundsErrorMatchesSentinel(t *testing.T) {
	err := error(&BoundsError{Origin: Position{0, 0}, Position: Position{-1, 0}, Shape: Shape{2, 2}})
	assert.ErrorIs(t, err, ErrBoundsViolation)
	assert.Contains(t, err.Error(), "(-1,0)")
}

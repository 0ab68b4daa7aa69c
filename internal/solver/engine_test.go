package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

func gridFrom(values [9][9]uint8) *domain.Grid {
	b := domain.Board{Values: values}
	return b.Grid("test")
}

// snapshot captures every cell's value and occupancy counters.
type snapshot [9][9][10]uint8

func capture(g *domain.Grid) snapshot {
	var s snapshot
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := g.Cell(domain.Pos{Row: r, Col: c})
			s[r][c][0] = cell.Value
			for n := uint8(1); n <= 9; n++ {
				s[r][c][n] = cell.Occupancy(n)
			}
		}
	}
	return s
}

func TestNewEngineSeedsOccupancy(t *testing.T) {
	g := gridFrom(classic)
	NewEngine(g)

	// (0,2) shares row 0 with a 5 and a 3, and its box with 9 and 8.
	cell := g.Cell(domain.Pos{Row: 0, Col: 2})
	assert.False(t, cell.CanHold(5))
	assert.False(t, cell.CanHold(3))
	assert.False(t, cell.CanHold(9))
	assert.False(t, cell.CanHold(8))
	assert.True(t, cell.CanHold(4))
}

func TestAssignRetractRoundTrip(t *testing.T) {
	g := gridFrom(classic)
	e := NewEngine(g)

	before := capture(g)
	p := domain.Pos{Row: 0, Col: 2}
	require.True(t, g.Cell(p).CanHold(4))
	e.Assign(p, 4)
	require.EqualValues(t, 4, g.Cell(p).Value)
	e.Retract(p)
	assert.Equal(t, before, capture(g), "assign+retract must restore every counter")
}

func TestSolveClassic(t *testing.T) {
	g := gridFrom(classic)
	e := NewEngine(g)
	require.True(t, e.Solve())
	assert.Equal(t, classicSolved, g.Board().Values)
	assert.Equal(t, domain.Valid, g.Check(true))
}

func TestSolveHardest(t *testing.T) {
	g := gridFrom(hardest)
	e := NewEngine(g)
	start := time.Now()
	require.True(t, e.Solve())
	assert.Equal(t, hardestSolved, g.Board().Values)
	assert.Equal(t, domain.Valid, g.Check(true))
	t.Logf("nodes=%d dur=%v", e.Nodes(), time.Since(start))
}

func TestSolveEmptyGrid(t *testing.T) {
	g := domain.NewGrid("empty")
	e := NewEngine(g)
	require.True(t, e.Solve())
	assert.True(t, g.IsComplete())
	assert.Equal(t, domain.Valid, g.Check(true))
}

func TestSolveUnsolvable(t *testing.T) {
	g := gridFrom(unsolvable)
	assert.NotEqual(t, domain.Valid, g.Check(false), "duplicate givens must be visible before solving")

	e := NewEngine(g)
	require.False(t, e.Solve())
	assert.Equal(t, unsolvable, g.Board().Values, "a failed solve leaves the grid as it was")
}

func TestForcedMove(t *testing.T) {
	// Row 0 holds 1..8 in columns 0..7; the 9 is forced at (0,8). No box
	// offers a single-candidate number first, so the row scan finds it.
	g := domain.NewGrid("forced")
	for c := 0; c < 8; c++ {
		g.SetInitial(domain.Pos{Row: 0, Col: c}, uint8(c+1))
	}
	e := NewEngine(g)

	p, v, ok := e.ForcedMove()
	require.True(t, ok)
	assert.Equal(t, domain.Pos{Row: 0, Col: 8}, p)
	assert.EqualValues(t, 9, v)
}

func TestSolveIsRepeatableOnSolvedGrid(t *testing.T) {
	g := gridFrom(classic)
	e := NewEngine(g)
	require.True(t, e.Solve())
	first := g.Check(true)
	second := g.Check(true)
	assert.Equal(t, first, second)
	// Solving an already complete grid is a no-op success.
	assert.True(t, e.Solve())
	assert.Equal(t, classicSolved, g.Board().Values)
}

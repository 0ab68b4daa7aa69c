package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

// Engine solves a grid in place by keeping per-cell occupancy counters
// current across every placement, so legality is an O(1) lookup. It
// interleaves forced-move deduction with minimum-remaining-values
// backtracking. One engine owns one grid for the lifetime of a solve.
type Engine struct {
	grid  *domain.Grid
	log   logrus.FieldLogger
	nodes int
}

// NewEngine wraps grid and seeds occupancy counters from every pre-filled
// cell, scanned row-major. This must happen before Solve: legality tests are
// meaningless until the counters reflect all givens.
func NewEngine(grid *domain.Grid) *Engine {
	e := &Engine{grid: grid, log: logrus.StandardLogger()}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p := domain.Pos{Row: r, Col: c}
			if v := grid.Cell(p).Value; v != 0 {
				e.Assign(p, v)
			}
		}
	}
	return e
}

// Nodes returns the number of placements made so far, including retracted
// ones.
func (e *Engine) Nodes() int { return e.nodes }

// Assign places v at p and bumps the occupancy counter for v on every cell
// of the three groups containing p. The caller guarantees v is legal at p;
// the engine does not re-validate.
func (e *Engine) Assign(p domain.Pos, v uint8) {
	e.grid.Cell(p).Value = v
	e.eachNeighbor(p, func(c *domain.Cell) { c.Mark(v) })
	e.nodes++
}

// Retract is the exact inverse of Assign: it clears the cell and drops the
// occupancy counters it raised, restoring the pre-assignment state. Calling
// it on an empty cell is undefined.
func (e *Engine) Retract(p domain.Pos) {
	v := e.grid.Cell(p).Value
	e.grid.Cell(p).Value = 0
	e.eachNeighbor(p, func(c *domain.Cell) { c.Unmark(v) })
}

// eachNeighbor visits every cell of the box, row and column containing p.
// Cells in two of those groups (p itself included) are visited once per
// group, so counters stay symmetric under Assign/Retract.
func (e *Engine) eachNeighbor(p domain.Pos, fn func(*domain.Cell)) {
	for _, q := range e.grid.BoxGroup((p.Row/3)*3, (p.Col/3)*3) {
		fn(e.grid.Cell(q))
	}
	for _, q := range e.grid.RowGroup(p.Row) {
		fn(e.grid.Cell(q))
	}
	for _, q := range e.grid.ColumnGroup(p.Col) {
		fn(e.grid.Cell(q))
	}
}

// Solve mutates the grid until it holds a complete legal assignment and
// returns true, or returns false after exhausting every branch, with the
// grid restored to its initial values.
func (e *Engine) Solve() bool { return e.step(0) }

// step is one recursive entry of the search. Depth counts open guesses, not
// deductions.
func (e *Engine) step(depth int) bool {
	if e.grid.IsComplete() {
		return true
	}

	// Forced moves first: a number with exactly one legal cell left in some
	// group is implied, not guessed. Only the first one found is played;
	// the recursion rescans from scratch, since a placement can force more.
	// If a forced move leads to failure the whole branch is dead: there is
	// no alternative cell for that number, so no rescue elsewhere.
	if p, v, ok := e.ForcedMove(); ok {
		e.Assign(p, v)
		if e.step(depth) {
			return true
		}
		e.Retract(p)
		return false
	}

	// No deduction left: guess at the cell with the fewest candidates.
	p, free := e.mostConstrained()
	if free == 0 {
		e.log.Debugf("no possible value for %d,%d at depth %d", p.Row, p.Col, depth)
		return false
	}
	for _, v := range e.grid.Cell(p).Candidates() {
		e.log.Debugf("guess %d for %d,%d at depth %d", v, p.Row, p.Col, depth)
		e.Assign(p, v)
		if e.step(depth + 1) {
			return true
		}
		e.Retract(p)
	}
	e.log.Debugf("%d,%d has no candidates at depth %d", p.Row, p.Col, depth)
	return false
}

// ForcedMove scans all boxes (row-major), then rows, then columns, and
// returns the first (cell, number) pair where the number has exactly one
// legal cell left in the group. The scan order is fixed: it decides which
// solution multi-solution puzzles produce.
func (e *Engine) ForcedMove() (domain.Pos, uint8, bool) {
	for _, grp := range e.grid.AllBoxes() {
		if p, v, ok := e.forcedInGroup(grp); ok {
			return p, v, true
		}
	}
	for _, grp := range e.grid.AllRows() {
		if p, v, ok := e.forcedInGroup(grp); ok {
			return p, v, true
		}
	}
	for _, grp := range e.grid.AllColumns() {
		if p, v, ok := e.forcedInGroup(grp); ok {
			return p, v, true
		}
	}
	return domain.Pos{}, 0, false
}

func (e *Engine) forcedInGroup(grp domain.Group) (domain.Pos, uint8, bool) {
	var spots [9][]domain.Pos
	for _, p := range grp {
		cell := e.grid.Cell(p)
		if cell.Value != 0 {
			continue
		}
		for n := uint8(1); n <= 9; n++ {
			if cell.CanHold(n) {
				spots[n-1] = append(spots[n-1], p)
			}
		}
	}
	for n := uint8(1); n <= 9; n++ {
		if len(spots[n-1]) == 1 {
			return spots[n-1][0], n, true
		}
	}
	return domain.Pos{}, 0, false
}

// mostConstrained returns the empty cell with the fewest legal candidates,
// scanning row-major and keeping the first cell at the current minimum.
func (e *Engine) mostConstrained() (domain.Pos, int) {
	best := domain.Pos{Row: -1, Col: -1}
	min := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p := domain.Pos{Row: r, Col: c}
			cell := e.grid.Cell(p)
			if cell.Value != 0 {
				continue
			}
			if free := cell.FreeCount(); free < min {
				best = p
				min = free
			}
		}
	}
	return best, min
}

package solver

import (
	"context"
	"time"

	"github.com/tbjoern/sudoku-solver/internal/domain"
	"github.com/tbjoern/sudoku-solver/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver without the
// occupancy bookkeeping. It doubles as the exhaustive solution counter used
// for uniqueness testing during generation.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	solved := search(ctx, &grid, &nodes, func() bool { return true })
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	count := 0
	search(ctx, &grid, &nodes, func() bool {
		count++
		return count >= 2
	})
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// search explores assignments of the first empty cell in ascending numeric
// order and recurses. found is invoked on every complete assignment; a true
// return stops the search (and is search's return value).
func search(ctx context.Context, grid *[9][9]uint8, nodes *int, found func() bool) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := firstEmpty(grid)
	if !ok {
		return found()
	}
	for v := uint8(1); v <= 9; v++ {
		(*nodes)++
		if fits(grid, r, c, v) {
			grid[r][c] = v
			if search(ctx, grid, nodes, found) {
				return true
			}
			grid[r][c] = 0
		}
	}
	return false
}

func firstEmpty(grid *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// fits reports whether v can be placed at (r, c) without clashing with the
// cell's row, column or box.
func fits(grid *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if grid[r][i] == v || grid[i][c] == v {
			return false
		}
	}
	r0, c0 := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if grid[r0+dr][c0+dc] == v {
				return false
			}
		}
	}
	return true
}

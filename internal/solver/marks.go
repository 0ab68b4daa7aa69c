package solver

import (
	"context"
	"errors"
	"time"

	"github.com/tbjoern/sudoku-solver/internal/domain"
	"github.com/tbjoern/sudoku-solver/internal/ports"
)

// ErrUnsolvable is returned when a board admits no complete legal
// assignment.
var ErrUnsolvable = errors.New("unsolvable")

// MarksSolver adapts the occupancy engine to the Solver port. An engine
// solve runs to completion once started; ctx is honored only at entry.
type MarksSolver struct{}

func NewMarksSolver() *MarksSolver { return &MarksSolver{} }

func (s *MarksSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	g := b.Grid("")
	e := NewEngine(g)
	if !e.Solve() {
		return nil, ports.Stats{Nodes: e.Nodes(), Duration: time.Since(start)}, ErrUnsolvable
	}
	out := g.Board()
	out.Fixed = b.Fixed
	return out, ports.Stats{Nodes: e.Nodes(), Duration: time.Since(start)}, nil
}

// Unique counts solutions up to 2. The engine stops at the first solution
// by design, so uniqueness testing delegates to the exhaustive backtracking
// counter.
func (s *MarksSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return NewBacktrackingSolver().Unique(ctx, b)
}

package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/tbjoern/sudoku-solver/internal/domain"
	"github.com/tbjoern/sudoku-solver/internal/ports"
	"github.com/tbjoern/sudoku-solver/internal/solver"
)

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate builds a full random solution, then carves cells out while the
// puzzle stays uniquely solvable, stopping at the difficulty's givens
// target or a time budget.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full := domain.NewGrid("")
	if !fillRandom(ctx, rng, full) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full.Board().Values
	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := rng.Perm(81)

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0
	givens := 81

	for _, pos := range positions {
		if time.Now().After(deadline) || givens <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if !unique {
			puz[r][c] = old
			fixed[r][c] = true
		} else {
			givens--
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid with a random full solution. An engine
// over the grid keeps occupancy counters current, so legality is a counter
// lookup instead of a row/column/box rescan per try.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Grid) bool {
	e := solver.NewEngine(grid)
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		p := domain.Pos{Row: r, Col: c}
		for _, k := range rng.Perm(9) {
			v := uint8(k + 1)
			if grid.Cell(p).CanHold(v) {
				e.Assign(p, v)
				if dfs(nr, nc) {
					return true
				}
				e.Retract(p)
			}
		}
		return false
	}
	return dfs(0, 0)
}

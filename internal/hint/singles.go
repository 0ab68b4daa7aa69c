package hint

import (
	"context"
	"fmt"

	"github.com/tbjoern/sudoku-solver/internal/domain"
	"github.com/tbjoern/sudoku-solver/internal/solver"
)

// Singles implements a minimal Hinter: naked singles (a cell with one
// candidate left) and hidden singles (a number with one cell left in some
// group). Both read the occupancy counters an engine seeds over the board.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	g := b.Grid("")
	e := solver.NewEngine(g)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p := domain.Pos{Row: r, Col: c}
			cell := g.Cell(p)
			if cell.Value != 0 {
				continue
			}
			if v, ok := cell.SoleCandidate(); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.Pos{p},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}

	if p, v, ok := e.ForcedMove(); ok {
		return domain.Hint{
			Message:  fmt.Sprintf("Hidden single: %d has only one spot in its group", v),
			Cells:    []domain.Pos{p},
			Value:    v,
			Strategy: domain.StrategySingles,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}

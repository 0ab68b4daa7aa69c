package validator

import (
	"context"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

// FastValidator reports every cell that clashes with an earlier cell of its
// row, column or box. Unlike Grid.Check it collects all conflicts instead
// of stopping at the first, which is what the UI highlights.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Pos, error) {
	g := b.Grid("")
	conf := make([]domain.Pos, 0, 8)

	scan := func(groups [9]domain.Group) {
		for _, grp := range groups {
			m := 0
			for _, p := range grp {
				val := g.Cell(p).Value
				if val == 0 {
					continue
				}
				bit := 1 << val
				if m&bit != 0 {
					conf = append(conf, p)
				}
				m |= bit
			}
		}
	}
	scan(g.AllRows())
	scan(g.AllColumns())
	scan(g.AllBoxes())
	return len(conf) == 0, conf, nil
}

// Package loader reads puzzle collections from their text encoding: a label
// line followed by nine rows of nine digits, 0 denoting an empty cell.
// Input validation lives here; the engine assumes well-formed grids.
package loader

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

// ReadFile parses every puzzle in the file at path.
func ReadFile(path string) ([]*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open puzzle file")
	}
	defer f.Close()

	var grids []*domain.Grid
	var current *domain.Grid
	row := 0
	lineNo := 0

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if current == nil {
			if line == "" {
				continue
			}
			current = domain.NewGrid(line)
			row = 0
			continue
		}
		if err := fillRow(current, row, line); err != nil {
			return nil, errors.Wrapf(err, "%s line %d", path, lineNo)
		}
		row++
		if row == 9 {
			grids = append(grids, current)
			current = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read puzzle file")
	}
	if current != nil {
		return nil, errors.Errorf("%s: puzzle %q truncated after %d rows", path, current.Name, row)
	}
	return grids, nil
}

func fillRow(g *domain.Grid, row int, line string) error {
	if len(line) != 9 {
		return errors.Errorf("expected 9 digits, got %d", len(line))
	}
	for col, ch := range line {
		if ch < '0' || ch > '9' {
			return errors.Errorf("invalid digit %q", ch)
		}
		if ch != '0' {
			g.SetInitial(domain.Pos{Row: row, Col: col}, uint8(ch-'0'))
		}
	}
	return nil
}

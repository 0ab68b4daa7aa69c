package domain

import "strings"

// Pos identifies a cell on the grid. Row and Col are in [0, 9).
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is one of the 81 grid positions. Value 0 means unassigned.
// occupancy[n-1] counts, per candidate number n, how many placements in the
// cell's row, column and box currently block n here; n is legal iff the
// count is zero. A filled cell keeps its counters but is never consulted
// for candidacy.
type Cell struct {
	Value     uint8
	occupancy [9]uint8
}

// Mark records one more placement of n in a group containing this cell.
func (c *Cell) Mark(n uint8) { c.occupancy[n-1]++ }

// Unmark undoes exactly one Mark of n.
func (c *Cell) Unmark(n uint8) { c.occupancy[n-1]-- }

// Occupancy returns the current counter for n.
func (c *Cell) Occupancy(n uint8) uint8 { return c.occupancy[n-1] }

// CanHold reports whether n is currently legal for this cell.
func (c *Cell) CanHold(n uint8) bool { return c.occupancy[n-1] == 0 }

// FreeCount returns the number of currently legal candidates.
func (c *Cell) FreeCount() int {
	free := 0
	for n := uint8(1); n <= 9; n++ {
		if c.occupancy[n-1] == 0 {
			free++
		}
	}
	return free
}

// SoleCandidate returns the single legal candidate, if exactly one remains.
func (c *Cell) SoleCandidate() (uint8, bool) {
	var candidate uint8
	for n := uint8(1); n <= 9; n++ {
		if c.occupancy[n-1] == 0 {
			if candidate != 0 {
				return 0, false
			}
			candidate = n
		}
	}
	return candidate, candidate != 0
}

// Candidates returns the legal candidates in ascending order.
func (c *Cell) Candidates() []uint8 {
	out := make([]uint8, 0, 9)
	for n := uint8(1); n <= 9; n++ {
		if c.occupancy[n-1] == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Group is the ordered positions of one row, column or 3x3 box.
type Group [9]Pos

// Grid is a 9x9 sudoku board with a label. It owns its cells; one grid is
// solved by exactly one engine at a time.
type Grid struct {
	Name  string
	cells [9][9]Cell
}

// NewGrid returns an empty grid.
func NewGrid(name string) *Grid { return &Grid{Name: name} }

// Cell returns the cell at p for reading or mutation.
func (g *Grid) Cell(p Pos) *Cell { return &g.cells[p.Row][p.Col] }

// SetInitial writes a raw given during loading. It does not touch occupancy
// counters; the engine synchronizes them when it is constructed.
func (g *Grid) SetInitial(p Pos, v uint8) { g.cells[p.Row][p.Col].Value = v }

// RowGroup returns the positions of row i, left to right.
func (g *Grid) RowGroup(i int) Group {
	var grp Group
	for j := 0; j < 9; j++ {
		grp[j] = Pos{Row: i, Col: j}
	}
	return grp
}

// ColumnGroup returns the positions of column j, top to bottom.
func (g *Grid) ColumnGroup(j int) Group {
	var grp Group
	for i := 0; i < 9; i++ {
		grp[i] = Pos{Row: i, Col: j}
	}
	return grp
}

// BoxGroup returns the positions of the box whose top-left corner is
// (r0, c0), row-major. r0 and c0 must be multiples of 3.
func (g *Grid) BoxGroup(r0, c0 int) Group {
	var grp Group
	k := 0
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			grp[k] = Pos{Row: r0 + dr, Col: c0 + dc}
			k++
		}
	}
	return grp
}

// AllRows returns the nine row groups in index order.
func (g *Grid) AllRows() [9]Group {
	var out [9]Group
	for i := 0; i < 9; i++ {
		out[i] = g.RowGroup(i)
	}
	return out
}

// AllColumns returns the nine column groups in index order.
func (g *Grid) AllColumns() [9]Group {
	var out [9]Group
	for j := 0; j < 9; j++ {
		out[j] = g.ColumnGroup(j)
	}
	return out
}

// AllBoxes returns the nine boxes ordered by top-left corner, row-major:
// (0,0), (0,3), (0,6), (3,0), ...
func (g *Grid) AllBoxes() [9]Group {
	var out [9]Group
	k := 0
	for _, r0 := range [3]int{0, 3, 6} {
		for _, c0 := range [3]int{0, 3, 6} {
			out[k] = g.BoxGroup(r0, c0)
			k++
		}
	}
	return out
}

// IsComplete reports whether every cell holds a nonzero value. It performs
// no legality check.
func (g *Grid) IsComplete() bool {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g.cells[i][j].Value == 0 {
				return false
			}
		}
	}
	return true
}

// Render formats the current values for display: the label, then the nine
// rows framed by box separators.
func (g *Grid) Render() string {
	const separator = "|=========|=========|=========|\n"
	var b strings.Builder
	b.WriteString(g.Name)
	b.WriteString("\n")
	for i := 0; i < 9; i++ {
		if i%3 == 0 {
			b.WriteString(separator)
		}
		for j := 0; j < 9; j++ {
			if j%3 == 0 {
				b.WriteString("|")
			}
			b.WriteString(" ")
			if v := g.cells[i][j].Value; v != 0 {
				b.WriteByte('0' + v)
			} else {
				b.WriteString(" ")
			}
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}
	b.WriteString(separator)
	return b.String()
}

package domain

import "fmt"

// Valid is the Check verdict for a grid with no violation.
const Valid = "valid"

// Check validates the current values against the uniqueness rule for every
// group and returns a description of the first violation found, scanning
// boxes (row-major), then rows, then columns. Within a group duplicates are
// reported before missing numbers; missing numbers are only flagged when
// requireComplete is set. Returns Valid if nothing is wrong.
func (g *Grid) Check(requireComplete bool) string {
	for _, r0 := range [3]int{0, 3, 6} {
		for _, c0 := range [3]int{0, 3, 6} {
			label := fmt.Sprintf("3x3 at %d,%d", r0, c0)
			if msg := g.checkGroup(g.BoxGroup(r0, c0), label, requireComplete); msg != "" {
				return msg
			}
		}
	}
	for i := 0; i < 9; i++ {
		if msg := g.checkGroup(g.RowGroup(i), fmt.Sprintf("row %d", i), requireComplete); msg != "" {
			return msg
		}
	}
	for j := 0; j < 9; j++ {
		if msg := g.checkGroup(g.ColumnGroup(j), fmt.Sprintf("column %d", j), requireComplete); msg != "" {
			return msg
		}
	}
	return Valid
}

func (g *Grid) checkGroup(grp Group, label string, requireComplete bool) string {
	var seen [10]bool
	for _, p := range grp {
		v := g.Cell(p).Value
		if v == 0 {
			continue
		}
		if seen[v] {
			return fmt.Sprintf("duplicate number %d in %s", v, label)
		}
		seen[v] = true
	}
	if requireComplete {
		for n := 1; n <= 9; n++ {
			if !seen[n] {
				return fmt.Sprintf("%s is missing number %d", label, n)
			}
		}
	}
	return ""
}

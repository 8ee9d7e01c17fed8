package trirec

import "trirec/internal/grid"

type tabulation struct{ config }

func (eng *tabulation) Name() string { return "tabulation" }

// Eval computes R(x, y) bottom-up. The dense (x+1) by (y+1) table starts at
// all ones, which covers the base-case border since the fill below never
// touches row 0 or column 0. Interior cells are filled by anti-diagonal, in
// increasing i+j, so a cell's three dependencies are final before the cell
// itself is written. No recursion, no stack, O(x*y) memory.
func (eng *tabulation) Eval(x, y uint) int {
	table := grid.New(x+1, y+1)
	table.Fill(1)
	for sum := uint(2); sum <= x+y; sum++ {
		for i := uint(1); i < sum; i++ {
			if i > x {
				break
			}
			j := sum - i
			if j > y {
				continue
			}
			table.Stor(i, j, (table.Load(i-1, j-1)+
				table.Load(i, j-1)+
				table.Load(i-1, j))%1000)
		}
	}
	return table.Load(x, y)
}

// Package grid provides a dense two-dimensional integer table with a fixed
// extent known at allocation time, addressed by column then row.
package grid

import "fmt"

// Table is a dense row-major grid of ints. Use New to allocate one; the
// zero value is an empty table.
type Table struct {
	width, height uint
	cells         []int
}

// New allocates a width by height table of zeros.
func New(width, height uint) *Table {
	return &Table{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

// Width returns the table's column count.
func (t *Table) Width() uint { return t.width }

// Height returns the table's row count.
func (t *Table) Height() uint { return t.height }

// Fill sets every cell to val.
func (t *Table) Fill(val int) {
	for i := range t.cells {
		t.cells[i] = val
	}
}

// Load returns the value at column i, row j.
// Panics if (i, j) lies outside the table.
func (t *Table) Load(i, j uint) int {
	return t.cells[t.offset(i, j)]
}

// Stor writes val at column i, row j.
// Panics if (i, j) lies outside the table.
func (t *Table) Stor(i, j uint, val int) {
	t.cells[t.offset(i, j)] = val
}

func (t *Table) offset(i, j uint) uint {
	if i >= t.width || j >= t.height {
		panic(fmt.Sprintf("grid: address (%v,%v) outside %vx%v table", i, j, t.width, t.height))
	}
	return j*t.width + i
}

// Rows copies the table out row by row; mainly useful for dumps and test
// assertions.
func (t *Table) Rows() [][]int {
	rows := make([][]int, t.height)
	for j := uint(0); j < t.height; j++ {
		row := make([]int, t.width)
		copy(row, t.cells[j*t.width:(j+1)*t.width])
		rows[j] = row
	}
	return rows
}

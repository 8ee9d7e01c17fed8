package trirec

import "fmt"

// coord identifies one cell of the recurrence, and keys one memoized result.
type coord struct{ x, y uint }

func (at coord) String() string { return fmt.Sprintf("(%v,%v)", at.x, at.y) }

// cache memoizes interior results within a single top-level evaluation.
// It only grows, and a stored value is never overwritten; recomputing a
// coordinate would produce the same value anyway, so a duplicate put is
// merely dropped.
type cache map[coord]int

func (m cache) get(at coord) (res int, defined bool) {
	res, defined = m[at]
	return res, defined
}

func (m cache) put(at coord, res int) {
	if _, defined := m[at]; !defined {
		m[at] = res
	}
}

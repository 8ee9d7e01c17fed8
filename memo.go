package trirec

type memo struct{ config }

func (eng *memo) Name() string { return "memo" }

// Eval computes R(x, y) by direct recursive descent over a fresh cache:
// look up before descending, store after computing. Recursion depth is x+y
// on the goroutine stack.
func (eng *memo) Eval(x, y uint) int {
	return eng.eval(coord{x, y}, make(cache))
}

func (eng *memo) eval(at coord, m cache) int {
	if at.x == 0 || at.y == 0 {
		return 1
	}
	if res, defined := m.get(at); defined {
		return res
	}
	// child order matters only for cache warmth, but the other engines
	// reproduce it exactly, so keep it canonical
	res := (eng.eval(coord{at.x - 1, at.y - 1}, m) +
		eng.eval(coord{at.x, at.y - 1}, m) +
		eng.eval(coord{at.x - 1, at.y}, m)) % 1000
	m.put(at, res)
	return res
}

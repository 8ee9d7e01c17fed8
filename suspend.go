package trirec

import "github.com/stealthrocket/coroutine"

type suspend struct{ config }

func (eng *suspend) Name() string { return "suspend" }

// Eval computes R(x, y) with the memo engine's cache discipline, hosted in
// a coroutine: before descending into any uncached interior coordinate the
// recursion yields that coordinate, and the driver resumes it on the next
// step. The coroutine is driven synchronously to completion before Eval
// returns, so the caller sees an ordinary call.
func (eng *suspend) Eval(x, y uint) int {
	var res int
	c := coroutine.New[coord, struct{}](func() {
		res = eng.eval(coord{x, y}, make(cache))
	})
	coroutine.Run(c, func(at coord) struct{} {
		eng.logf("suspend %v", at)
		return struct{}{}
	})
	return res
}

func (eng *suspend) eval(at coord, m cache) int {
	if at.x == 0 || at.y == 0 {
		return 1
	}
	if res, defined := m.get(at); defined {
		return res
	}
	coroutine.Yield[coord, struct{}](at)
	res := (eng.eval(coord{at.x - 1, at.y - 1}, m) +
		eng.eval(coord{at.x, at.y - 1}, m) +
		eng.eval(coord{at.x - 1, at.y}, m)) % 1000
	m.put(at, res)
	return res
}

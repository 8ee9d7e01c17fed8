package trirec

// frameKind marks how far one logical call has progressed: about to check
// the base case and cache, or awaiting the result of its first, second, or
// third child.
type frameKind uint8

const (
	frameEntry frameKind = iota
	frameAwaitFirst
	frameAwaitSecond
	frameAwaitThird
)

func (kind frameKind) String() string {
	switch kind {
	case frameEntry:
		return "entry"
	case frameAwaitFirst:
		return "await1"
	case frameAwaitSecond:
		return "await2"
	case frameAwaitThird:
		return "await3"
	}
	return "invalid"
}

// frame is one suspended logical call: the coordinate under evaluation plus
// any child results captured so far. first is meaningful from awaitSecond
// on, second from awaitThird on.
type frame struct {
	kind          frameKind
	at            coord
	first, second int
}

type stackMachine struct{ config }

func (eng *stackMachine) Name() string { return "stackmachine" }

// Eval computes R(x, y) without native recursion. The call stack is an
// explicit slice of frames and a single return slot carries each completed
// child result up to the frame that dispatched it. A frame that needs a
// child pushes its own resume frame and then the child's entry frame, so
// plain LIFO pop order realizes call-then-continue; a frame is only ever
// resumed after the one child it most recently dispatched has fully
// resolved into the return slot.
func (eng *stackMachine) Eval(x, y uint) int {
	res, _ := eng.eval(x, y)
	return res
}

func (eng *stackMachine) eval(x, y uint) (rv int, maxDepth int) {
	capacity := eng.stackCap
	if capacity == 0 {
		// worst-case depth: one in-flight call per unit of x+y, plus the root
		capacity = x + y + 1
	}
	m := make(cache)
	stack := make([]frame, 0, capacity)
	stack = append(stack, frame{kind: frameEntry, at: coord{x, y}})
	for len(stack) > 0 {
		if d := len(stack); d > maxDepth {
			maxDepth = d
		}
		i := len(stack) - 1
		fr := stack[i]
		stack = stack[:i]
		eng.logf("%v %v", fr.kind, fr.at)
		switch fr.kind {
		case frameEntry:
			at := fr.at
			if at.x == 0 || at.y == 0 {
				rv = 1
				break
			}
			if res, defined := m.get(at); defined {
				rv = res
				break
			}
			stack = append(stack,
				frame{kind: frameAwaitFirst, at: at},
				frame{kind: frameEntry, at: coord{at.x - 1, at.y - 1}})
		case frameAwaitFirst:
			stack = append(stack,
				frame{kind: frameAwaitSecond, at: fr.at, first: rv},
				frame{kind: frameEntry, at: coord{fr.at.x, fr.at.y - 1}})
		case frameAwaitSecond:
			stack = append(stack,
				frame{kind: frameAwaitThird, at: fr.at, first: fr.first, second: rv},
				frame{kind: frameEntry, at: coord{fr.at.x - 1, fr.at.y}})
		case frameAwaitThird:
			rv = (fr.first + fr.second + rv) % 1000
			m.put(fr.at, rv)
			eng.logf("ret %v <- %v", rv, fr.at)
		}
	}
	// the final frame to complete was the root's, so the slot holds R(x, y)
	return rv, maxDepth
}

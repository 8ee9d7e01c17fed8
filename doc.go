/* Package trirec computes one fixed integer recurrence four different ways,
so that the ways can check each other.

The recurrence is

	R(x, y) = 1                                              if x = 0 or y = 0
	R(x, y) = (R(x-1,y-1) + R(x,y-1) + R(x-1,y)) mod 1000    otherwise

Nothing about R itself is interesting; what is interesting is that the same
definition admits four rather different execution strategies, and that all
four must land on the same answer for every input.

The memo engine is the obvious one: recursive descent with a per-call cache,
looking up before descending and storing after computing. It is the oracle
the other engines are judged against. Its recursion depth is x+y, which Go's
growable goroutine stacks tolerate far past the depths exercised here, but
it is still the engine you would not pick for adversarial inputs.

The stack machine engine produces the identical computation without any
native recursion. Each logical call becomes a small tagged frame recording
how far that call has progressed and which child results it has captured so
far; the frames live in an ordinary slice used as a LIFO stack, and a single
return slot carries each completed child's value up to the frame that
dispatched it. Pushing a resume frame and then the child's entry frame makes
plain pop order realize call-then-continue. The whole call stack is heap
data you can size, inspect, and trace.

The suspend engine runs the memo engine's exact recursion inside a
coroutine. Before descending into any uncached interior coordinate it
yields that coordinate to a driver, which resumes it immediately. No
concurrency is involved; the coroutine is driven synchronously to
completion before Eval returns. It exists as a third control-flow encoding
of the same algorithm, with the bonus that the yield sequence is an
observable trace of the evaluation order.

The tabulation engine drops call structure entirely. It allocates the full
(x+1) by (y+1) table, sets the base-case border (in fact every cell) to 1,
and fills interior cells in increasing order of i+j, so each cell's three
dependencies are final before the cell is written. It trades O(x*y) memory
for immunity to stack depth of any kind.

Engines returns one of each, and Verify runs all four concurrently against
one input and reports the agreed result or the first disagreement.
*/
package trirec

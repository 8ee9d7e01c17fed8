package trirec

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Engine evaluates the recurrence at a pair of non-negative coordinates,
// returning a value in [0, 1000). Engines hold no mutable state between
// calls; every Eval owns its own cache and working storage, so one Engine
// value may be used from many goroutines at once.
type Engine interface {
	Name() string
	Eval(x, y uint) int
}

// NewMemo returns the recursive memoized engine, the oracle the other
// engines are checked against.
func NewMemo(opts ...Option) Engine {
	eng := &memo{}
	eng.config.apply(opts...)
	return eng
}

// NewStackMachine returns the engine that replaces native recursion with an
// explicit heap-resident stack of continuation frames.
func NewStackMachine(opts ...Option) Engine {
	eng := &stackMachine{}
	eng.config.apply(opts...)
	return eng
}

// NewSuspend returns the engine that hosts the recursion in a coroutine,
// yielding each coordinate before computing it.
func NewSuspend(opts ...Option) Engine {
	eng := &suspend{}
	eng.config.apply(opts...)
	return eng
}

// NewTabulation returns the bottom-up engine that fills a dense table in
// anti-diagonal dependency order.
func NewTabulation(opts ...Option) Engine {
	eng := &tabulation{}
	eng.config.apply(opts...)
	return eng
}

// Engines returns one of each engine, oracle first.
func Engines(opts ...Option) []Engine {
	return []Engine{
		NewMemo(opts...),
		NewStackMachine(opts...),
		NewSuspend(opts...),
		NewTabulation(opts...),
	}
}

// Verify evaluates (x, y) on every engine concurrently and returns the
// agreed result. Each Eval call owns all of its state, so the fan-out needs
// no locking. A non-nil error names the first engine that disagrees with
// the oracle.
func Verify(x, y uint, opts ...Option) (int, error) {
	engines := Engines(opts...)
	results := make([]int, len(engines))
	var group errgroup.Group
	for i, eng := range engines {
		i, eng := i, eng
		group.Go(func() error {
			results[i] = eng.Eval(x, y)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			return 0, fmt.Errorf("engines disagree at (%v,%v): %v returned %v, %v returned %v",
				x, y, engines[0].Name(), results[0], engines[i].Name(), results[i])
		}
	}
	return results[0], nil
}

// WithLogf sets a printf-style tracing function; engines that trace report
// through it. Unset means no tracing.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStackCapacity pre-sizes the stack machine's frame stack; the other
// engines ignore it. Zero sizes it for the worst-case depth x+y+1.
func WithStackCapacity(capacity uint) Option { return stackCapOption(capacity) }

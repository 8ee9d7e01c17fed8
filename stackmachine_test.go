package trirec

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackMachine_depthBound(t *testing.T) {
	eng := &stackMachine{}
	for _, at := range []coord{
		{0, 0}, {1, 1}, {5, 3}, {64, 64}, {200, 100}, {1, 300},
	} {
		res, maxDepth := eng.eval(at.x, at.y)
		assert.LessOrEqual(t, maxDepth, int(at.x+at.y+1),
			"frame stack depth bound violated at %v", at)
		assert.Equal(t, NewMemo().Eval(at.x, at.y), res, "wrong result at %v", at)
	}
}

func TestStackMachine_capacityOption(t *testing.T) {
	// an undersized stack only costs reallocation, never correctness
	eng := NewStackMachine(WithStackCapacity(2))
	assert.Equal(t, 41, eng.Eval(100, 100))
}

func TestStackMachine_trace(t *testing.T) {
	var lines []string
	eng := NewStackMachine(WithLogf(func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}))

	require.Equal(t, 3, eng.Eval(1, 1))
	// the full dispatch sequence for one interior call: each await frame is
	// resumed only after the child it dispatched has resolved
	assert.Equal(t, []string{
		"entry (1,1)",
		"entry (0,0)",
		"await1 (1,1)",
		"entry (1,0)",
		"await2 (1,1)",
		"entry (0,1)",
		"await3 (1,1)",
		"ret 3 <- (1,1)",
	}, lines)

	lines = lines[:0]
	require.Equal(t, 13, eng.Eval(2, 2))
	var rets []string
	for _, line := range lines {
		if strings.HasPrefix(line, "ret ") {
			rets = append(rets, line)
		}
	}
	// completions in postorder: each interior coordinate exactly once
	assert.Equal(t, []string{
		"ret 3 <- (1,1)",
		"ret 5 <- (2,1)",
		"ret 5 <- (1,2)",
		"ret 13 <- (2,2)",
	}, rets)
}

func TestFrameKind_strings(t *testing.T) {
	assert.Equal(t, "entry", frameEntry.String())
	assert.Equal(t, "await1", frameAwaitFirst.String())
	assert.Equal(t, "await2", frameAwaitSecond.String())
	assert.Equal(t, "await3", frameAwaitThird.String())
	assert.Equal(t, "invalid", frameKind(7).String())
}

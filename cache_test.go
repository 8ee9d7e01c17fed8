package trirec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cache(t *testing.T) {
	m := make(cache)

	_, defined := m.get(coord{3, 4})
	require.False(t, defined, "empty cache must miss")

	m.put(coord{3, 4}, 7)
	res, defined := m.get(coord{3, 4})
	require.True(t, defined, "stored coordinate must hit")
	assert.Equal(t, 7, res)

	// a second put for the same coordinate is dropped
	m.put(coord{3, 4}, 9)
	res, _ = m.get(coord{3, 4})
	assert.Equal(t, 7, res, "stored value must never be overwritten")

	_, defined = m.get(coord{4, 3})
	assert.False(t, defined, "coordinates are ordered pairs, not sets")
}

func Test_coordString(t *testing.T) {
	assert.Equal(t, "(0,0)", coord{}.String())
	assert.Equal(t, "(12,7)", coord{12, 7}.String())
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"s": 1, "a": 2, "q": 3}
	assert.Equal(t, []string{"a", "q", "s"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[int]bool{}))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Clamp(3, -2, 2))
	assert.Equal(-2, Clamp(-5, -2, 2))
	assert.Equal(1, Clamp(1, -2, 2))
	assert.Equal(0.5, Clamp(0.5, 0.0, 1.0))
}

func TestMod(t *testing.T) {
	cases := []struct{ a, m, want int }{
		{0, 12, 0},
		{7, 12, 7},
		{84, 12, 0},
		{-1, 12, 11},
		{-13, 12, 11},
		{-7, 12, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Mod(c.a, c.m), "Mod(%d, %d)", c.a, c.m)
	}
}

func TestFloorDiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, FloorDiv(60, 12))
	assert.Equal(0, FloorDiv(11, 12))
	assert.Equal(-1, FloorDiv(-1, 12))
	assert.Equal(-1, FloorDiv(-12, 12))
	assert.Equal(-2, FloorDiv(-13, 12))
}

package circle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateIsCircular(t *testing.T) {
	for start := 0; start < 12; start++ {
		r := NewRotator(start)
		for i := 0; i < 12; i++ {
			r.Rotate(1)
		}
		assert.Equal(t, start, r.Index())
	}
}

func TestRotateWraps(t *testing.T) {
	assert := assert.New(t)
	r := NewRotator(0)
	assert.Equal(11, r.Rotate(-1))
	assert.Equal(0, r.Rotate(1))
	assert.Equal(1, r.Rotate(1))
	assert.Equal(11, NewRotator(-1).Index())
	assert.Equal(2, NewRotator(26).Index())
}

func TestTransposition(t *testing.T) {
	want := []int{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5}
	for i, w := range want {
		assert.Equal(t, w, Transposition(i), "index %d", i)
	}
}

func TestChordName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", ChordName(0, false))
	assert.Equal("Am", ChordName(0, true))
	assert.Equal("G", ChordName(1, false))
	assert.Equal("F", ChordName(-1, false))
	assert.Equal("Dm", ChordName(11, true))
	assert.Len(Names(true), 12)
}

func TestPosition(t *testing.T) {
	assert := assert.New(t)
	x, y := Position(0, 170, 200, 200)
	assert.InDelta(200, x, 1e-9)
	assert.InDelta(30, y, 1e-9)
	x, y = Position(3, 170, 200, 200)
	assert.InDelta(370, x, 1e-9)
	assert.InDelta(200, y, 1e-9)
}

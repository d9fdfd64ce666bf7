package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jsphweid/viano/keymap"
	"github.com/stretchr/testify/assert"
)

func TestEveryBoundKeyHasAnIdentifier(t *testing.T) {
	known := map[string]bool{}
	for _, id := range identifiers {
		known[string(id)] = true
	}
	for _, k := range keymap.Default().Keys() {
		assert.True(t, known[string(k)], "%q has no physical key", k)
	}
	for _, k := range []string{" ", "arrowleft", "arrowright", "arrowup", "arrowdown"} {
		assert.True(t, known[k], "%q has no physical key", k)
	}
}

func TestIdentifier(t *testing.T) {
	id, ok := identifier(ebiten.KeyS)
	assert.True(t, ok)
	assert.Equal(t, "s", string(id))
	id, _ = identifier(ebiten.KeyEnter)
	assert.Equal(t, keymap.Enter, id)
	_, ok = identifier(ebiten.KeyShiftLeft)
	assert.False(t, ok)
}

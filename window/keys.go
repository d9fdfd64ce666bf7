package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
)

var identifiers = map[ebiten.Key]model.Key{
	ebiten.KeyA: "a", ebiten.KeyB: "b", ebiten.KeyC: "c", ebiten.KeyD: "d", ebiten.KeyE: "e",
	ebiten.KeyF: "f", ebiten.KeyG: "g", ebiten.KeyH: "h", ebiten.KeyI: "i", ebiten.KeyJ: "j",
	ebiten.KeyK: "k", ebiten.KeyL: "l", ebiten.KeyM: "m", ebiten.KeyN: "n", ebiten.KeyO: "o",
	ebiten.KeyP: "p", ebiten.KeyQ: "q", ebiten.KeyR: "r", ebiten.KeyS: "s", ebiten.KeyT: "t",
	ebiten.KeyU: "u", ebiten.KeyV: "v", ebiten.KeyW: "w", ebiten.KeyX: "x", ebiten.KeyY: "y",
	ebiten.KeyZ: "z",

	ebiten.KeySemicolon:    ";",
	ebiten.KeyQuote:        "'",
	ebiten.KeyComma:        ",",
	ebiten.KeyPeriod:       ".",
	ebiten.KeySlash:        "/",
	ebiten.KeyBracketLeft:  "[",
	ebiten.KeyBracketRight: "]",
	ebiten.KeyBackslash:    "\\",
	ebiten.KeyEnter:        keymap.Enter,

	ebiten.KeySpace:      keymap.Space,
	ebiten.KeyArrowLeft:  keymap.ArrowLeft,
	ebiten.KeyArrowRight: keymap.ArrowRight,
	ebiten.KeyArrowUp:    keymap.ArrowUp,
	ebiten.KeyArrowDown:  keymap.ArrowDown,
}

func identifier(k ebiten.Key) (model.Key, bool) {
	id, ok := identifiers[k]
	return id, ok
}

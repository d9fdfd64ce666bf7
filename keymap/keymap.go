package keymap

import (
	"fmt"

	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Navigation and modifier keys. These never become active notes.
const (
	Space      model.Key = " "
	ArrowLeft  model.Key = "arrowleft"
	ArrowRight model.Key = "arrowright"
	ArrowUp    model.Key = "arrowup"
	ArrowDown  model.Key = "arrowdown"
	Enter      model.Key = "\n"
)

var defaultBindings = map[model.Key]model.Binding{
	// left hand: previous, focused and next chord of the circle
	"q": {Major: 48, Minor: 45}, "w": {Major: 53, Minor: 50}, "e": {Major: 57, Minor: 53}, "r": {Major: 60, Minor: 57},
	"a": {Major: 43, Minor: 40}, "s": {Major: 48, Minor: 45}, "d": {Major: 52, Minor: 48}, "f": {Major: 55, Minor: 52},
	"z": {Major: 50, Minor: 47}, "x": {Major: 55, Minor: 52}, "c": {Major: 59, Minor: 55}, "v": {Major: 62, Minor: 59},

	// right hand: the scale over three rows
	"t": {Major: 57, Minor: 57}, "y": {Major: 59, Minor: 59}, "u": {Major: 60, Minor: 60}, "i": {Major: 62, Minor: 62}, "o": {Major: 64, Minor: 64}, "p": {Major: 65, Minor: 65}, "[": {Major: 67, Minor: 67},
	"g": {Major: 69, Minor: 69}, "h": {Major: 71, Minor: 71}, "j": {Major: 72, Minor: 72}, "k": {Major: 74, Minor: 74}, "l": {Major: 76, Minor: 76}, ";": {Major: 77, Minor: 77}, "'": {Major: 79, Minor: 79}, Enter: {Major: 81, Minor: 81},
	"b": {Major: 81, Minor: 81}, "n": {Major: 83, Minor: 83}, "m": {Major: 84, Minor: 84}, ",": {Major: 86, Minor: 86}, ".": {Major: 88, Minor: 88}, "/": {Major: 89, Minor: 89}, "\\": {Major: 91, Minor: 91},
}

var (
	topRow    = []model.Key{"q", "w", "e", "r"}
	middleRow = []model.Key{"a", "s", "d", "f"}
	bottomRow = []model.Key{"z", "x", "c", "v"}
)

// LeftOverlay and RightOverlay are the keys drawn on the two overlay grids, row by row.
var (
	LeftOverlay  = []model.Key{"q", "w", "e", "r", "a", "s", "d", "f", "z", "x", "c", "v"}
	RightOverlay = []model.Key{
		"t", "y", "u", "i", "o", "p", "[",
		"g", "h", "j", "k", "l", ";", "'",
		"b", "n", "m", ",", ".", "/", "\\",
	}
)

var codeToKey = map[int]model.Key{
	65: "a", 66: "b", 67: "c", 68: "d", 69: "e", 70: "f", 71: "g", 72: "h",
	73: "i", 74: "j", 75: "k", 76: "l", 77: "m", 78: "n", 79: "o", 80: "p",
	81: "q", 82: "r", 83: "s", 84: "t", 85: "u", 86: "v", 87: "w", 88: "x",
	89: "y", 90: "z", 186: ";", 222: "'", 188: ",", 190: ".", 191: "/",
	219: "[", 221: "]", 220: "\\", 13: Enter,
}

// Resolve maps a platform key code and key name to a canonical identifier.
// Known codes win; anything else falls back to the lowercased key name.
func Resolve(code int, key string) model.Key {
	if k, ok := codeToKey[code]; ok {
		return k
	}
	return model.Key(cases.Lower(language.Und).String(key))
}

func contains(keys []model.Key, k model.Key) bool {
	for _, v := range keys {
		if v == k {
			return true
		}
	}
	return false
}

func IsTopRow(k model.Key) bool    { return contains(topRow, k) }
func IsBottomRow(k model.Key) bool { return contains(bottomRow, k) }

// IsLeftHand reports whether k is one of the twelve chord keys, which follow the octave control.
func IsLeftHand(k model.Key) bool {
	return IsTopRow(k) || contains(middleRow, k) || IsBottomRow(k)
}

func IsOverlayKey(k model.Key) bool {
	return contains(LeftOverlay, k) || contains(RightOverlay, k)
}

func IsNavigation(k model.Key) bool {
	switch k {
	case Space, ArrowLeft, ArrowRight, ArrowUp, ArrowDown:
		return true
	}
	return false
}

// Map is an immutable binding table.
type Map struct {
	bindings map[model.Key]model.Binding
}

func Default() *Map {
	return &Map{bindings: defaultBindings}
}

// New copies bindings into a new Map. Navigation keys cannot be bound.
func New(bindings map[model.Key]model.Binding) (*Map, error) {
	m := make(map[model.Key]model.Binding, len(bindings))
	for k, b := range bindings {
		if k == "" {
			return nil, fmt.Errorf("empty key in bindings")
		}
		if IsNavigation(k) {
			return nil, fmt.Errorf("key %q is reserved for navigation", k)
		}
		m[k] = b
	}
	return &Map{bindings: m}, nil
}

func (m *Map) Lookup(k model.Key) (model.Binding, bool) {
	b, ok := m.bindings[k]
	return b, ok
}

func (m *Map) Keys() []model.Key {
	return util.SortedKeys(m.bindings)
}

func (m *Map) Len() int {
	return len(m.bindings)
}

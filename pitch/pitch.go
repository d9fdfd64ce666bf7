package pitch

import (
	"fmt"
	"math"

	"github.com/jsphweid/viano/circle"
	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/util"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Mapper resolves keys to MIDI pitches against one binding table.
type Mapper struct {
	keys *keymap.Map
}

func NewMapper(keys *keymap.Map) *Mapper {
	if keys == nil {
		keys = keymap.Default()
	}
	return &Mapper{keys: keys}
}

var defaultMapper = NewMapper(nil)

func Default() *Mapper {
	return defaultMapper
}

func (m *Mapper) Keys() *keymap.Map {
	return m.keys
}

// Resolve returns the pitch key produces for the given key center, minor flag
// and left hand octave. ok is false for unbound keys. The result is not
// clamped to any range.
func (m *Mapper) Resolve(key model.Key, center int, minor bool, octave int) (int, bool) {
	b, ok := m.keys.Lookup(key)
	if !ok {
		return 0, false
	}
	p := b.Major
	if minor {
		p = b.Minor
	}
	p += circle.Transposition(center)
	if keymap.IsLeftHand(key) {
		p += octave * 12
	}
	return p, true
}

// Labels returns the note name every bound key currently produces.
func (m *Mapper) Labels(center int, minor bool, octave int) map[model.Key]string {
	res := make(map[model.Key]string, m.keys.Len())
	for _, k := range m.keys.Keys() {
		p, _ := m.Resolve(k, center, minor, octave)
		res[k] = NoteName(p)
	}
	return res
}

func Resolve(key model.Key, center int, minor bool, octave int) (int, bool) {
	return defaultMapper.Resolve(key, center, minor, octave)
}

// NoteName formats a MIDI pitch as name and octave, 60 is C4.
func NoteName(p int) string {
	return fmt.Sprintf("%s%d", noteNames[util.Mod(p, 12)], util.FloorDiv(p, 12)-1)
}

func IsAccidental(p int) bool {
	return len(noteNames[util.Mod(p, 12)]) > 1
}

// Gain is the playback loudness for p: lower pitches are louder.
func Gain(p int) float64 {
	n := float64(p-constants.LowestGainPitch) / float64(constants.HighestGainPitch-constants.LowestGainPitch)
	n = util.Clamp(n, 0, 1)
	return constants.MinGain + (constants.MaxGain-constants.MinGain)*math.Pow(1-n, 2)
}

// Velocity scales Gain to a MIDI velocity, MaxGain being 127.
func Velocity(p int) uint8 {
	v := int(math.Round(127 * Gain(p) / constants.MaxGain))
	return uint8(util.Clamp(v, 1, 127))
}

func Frequency(p int) float64 {
	return 440 * math.Pow(2, float64(p-69)/12)
}

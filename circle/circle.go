package circle

import (
	"math"

	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/util"
)

var majorChords = [constants.NumKeyCenters]string{"C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#", "F"}
var minorChords = [constants.NumKeyCenters]string{"Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m", "A#m", "Fm", "Cm", "Gm", "Dm"}

// Rotator holds the focused position on the circle of fifths.
type Rotator struct {
	index int
}

func NewRotator(index int) *Rotator {
	return &Rotator{index: Wrap(index)}
}

func (r *Rotator) Index() int {
	return r.index
}

// Rotate moves the focus by direction positions and returns the new index.
func (r *Rotator) Rotate(direction int) int {
	r.index = Wrap(r.index + direction)
	return r.index
}

func Wrap(index int) int {
	return util.Mod(index, constants.NumKeyCenters)
}

// Transposition is the semitone shift for a key center, kept within one octave.
func Transposition(index int) int {
	return util.Mod(index*constants.FifthSemitones, 12)
}

func ChordName(index int, minor bool) string {
	if minor {
		return minorChords[Wrap(index)]
	}
	return majorChords[Wrap(index)]
}

func Names(minor bool) []string {
	if minor {
		return minorChords[:]
	}
	return majorChords[:]
}

// Position places index on a circle of the given radius around (cx, cy), with index 0 at the top.
func Position(index int, radius, cx, cy float64) (float64, float64) {
	angle := float64(Wrap(index)*30-90) * math.Pi / 180
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}

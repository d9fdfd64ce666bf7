package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
)

// Pitches returns the distinct sounding pitches of notes, lowest first.
func Pitches(notes []model.ActiveNote) []int {
	seen := make(map[int]bool, len(notes))
	var res []int
	for _, n := range notes {
		if !seen[n.Pitch] {
			seen[n.Pitch] = true
			res = append(res, n.Pitch)
		}
	}
	sort.Ints(res)
	return res
}

// CreateChordKey names the sounding chord by its note names, e.g. "C3-E3-G3".
func CreateChordKey(notes []model.ActiveNote) string {
	pitches := Pitches(notes)
	names := make([]string, 0, len(pitches))
	for _, p := range pitches {
		names = append(names, pitch.NoteName(p))
	}
	return strings.Join(names, "-")
}

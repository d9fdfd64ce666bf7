package chord

import (
	"testing"

	"github.com/jsphweid/viano/model"
	"github.com/stretchr/testify/assert"
)

func notes(pitches ...int) []model.ActiveNote {
	var res []model.ActiveNote
	for _, p := range pitches {
		res = append(res, model.ActiveNote{Pitch: p})
	}
	return res
}

func TestPitchesAreSortedAndDistinct(t *testing.T) {
	assert.Equal(t, []int{43, 48, 55}, Pitches(notes(55, 48, 43, 48)))
	assert.Empty(t, Pitches(nil))
}

func TestCreateChordKey(t *testing.T) {
	cases := []struct {
		name    string
		pitches []int
		want    string
	}{
		{"empty", nil, ""},
		{"single", []int{60}, "C4"},
		{"c major", []int{55, 48, 52}, "C3-E3-G3"},
		{"doubled root", []int{48, 48, 60}, "C3-C4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CreateChordKey(notes(c.pitches...)))
		})
	}
}

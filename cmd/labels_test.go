package cmd

import (
	"strings"
	"testing"

	"github.com/jsphweid/viano/pitch"
	"github.com/stretchr/testify/assert"
)

func TestRenderLabels(t *testing.T) {
	format := `{{ .Chord }} {{ index .Labels "s" }} {{ index .Labels "t" }}`
	cases := []struct {
		name   string
		center int
		minor  bool
		octave int
		want   string
	}{
		{"home", 0, false, 0, "C C3 A3"},
		{"one fifth up", 1, false, 0, "G G3 E4"},
		{"minor", 0, true, 0, "Am A2 A3"},
		{"octave only moves the left hand", 0, false, 1, "C C4 A3"},
		{"center wraps", 13, false, 0, "G G3 E4"},
		{"octave is clamped", 0, false, 9, "C C5 A3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := renderLabels(pitch.Default(), format, c.center, c.minor, c.octave)
			assert.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestRenderLabelsDefaultFormat(t *testing.T) {
	out, err := renderLabels(pitch.Default(), defaultLabelsFormat, 0, false, 0)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "C (octave 0)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Q=C3"))
	assert.Contains(t, lines[2], "T=A3")
}

func TestRenderLabelsBadFormat(t *testing.T) {
	_, err := renderLabels(pitch.Default(), "{{ .Nope", 0, false, 0)
	assert.Error(t, err)
}

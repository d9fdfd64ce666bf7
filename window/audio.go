package window

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jsphweid/viano/synth"
)

// StartAudio plays the mixer through ebiten's audio context. oto cannot be
// used next to it, ebiten owns the device.
func StartAudio(m *synth.Mixer) (io.Closer, error) {
	ctx := audio.NewContext(m.SampleRate())
	p, err := ctx.NewPlayerF32(m)
	if err != nil {
		return nil, fmt.Errorf("cannot create audio player: %w", err)
	}
	p.Play()
	return p, nil
}

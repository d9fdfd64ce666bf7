package synth

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

const otoBufferSize = 40 * time.Millisecond

type otoOutput struct {
	player *oto.Player
}

// StartOto plays m on the default audio device until the returned closer is closed.
func StartOto(m *Mixer) (io.Closer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   m.SampleRate(),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	p := ctx.NewPlayer(m)
	p.Play()
	return &otoOutput{player: p}, nil
}

func (o *otoOutput) Close() error {
	o.player.Pause()
	if err := o.player.Err(); err != nil {
		return fmt.Errorf("oto player failed: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/jsphweid/viano/config"
	"github.com/jsphweid/viano/midi"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/synth"
	"github.com/jsphweid/viano/tracker"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// silentVoices hands out voices without making a sound.
type silentVoices struct {
	next atomic.Uint64
}

func (s *silentVoices) Play(p int) model.Voice {
	return model.Voice{ID: s.next.Add(1), Pitch: p, Gain: pitch.Gain(p)}
}

func (s *silentVoices) Stop(model.Voice) {}

// newBackend opens the voice backend named in c. The closer silences and
// releases the device.
func newBackend(c config.Config, logger *slog.Logger) (tracker.VoiceBackend, io.Closer, error) {
	switch c.Backend {
	case "synth":
		m := synth.NewMixer(c.SampleRate, c.Release)
		out, err := synth.StartOto(m)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("synth started", "sample_rate", c.SampleRate, "release", c.Release)
		return m, out, nil
	case "midi":
		port, err := midi.OpenPort(c.MidiOut, c.MidiChannel, logger)
		if err != nil {
			midi.CloseDriver()
			return nil, nil, err
		}
		logger.Info("midi output opened", "port", port.Name(), "channel", c.MidiChannel)
		return port, closerFunc(func() error {
			defer midi.CloseDriver()
			return port.Close()
		}), nil
	case "none":
		return &silentVoices{}, closerFunc(func() error { return nil }), nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", c.Backend)
}

package midi

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Out is a voice backend that sends notes to a MIDI output. Voices on the
// same pitch share one MIDI note, which is released with the last of them.
type Out struct {
	mu      sync.Mutex
	send    func(msg midi.Message) error
	channel uint8
	held    map[uint8]int
	next    uint64
	logger  *slog.Logger
}

func NewOut(send func(msg midi.Message) error, channel uint8, logger *slog.Logger) *Out {
	if logger == nil {
		logger = slog.Default()
	}
	return &Out{
		send:    send,
		channel: channel,
		held:    make(map[uint8]int),
		logger:  logger,
	}
}

func playable(p int) bool {
	return p >= 0 && p <= 127
}

func (o *Out) Play(p int) model.Voice {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.next++
	v := model.Voice{ID: o.next, Pitch: p, Gain: pitch.Gain(p)}
	if !playable(p) {
		o.logger.Debug("pitch outside MIDI range", "pitch", p)
		return v
	}
	key := uint8(p)
	if err := o.send(midi.NoteOn(o.channel, key, pitch.Velocity(p))); err != nil {
		o.logger.Error("could not send note on", "pitch", p, "error", err)
		return v
	}
	o.held[key]++
	return v
}

func (o *Out) Stop(v model.Voice) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !playable(v.Pitch) {
		return
	}
	key := uint8(v.Pitch)
	n, ok := o.held[key]
	if !ok {
		return
	}
	if n > 1 {
		o.held[key] = n - 1
		return
	}
	delete(o.held, key)
	if err := o.send(midi.NoteOff(o.channel, key)); err != nil {
		o.logger.Error("could not send note off", "pitch", v.Pitch, "error", err)
	}
}

// Silence releases every note still held on the output.
func (o *Out) Silence() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for key := range o.held {
		if err := o.send(midi.NoteOff(o.channel, key)); err != nil {
			o.logger.Error("could not send note off", "pitch", key, "error", err)
		}
	}
	o.held = make(map[uint8]int)
}

// Sounding returns how many MIDI notes are on.
func (o *Out) Sounding() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.held)
}

// Port is an opened MIDI output with a voice backend on top of it.
type Port struct {
	*Out
	port drivers.Out
}

func (p *Port) Name() string {
	return p.port.String()
}

func (p *Port) Close() error {
	p.Silence()
	if err := p.port.Close(); err != nil {
		return fmt.Errorf("closing MIDI output failed: %w", err)
	}
	return nil
}

// OpenPort opens the first output whose name starts with prefix, or the
// first output at all when prefix is empty.
func OpenPort(prefix string, channel uint8, logger *slog.Logger) (p *Port, e error) {
	// the drivers panic on some platforms instead of returning errors
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("opening MIDI output panicked: %v", r)
		}
	}()

	out, err := findPort(prefix)
	if err != nil {
		return nil, err
	}
	if err := out.Open(); err != nil {
		return nil, fmt.Errorf("opening MIDI output %q failed: %w", out.String(), err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("could not send to MIDI output %q: %w", out.String(), err)
	}
	return &Port{Out: NewOut(send, channel, logger), port: out}, nil
}

var ErrNoPort = errors.New("no MIDI output found")

func findPort(prefix string) (drivers.Out, error) {
	for _, out := range midi.GetOutPorts() {
		if prefix == "" || strings.HasPrefix(out.String(), prefix) {
			return out, nil
		}
	}
	if prefix == "" {
		return nil, ErrNoPort
	}
	return nil, fmt.Errorf("%w with prefix %q", ErrNoPort, prefix)
}

// Ports lists the names of all MIDI outputs.
func Ports() []string {
	var res []string
	for _, out := range midi.GetOutPorts() {
		res = append(res, out.String())
	}
	return res
}

func CloseDriver() {
	midi.CloseDriver()
}

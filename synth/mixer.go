package synth

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/viterin/vek/vek32"
)

const (
	attack = 5 * time.Millisecond
	master = 0.8
)

type voice struct {
	step      float64
	phase     float64
	gain      float64
	level     float64
	releasing bool
}

// Mixer is a small sine voice backend. It is pulled as an io.Reader by the
// audio output and renders interleaved stereo float32 little endian frames.
type Mixer struct {
	mu sync.Mutex

	rate        int
	attackStep  float64
	releaseStep float64
	voices      map[uint64]*voice
	next        uint64
	mix         []float32
	tmp         []float32
}

func NewMixer(sampleRate int, release time.Duration) *Mixer {
	m := &Mixer{
		rate:        sampleRate,
		attackStep:  perFrame(sampleRate, attack),
		releaseStep: perFrame(sampleRate, release),
		voices:      make(map[uint64]*voice),
	}
	return m
}

// perFrame is the envelope change per frame for a full ramp over d.
func perFrame(rate int, d time.Duration) float64 {
	frames := d.Seconds() * float64(rate)
	if frames < 1 {
		return 1
	}
	return 1 / frames
}

func (m *Mixer) SampleRate() int {
	return m.rate
}

func (m *Mixer) Play(p int) model.Voice {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	g := pitch.Gain(p)
	m.voices[m.next] = &voice{
		step: 2 * math.Pi * pitch.Frequency(p) / float64(m.rate),
		gain: g,
	}
	return model.Voice{ID: m.next, Pitch: p, Gain: g}
}

// Stop starts the release tail of v. The voice is dropped once it is silent.
func (m *Mixer) Stop(v model.Voice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if vc, ok := m.voices[v.ID]; ok {
		vc.releasing = true
	}
}

// Voices returns how many voices are still audible, release tails included.
func (m *Mixer) Voices() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Render mixes len(out) mono frames into out.
func (m *Mixer) Render(out []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(out)
	for i := range out {
		out[i] = 0
	}
	if cap(m.tmp) < n {
		m.tmp = make([]float32, n)
	}
	tmp := m.tmp[:n]
	for id, v := range m.voices {
		for i := range tmp {
			if v.releasing {
				v.level -= m.releaseStep
			} else if v.level < 1 {
				v.level = math.Min(1, v.level+m.attackStep)
			}
			if v.level <= 0 {
				v.level = 0
			}
			tmp[i] = float32(math.Sin(v.phase) * v.gain * v.level)
			v.phase = math.Mod(v.phase+v.step, 2*math.Pi)
		}
		vek32.Add_Inplace(out, tmp)
		if v.releasing && v.level <= 0 {
			delete(m.voices, id)
		}
	}
	vek32.MulNumber_Inplace(out, master)
	for i, s := range out {
		if s > 1 {
			out[i] = 1
		} else if s < -1 {
			out[i] = -1
		}
	}
}

// Read fills b with stereo float32 frames.
func (m *Mixer) Read(b []byte) (int, error) {
	frames := len(b) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(m.mix) < frames {
		m.mix = make([]float32, frames)
	}
	mix := m.mix[:frames]
	m.Render(mix)
	for i, s := range mix {
		bits := math.Float32bits(s)
		binary.LittleEndian.PutUint32(b[i*8:], bits)
		binary.LittleEndian.PutUint32(b[i*8+4:], bits)
	}
	return frames * 8, nil
}

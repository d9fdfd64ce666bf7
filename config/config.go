package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string        `yaml:"addr"`
	Backend     string        `yaml:"backend"`
	MidiOut     string        `yaml:"midi_out"`
	MidiChannel uint8         `yaml:"midi_channel"`
	Release     time.Duration `yaml:"release"`
	SampleRate  int           `yaml:"sample_rate"`

	// Bindings replaces the whole default key table when set: key -> [major, minor].
	Bindings map[string][2]int `yaml:"bindings"`
}

var Backends = []string{"synth", "midi", "none"}

func Default() Config {
	return Config{
		Addr:        constants.DefaultAddr,
		Backend:     constants.DefaultBackend,
		MidiChannel: constants.DefaultMidiChannel,
		Release:     constants.DefaultRelease,
		SampleRate:  constants.DefaultSampleRate,
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	c.Addr = constants.GetAddr(c.Addr)
	c.Backend = constants.GetBackend(c.Backend)
	c.MidiOut = constants.GetMidiOut(c.MidiOut)
	return c, c.Validate()
}

func (c Config) Validate() error {
	known := false
	for _, b := range Backends {
		known = known || b == c.Backend
	}
	if !known {
		return fmt.Errorf("unknown backend %q, want one of %v", c.Backend, Backends)
	}
	if c.MidiChannel > 15 {
		return fmt.Errorf("midi channel %d out of range 0..15", c.MidiChannel)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.Release < 0 {
		return fmt.Errorf("release must not be negative, got %v", c.Release)
	}
	return nil
}

// Keymap builds the binding table, the default one unless Bindings is set.
func (c Config) Keymap() (*keymap.Map, error) {
	if len(c.Bindings) == 0 {
		return keymap.Default(), nil
	}
	bindings := make(map[model.Key]model.Binding, len(c.Bindings))
	for k, v := range c.Bindings {
		bindings[model.Key(k)] = model.Binding{Major: v[0], Minor: v[1]}
	}
	m, err := keymap.New(bindings)
	if err != nil {
		return nil, fmt.Errorf("invalid bindings: %w", err)
	}
	return m, nil
}

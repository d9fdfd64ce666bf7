package constants

import (
	"os"
	"time"
)

// Environment variables override values from the config file; flags override both.
func GetConfigPath() string {
	return os.Getenv("VIANO_CONFIG")
}

func GetAddr(fallback string) string {
	return getenv("VIANO_ADDR", fallback)
}

func GetBackend(fallback string) string {
	return getenv("VIANO_BACKEND", fallback)
}

func GetMidiOut(fallback string) string {
	return getenv("VIANO_MIDI_OUT", fallback)
}

func getenv(name string, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

const NumKeyCenters = 12

// semitones stepped per position on the circle of fifths
const FifthSemitones = 7

const (
	MinOctave = -2
	MaxOctave = 2
)

// loudness curve: MaxGain at LowestGainPitch falling to MinGain at HighestGainPitch
const (
	LowestGainPitch  = 45
	HighestGainPitch = 91
	MinGain          = 0.1
	MaxGain          = 0.3
)

// displayed piano: C2..B6
const (
	LowestPianoPitch  = 36
	HighestPianoPitch = 95
)

const (
	DefaultAddr        = ":8080"
	DefaultBackend     = "synth"
	DefaultSampleRate  = 44100
	DefaultRelease     = 6 * time.Second
	DefaultMidiChannel = 0

	// per session key event budget for the HTTP surface
	EventsPerSecond = 60
	EventBurst      = 120

	StatusDebounce = 750 * time.Millisecond
)

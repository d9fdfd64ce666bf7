//go:build !cgo

package cmd

// Without cgo there is no MIDI driver. Ports lists nothing and the midi
// backend fails with midi.ErrNoPort.

package cmd

import (
	"io"

	"github.com/denizsincar29/goerror"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/render"
	"github.com/jsphweid/viano/synth"
	"github.com/jsphweid/viano/tracker"
	"github.com/jsphweid/viano/window"
	"github.com/spf13/cobra"
)

func init() {
	addBackendFlags(windowCmd)
	rootCmd.AddCommand(windowCmd)
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Plays the instrument in a native window",
	Long:  `Plays the instrument in a native window, reading the keyboard directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		openWindow(cmd)
	},
}

func openWindow(cmd *cobra.Command) {
	logger, c := setup()
	e := goerror.NewError(logger)
	applyBackendFlags(cmd, &c)
	e.Must(c.Validate(), "Invalid configuration")

	keys, err := c.Keymap()
	e.Must(err, "Failed to build key map")

	var voices tracker.VoiceBackend
	var closer io.Closer
	if c.Backend == "synth" {
		// ebiten owns the audio device in this mode, so the mixer plays through it
		m := synth.NewMixer(c.SampleRate, c.Release)
		closer, err = window.StartAudio(m)
		voices = m
	} else {
		voices, closer, err = newBackend(c, logger)
	}
	e.Must(err, "Failed to open voice backend")
	defer closer.Close()

	mapper := pitch.NewMapper(keys)
	state := render.NewState(mapper)
	var renderer tracker.Renderer = state
	if debug {
		renderer = render.Logged{Next: state, Logger: logger}
	}
	t := tracker.New(mapper, voices, renderer, logger)
	t.Refresh()
	defer t.Release()

	e.Must(window.Run(window.New(t, state)), "Window failed")
}

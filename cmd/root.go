package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/denizsincar29/goerror"
	"github.com/jsphweid/viano/config"
	"github.com/jsphweid/viano/constants"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "viano",
	Short: "A computer keyboard piano on the circle of fifths",
	Long: `viano turns the computer keyboard into a chord instrument. The left hand plays
the chords around the current key center, the right hand plays the scale.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $VIANO_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every render call")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: debug,
		Level:     level,
	}))
}

// setup builds the logger and the config every command starts from. Setup
// errors are fatal.
func setup() (*slog.Logger, config.Config) {
	logger := newLogger(os.Stderr)
	e := goerror.NewError(logger)
	path := configPath
	if path == "" {
		path = constants.GetConfigPath()
	}
	c, err := config.Load(path)
	e.Must(err, "Failed to load config")
	return logger, c
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/denizsincar29/goerror"
	"github.com/jsphweid/viano/circle"
	"github.com/jsphweid/viano/constants"
	"github.com/jsphweid/viano/keymap"
	"github.com/jsphweid/viano/model"
	"github.com/jsphweid/viano/pitch"
	"github.com/jsphweid/viano/util"
	"github.com/spf13/cobra"
)

const defaultLabelsFormat = `{{ .Chord }} (octave {{ .Octave }})
{{ range .Rows }}{{ range . }}{{ .Key | upper }}={{ .Label | printf "%-4s" }} {{ end }}
{{ end }}`

var (
	labelCenter int
	labelMinor  bool
	labelOctave int
	labelFormat string
)

func init() {
	labelsCmd.Flags().IntVar(&labelCenter, "center", 0, "key center index on the circle of fifths")
	labelsCmd.Flags().BoolVar(&labelMinor, "minor", false, "use the minor bindings")
	labelsCmd.Flags().IntVar(&labelOctave, "octave", 0, "left hand octave offset")
	labelsCmd.Flags().StringVar(&labelFormat, "format", defaultLabelsFormat, "text/template for the output (sprig functions available)")
	rootCmd.AddCommand(labelsCmd)
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Prints the note name under every overlay key",
	Long:  `Prints the note name under every overlay key for a key center, quality and octave.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, c := setup()
		e := goerror.NewError(logger)
		keys, err := c.Keymap()
		e.Must(err, "Failed to build key map")
		out, err := renderLabels(pitch.NewMapper(keys), labelFormat, labelCenter, labelMinor, labelOctave)
		e.Must(err, "Failed to render labels")
		fmt.Fprint(os.Stdout, out)
	},
}

type labelCell struct {
	Key   string
	Label string
}

type labelsData struct {
	Center int
	Chord  string
	Minor  bool
	Octave int
	Labels map[string]string
	Rows   [][]labelCell
}

func renderLabels(m *pitch.Mapper, format string, center int, minor bool, octave int) (string, error) {
	center = circle.Wrap(center)
	octave = util.Clamp(octave, constants.MinOctave, constants.MaxOctave)
	labels := m.Labels(center, minor, octave)
	data := labelsData{
		Center: center,
		Chord:  circle.ChordName(center, minor),
		Minor:  minor,
		Octave: octave,
		Labels: make(map[string]string, len(labels)),
	}
	for k, v := range labels {
		data.Labels[string(k)] = v
	}
	for _, keys := range [][]model.Key{keymap.LeftOverlay, keymap.RightOverlay} {
		var row []labelCell
		for _, k := range keys {
			row = append(row, labelCell{Key: string(k), Label: labels[k]})
		}
		data.Rows = append(data.Rows, row)
	}

	tmpl, err := template.New("labels").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return "", fmt.Errorf("parsing format: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing format: %w", err)
	}
	return b.String(), nil
}

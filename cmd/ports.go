package cmd

import (
	"fmt"

	"github.com/jsphweid/viano/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI output ports",
	Long:  `Lists MIDI output ports. Any prefix of a name can be passed to --midi-out.`,
	Run: func(cmd *cobra.Command, args []string) {
		defer midi.CloseDriver()
		ports := midi.Ports()
		if len(ports) == 0 {
			fmt.Println("no MIDI outputs")
			return
		}
		for i, name := range ports {
			fmt.Printf("%d: %s\n", i, name)
		}
	},
}

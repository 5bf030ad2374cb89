package cmd

import (
	"fmt"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/leandrodaf/synesthesia/sdk/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lists MIDI input devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		client, err := midi.NewMIDIClient(contracts.WithLogger(log))
		if err != nil {
			return err
		}
		defer client.Stop()

		devices, err := client.ListDevices()
		if err != nil {
			return err
		}
		for _, d := range devices {
			line := fmt.Sprintf("%d: %s", d.ID, d.Name)
			if d.Manufacturer != "" {
				line += fmt.Sprintf(" (%s)", d.Manufacturer)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

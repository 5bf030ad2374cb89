package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leandrodaf/synesthesia/internal/display/terminal"
	"github.com/leandrodaf/synesthesia/sdk/color"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(colorCmd)
}

var colorCmd = &cobra.Command{
	Use:   "color <note>...",
	Short: "Prints the color of a chord",
	Long: `Prints the color of a chord without a MIDI device. Notes are MIDI
note numbers (60) or names with an optional octave (C, Eb, F#4).`,
	Example: "  synesthesia color 60 64 67\n  synesthesia color C E G",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chord := make(contracts.Chord, 0, len(args))
		for _, arg := range args {
			pc, err := parseNote(arg)
			if err != nil {
				return err
			}
			chord = append(chord, pc)
		}

		hsl, err := color.DefaultPalette().ChordColor(chord)
		if err != nil {
			return err
		}
		return terminal.New(cmd.OutOrStdout(), terminal.DefaultWidth).
			Show(contracts.Paint{Chord: chord, Color: hsl})
	},
}

var noteOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// parseNote accepts a MIDI note number or a note name with optional
// accidentals and octave.
func parseNote(s string) (contracts.PitchClass, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 127 {
			return 0, fmt.Errorf("note %d out of range 0-127", n)
		}
		return contracts.PitchClassOf(byte(n)), nil
	}

	name := strings.ToUpper(s)
	if name == "" {
		return 0, fmt.Errorf("empty note")
	}
	offset, ok := noteOffsets[name[0]]
	if !ok {
		return 0, fmt.Errorf("unknown note %q", s)
	}
	rest := s[1:]
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			offset++
		} else {
			offset--
		}
		rest = rest[1:]
	}
	if rest != "" {
		if _, err := strconv.Atoi(rest); err != nil {
			return 0, fmt.Errorf("unknown note %q", s)
		}
	}
	return contracts.PitchClass(((offset % contracts.NumPitchClasses) + contracts.NumPitchClasses) % contracts.NumPitchClasses), nil
}

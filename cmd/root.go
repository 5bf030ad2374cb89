package cmd

import (
	"fmt"
	"strings"

	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "synesthesia",
	Short: "Turns MIDI chords into colors",
	Long: `Synthesizer synesthesia: listens to a MIDI keyboard, groups notes
played together into chords and paints each chord as one color, with C as red
and every semitone a twelfth of the way around the color wheel.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func parseLogLevel(s string) (contracts.LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return contracts.DebugLevel, nil
	case "info", "":
		return contracts.InfoLevel, nil
	case "warn", "warning":
		return contracts.WarnLevel, nil
	case "error":
		return contracts.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func newLogger() (contracts.Logger, error) {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return nil, err
	}
	l := logger.NewZapLogger()
	l.SetLevel(level)
	if logFile != "" {
		l.SetDestination(contracts.FileLog, logFile)
	}
	return l, nil
}

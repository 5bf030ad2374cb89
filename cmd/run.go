package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leandrodaf/synesthesia/internal/display/httpsink"
	"github.com/leandrodaf/synesthesia/internal/display/serialsink"
	"github.com/leandrodaf/synesthesia/internal/display/terminal"
	"github.com/leandrodaf/synesthesia/sdk/chord"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/leandrodaf/synesthesia/sdk/midi"
	"github.com/leandrodaf/synesthesia/sdk/synesthesia"
	"github.com/spf13/cobra"
)

const eventBufferSize = 100

var (
	deviceID   int
	chordDelay time.Duration
	httpAddr   string
	serialPort string
	baudRate   int
	noTerminal bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.IntVarP(&deviceID, "device", "d", 0, "MIDI input device ID, as listed by the devices command")
	f.DurationVar(&chordDelay, "chord-delay", contracts.DefaultChordDelay, "longest gap between notes of one chord")
	f.StringVar(&httpAddr, "http", "", "serve the color page on this address, e.g. :8080")
	f.StringVar(&serialPort, "serial", "", "send colors to an LED controller on this serial device")
	f.IntVar(&baudRate, "baud", serialsink.DefaultBaudRate, "serial baud rate")
	f.BoolVar(&noTerminal, "no-terminal", false, "do not paint colors in the terminal")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Listens to a MIDI device and paints chords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		sinks, err := buildSinks(cmd, log)
		if err != nil {
			return err
		}
		painter := synesthesia.NewPainter(
			contracts.WithPainterLogger(log),
			contracts.WithSinks(sinks...),
		)
		defer func() {
			if err := painter.Close(); err != nil {
				log.Warn("Closing display sinks", log.Field().Error("error", err))
			}
		}()

		client, events, err := midi.OpenDevice(deviceID, eventBufferSize,
			contracts.WithLogger(log),
			contracts.WithMIDIEventFilter(contracts.MIDIEventFilter{
				Commands: []contracts.MIDICommand{contracts.NoteOn},
			}),
		)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Stop(); err != nil {
				log.Warn("Stopping MIDI capture", log.Field().Error("error", err))
			}
		}()

		agg := chord.NewAggregator(
			contracts.WithAggregatorLogger(log),
			contracts.WithChordDelay(chordDelay),
		)
		painter.Attach(agg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("Listening for chords", log.Field().Int("deviceID", deviceID), log.Field().Duration("chordDelay", agg.Delay()))
		if err := agg.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func buildSinks(cmd *cobra.Command, log contracts.Logger) ([]contracts.DisplaySink, error) {
	var sinks []contracts.DisplaySink
	if !noTerminal {
		sinks = append(sinks, terminal.New(cmd.OutOrStdout(), terminal.DefaultWidth))
	}
	if httpAddr != "" {
		s := httpsink.New(httpAddr, log)
		s.Start()
		sinks = append(sinks, s)
	}
	if serialPort != "" {
		s, err := serialsink.Open(serialPort, baudRate, log)
		if err != nil {
			for _, open := range sinks {
				_ = open.Close()
			}
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}

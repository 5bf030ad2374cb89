package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/leandrodaf/synesthesia/internal/display/terminal"
	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/chord"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/leandrodaf/synesthesia/sdk/midi"
	"github.com/leandrodaf/synesthesia/sdk/synesthesia"
)

func main() {
	log := logger.NewZapLogger()

	client, events, err := midi.OpenDevice(0, 100,
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to open MIDI device", log.Field().Error("error", err))
		return
	}
	defer client.Stop()

	agg := chord.NewAggregator(contracts.WithAggregatorLogger(log))
	painter := synesthesia.NewPainter(
		contracts.WithPainterLogger(log),
		contracts.WithSinks(terminal.New(os.Stdout, terminal.DefaultWidth)),
	)
	defer painter.Close()
	painter.Attach(agg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Play something... Press Ctrl+C to exit.")
	_ = agg.Run(ctx, events)
}

// Package synesthesia turns completed chords into colors and hands them to
// display sinks.
package synesthesia

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/chord"
	"github.com/leandrodaf/synesthesia/sdk/color"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"go.uber.org/multierr"
)

// Painter maps each chord through a palette, averages the colors and shows
// the result on every sink.
type Painter struct {
	logger  contracts.Logger
	palette color.Palette
	sinks   []contracts.DisplaySink
	now     func() time.Time
}

// NewPainter creates a painter using color.DefaultPalette unless overridden.
func NewPainter(opts ...contracts.PainterOption) *Painter {
	options := contracts.PainterOptions{
		Saturation: color.DefaultSaturation,
		Lightness:  color.DefaultLightness,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}

	return &Painter{
		logger:  options.Logger,
		palette: color.Palette{Saturation: options.Saturation, Lightness: options.Lightness},
		sinks:   options.Sinks,
		now:     time.Now,
	}
}

// Attach registers the painter as the aggregator's chord listener.
func (p *Painter) Attach(agg *chord.Aggregator) {
	agg.Register(p.Paint)
}

// Paint shows the averaged color of c on every sink. Sink failures are
// logged and do not stop the remaining sinks.
func (p *Painter) Paint(c contracts.Chord) {
	hsl, err := p.palette.ChordColor(c)
	if err != nil {
		p.logger.Warn("Cannot paint chord", p.logger.Field().Error("error", err))
		return
	}

	paint := contracts.Paint{
		ID:    uuid.NewString(),
		Chord: c,
		Color: hsl,
		At:    p.now(),
	}
	p.logger.Info("Chord painted",
		p.logger.Field().String("id", paint.ID),
		p.logger.Field().String("notes", strings.Join(c.Names(), " ")),
		p.logger.Field().Float64("hue", hsl.H),
		p.logger.Field().Float64("saturation", hsl.S),
		p.logger.Field().Float64("lightness", hsl.L))

	for _, sink := range p.sinks {
		if err := sink.Show(paint); err != nil {
			p.logger.Error("Display sink failed", p.logger.Field().Error("error", err))
		}
	}
}

// Close closes every sink and returns the combined errors.
func (p *Painter) Close() error {
	var err error
	for _, sink := range p.sinks {
		err = multierr.Append(err, sink.Close())
	}
	return err
}

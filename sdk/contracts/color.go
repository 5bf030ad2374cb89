package contracts

import "time"

// HSL is a hue/saturation/lightness triple. S and L are in [0,1]. H is a
// fraction of a turn in [0,1) for inputs to the averager, but the averager
// returns H as an integer number of degrees in [0,360).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGB is a normalized red/green/blue triple, each component in [0,1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Paint is one averaged color produced for one completed chord.
type Paint struct {
	ID    string    `json:"id"`
	Chord Chord     `json:"chord"`
	Color HSL       `json:"color"` // H in degrees.
	At    time.Time `json:"at"`
}

// DisplaySink receives paints. Show is fire-and-forget from the painter's
// point of view: errors are logged and never retried.
type DisplaySink interface {
	Show(p Paint) error
	Close() error
}

// PainterOptions configures a painter.
type PainterOptions struct {
	Logger     Logger
	Saturation float64
	Lightness  float64
	Sinks      []DisplaySink
}

// PainterOption is a function that modifies PainterOptions.
type PainterOption func(*PainterOptions)

// WithPainterLogger sets the logger of the painter.
func WithPainterLogger(l Logger) PainterOption {
	return func(opts *PainterOptions) {
		opts.Logger = l
	}
}

// WithSinks appends display sinks to the painter.
func WithSinks(sinks ...DisplaySink) PainterOption {
	return func(opts *PainterOptions) {
		opts.Sinks = append(opts.Sinks, sinks...)
	}
}

// WithPalette sets the saturation and lightness given to every pitch class.
func WithPalette(saturation, lightness float64) PainterOption {
	return func(opts *PainterOptions) {
		opts.Saturation = saturation
		opts.Lightness = lightness
	}
}

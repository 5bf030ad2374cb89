// Package color blends the colors of the notes of a chord into one.
//
// Saturation and lightness are averaged directly in HSL, which keeps the
// result from turning muddy the way a pure RGB mean does. The hue is taken
// from the RGB mean instead, which keeps it faithful to the mix without the
// wrap-around problems of averaging angles.
package color

import (
	"errors"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"golang.org/x/exp/constraints"
)

// ErrEmptyInput is returned by Average when there is nothing to average.
var ErrEmptyInput = errors.New("color: average of zero colors")

// Average reduces colors to one representative color. Input hues are
// fractions of a turn; the returned hue is in whole degrees [0,360).
func Average(colors []contracts.HSL) (contracts.HSL, error) {
	if len(colors) == 0 {
		return contracts.HSL{}, ErrEmptyInput
	}

	reds := make([]float64, len(colors))
	greens := make([]float64, len(colors))
	blues := make([]float64, len(colors))
	sats := make([]float64, len(colors))
	lights := make([]float64, len(colors))
	for i, c := range colors {
		rgb := HSLToRGB(c)
		reds[i], greens[i], blues[i] = rgb.R, rgb.G, rgb.B
		sats[i], lights[i] = c.S, c.L
	}

	rgb := contracts.RGB{R: mean(reds), G: mean(greens), B: mean(blues)}
	return contracts.HSL{
		H: RGBToHue(rgb),
		S: mean(sats),
		L: mean(lights),
	}, nil
}

// mean divides every value by the count before summing.
func mean[F constraints.Float](values []F) F {
	n := F(len(values))
	var sum F
	for _, v := range values {
		sum += v / n
	}
	return sum
}

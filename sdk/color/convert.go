package color

import (
	"fmt"
	"math"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// HSLToRGB converts a color whose hue is a fraction of a turn into
// normalized RGB.
func HSLToRGB(c contracts.HSL) contracts.RGB {
	var q float64
	if c.L < 0.5 {
		q = float64(c.L * (1 + c.S))
	} else {
		q = c.L + c.S - float64(c.L*c.S)
	}
	p := 2*c.L - q

	return contracts.RGB{
		R: hueToChannel(p, q, c.H+1.0/3),
		G: hueToChannel(p, q, c.H),
		B: hueToChannel(p, q, c.H-1.0/3),
	}
}

// hueToChannel evaluates one channel of the piecewise HSL curve. The explicit
// float64 conversions round each product so no multiply-add gets fused.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + float64((q-p)*6*t)
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + float64((q-p)*(2.0/3-t)*6)
	default:
		return p
	}
}

// RGBToHue extracts the hue of a normalized RGB color in whole degrees,
// [0,360). Achromatic colors have hue 0. Values are rounded half away from
// zero and a result of 360 wraps to 0.
func RGBToHue(c contracts.RGB) float64 {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	diff := max - min
	if diff == 0 {
		return 0
	}

	var sixths float64
	switch max {
	case c.R:
		sixths = (c.G - c.B) / diff
		if c.G < c.B {
			sixths += 6
		}
	case c.G:
		sixths = (c.B-c.R)/diff + 2
	default:
		sixths = (c.R-c.G)/diff + 4
	}

	deg := math.Round(360 * sixths / 6)
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// DisplayRGB converts an averaged color, whose hue is in degrees, to RGB.
func DisplayRGB(c contracts.HSL) contracts.RGB {
	return HSLToRGB(contracts.HSL{H: c.H / 360, S: c.S, L: c.L})
}

// Hex formats an RGB color as #rrggbb.
func Hex(c contracts.RGB) string {
	r, g, b := Bytes(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Bytes scales an RGB color to 8-bit channels.
func Bytes(c contracts.RGB) (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}

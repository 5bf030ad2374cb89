package color

import "github.com/leandrodaf/synesthesia/sdk/contracts"

// Default palette values: fully saturated, mid lightness.
const (
	DefaultSaturation = 1.0
	DefaultLightness  = 0.5
)

// Palette maps pitch classes onto the color wheel, C at red and each
// semitone a twelfth of a turn further.
type Palette struct {
	Saturation float64
	Lightness  float64
}

// DefaultPalette returns the palette with DefaultSaturation and DefaultLightness.
func DefaultPalette() Palette {
	return Palette{Saturation: DefaultSaturation, Lightness: DefaultLightness}
}

// Color returns the color of one pitch class, hue in turns.
func (p Palette) Color(pc contracts.PitchClass) contracts.HSL {
	return contracts.HSL{
		H: float64(pc%contracts.NumPitchClasses) / contracts.NumPitchClasses,
		S: p.Saturation,
		L: p.Lightness,
	}
}

// Colors returns the colors of every note of the chord, in chord order.
func (p Palette) Colors(chord contracts.Chord) []contracts.HSL {
	colors := make([]contracts.HSL, len(chord))
	for i, pc := range chord {
		colors[i] = p.Color(pc)
	}
	return colors
}

// ChordColor returns the averaged color of a chord.
func (p Palette) ChordColor(chord contracts.Chord) (contracts.HSL, error) {
	return Average(p.Colors(chord))
}

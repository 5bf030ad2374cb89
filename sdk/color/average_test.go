package color

import (
	"fmt"
	"math"
	"testing"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hsl(h, s, l float64) contracts.HSL {
	return contracts.HSL{H: h, S: s, L: l}
}

func TestAverageEmptyInput(t *testing.T) {
	_, err := Average(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Average([]contracts.HSL{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAverageSingleColorKeepsSaturationAndLightness(t *testing.T) {
	cases := []contracts.HSL{
		hsl(0, 1, 0.5),
		hsl(0.1, 0.8, 0.3),
		hsl(0.45, 0.6, 0.7),
		hsl(0.75, 0.25, 0.5),
		hsl(0.9, 1, 0.2),
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c), func(t *testing.T) {
			got, err := Average([]contracts.HSL{c})
			require.NoError(t, err)

			assert := assert.New(t)
			assert.Equal(c.S, got.S)
			assert.Equal(c.L, got.L)

			want := c.H * 360
			diff := math.Abs(got.H - want)
			diff = math.Min(diff, 360-diff)
			assert.LessOrEqual(diff, 1.0, "hue %v for input turn %v", got.H, c.H)
		})
	}
}

func TestAveragePitchClassesLandOnWholeDegrees(t *testing.T) {
	p := DefaultPalette()
	for pc := contracts.PitchClass(0); pc < contracts.NumPitchClasses; pc++ {
		got, err := Average([]contracts.HSL{p.Color(pc)})
		require.NoError(t, err)
		assert.Equal(t, float64(pc)*30, got.H, "pitch class %v", pc)
	}
}

func TestAverageRedAndCyan(t *testing.T) {
	got, err := Average([]contracts.HSL{hsl(0, 1, 0.5), hsl(0.5, 1, 0.5)})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(1.0, got.S)
	assert.Equal(0.5, got.L)
	// The RGB mean is grey apart from a 1e-16 residue left on green by the
	// cyan conversion, and that residue decides the hue.
	assert.Equal(300.0, got.H)
}

func TestAverageMajorTriads(t *testing.T) {
	p := DefaultPalette()
	cases := []struct {
		chord contracts.Chord
		hue   float64
	}{
		{contracts.Chord{0, 4}, 60},
		{contracts.Chord{0, 4, 7}, 120},
		// C twice pulls the mean to (0.5, 0.375, 0.25): red leads and the
		// green-blue gap over the 0.25 spread is half a sixth, so 30.
		{contracts.Chord{0, 4, 7, 0}, 30},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.chord.Names()), func(t *testing.T) {
			got, err := p.ChordColor(c.chord)
			require.NoError(t, err)
			assert.Equal(t, c.hue, got.H)
			assert.Equal(t, 1.0, got.S)
			assert.Equal(t, 0.5, got.L)
		})
	}
}

func TestAverageAchromaticHasHueZero(t *testing.T) {
	colors := []contracts.HSL{hsl(0.3, 0, 0.7), hsl(0.9, 0, 0.2)}
	got, err := Average(colors)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(0.0, got.H)
	assert.Equal(0.0, got.S)
	assert.InDelta(0.45, got.L, 1e-12)
}

func TestAverageIsOrderInsensitive(t *testing.T) {
	pairs := [][2]contracts.HSL{
		{hsl(0, 1, 0.5), hsl(0.5, 1, 0.5)},
		{hsl(0.1, 0.7, 0.4), hsl(0.8, 0.3, 0.6)},
		{hsl(0.33, 1, 0.2), hsl(0.66, 0.5, 0.9)},
		{hsl(0.95, 0.2, 0.5), hsl(0.05, 0.9, 0.5)},
	}
	for _, pair := range pairs {
		ab, err := Average([]contracts.HSL{pair[0], pair[1]})
		require.NoError(t, err)
		ba, err := Average([]contracts.HSL{pair[1], pair[0]})
		require.NoError(t, err)

		assert.Equal(t, ab.H, ba.H)
		assert.InDelta(t, ab.S, ba.S, 1e-12)
		assert.InDelta(t, ab.L, ba.L, 1e-12)
	}
}

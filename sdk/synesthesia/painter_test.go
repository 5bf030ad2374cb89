package synesthesia

import (
	"errors"
	"testing"
	"time"

	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/chord"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type memorySink struct {
	paints   []contracts.Paint
	showErr  error
	closeErr error
	closed   bool
}

func (s *memorySink) Show(p contracts.Paint) error {
	s.paints = append(s.paints, p)
	return s.showErr
}

func (s *memorySink) Close() error {
	s.closed = true
	return s.closeErr
}

func TestPaintAveragesChord(t *testing.T) {
	sink := &memorySink{}
	p := NewPainter(contracts.WithPainterLogger(logger.NewNopLogger()), contracts.WithSinks(sink))
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return at }

	p.Paint(contracts.Chord{0, 4, 7})

	require.Len(t, sink.paints, 1)
	paint := sink.paints[0]
	assert := assert.New(t)
	assert.NotEmpty(paint.ID)
	assert.Equal(at, paint.At)
	assert.Equal(contracts.Chord{0, 4, 7}, paint.Chord)
	assert.Equal(contracts.HSL{H: 120, S: 1, L: 0.5}, paint.Color)
}

func TestPaintUsesPalette(t *testing.T) {
	sink := &memorySink{}
	p := NewPainter(
		contracts.WithPainterLogger(logger.NewNopLogger()),
		contracts.WithPalette(0.5, 0.25),
		contracts.WithSinks(sink),
	)

	p.Paint(contracts.Chord{3})

	require.Len(t, sink.paints, 1)
	assert.Equal(t, contracts.HSL{H: 90, S: 0.5, L: 0.25}, sink.paints[0].Color)
}

func TestPaintEmptyChordIsSkipped(t *testing.T) {
	sink := &memorySink{}
	p := NewPainter(contracts.WithPainterLogger(logger.NewNopLogger()), contracts.WithSinks(sink))

	p.Paint(nil)
	assert.Empty(t, sink.paints)
}

func TestSinkErrorsDoNotStopOtherSinks(t *testing.T) {
	broken := &memorySink{showErr: errors.New("unplugged"), closeErr: errors.New("close a")}
	healthy := &memorySink{closeErr: errors.New("close b")}
	p := NewPainter(contracts.WithPainterLogger(logger.NewNopLogger()), contracts.WithSinks(broken, healthy))

	p.Paint(contracts.Chord{9})
	assert.Len(t, healthy.paints, 1)

	err := p.Close()
	assert.Len(t, multierr.Errors(err), 2)
	assert.True(t, broken.closed)
	assert.True(t, healthy.closed)
}

func TestAttachReceivesAggregatedChords(t *testing.T) {
	sink := &memorySink{}
	p := NewPainter(contracts.WithPainterLogger(logger.NewNopLogger()), contracts.WithSinks(sink))

	var fire func()
	agg := chord.NewAggregator(
		contracts.WithAggregatorLogger(logger.NewNopLogger()),
		contracts.WithDebouncer(func(f func()) { fire = f }),
	)
	p.Attach(agg)

	agg.HandleRawEvent(0x90, 60, 100)
	agg.HandleRawEvent(0x90, 76, 100)
	require.NotNil(t, fire)
	fire()

	require.Len(t, sink.paints, 1)
	assert.Equal(t, contracts.Chord{0, 4}, sink.paints[0].Chord)
	assert.Equal(t, 60.0, sink.paints[0].Color.H)
}

// Package chord groups near-simultaneous key presses into chords.
//
// An Aggregator collects the pitch class of every Note On it sees. Each new
// note restarts a debounce window; when the window elapses without another
// note the collected chord is handed to the registered listener and the
// buffer starts over. A chord is therefore closed by a gap in playing, never
// by a note count.
package chord

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// Aggregator is a debounced chord collector. The zero value is not usable;
// construct one with NewAggregator.
type Aggregator struct {
	logger   contracts.Logger
	delay    time.Duration
	debounce contracts.Debouncer

	mu    sync.Mutex // guards chord and gen
	chord contracts.Chord
	gen   uint64 // bumped on every accepted note; a flush only runs for the latest one

	listenerMu sync.Mutex // held while the listener runs so Register never races a flush
	listener   contracts.ChordListener
}

// NewAggregator creates an aggregator with contracts.DefaultChordDelay and a
// timer-backed debouncer unless overridden by opts.
func NewAggregator(opts ...contracts.AggregatorOption) *Aggregator {
	options := contracts.AggregatorOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.ChordDelay <= 0 {
		options.ChordDelay = contracts.DefaultChordDelay
	}
	if options.Debouncer == nil {
		options.Debouncer = debounce.New(options.ChordDelay)
	}

	return &Aggregator{
		logger:   options.Logger,
		delay:    options.ChordDelay,
		debounce: options.Debouncer,
	}
}

// Delay returns the debounce window.
func (a *Aggregator) Delay() time.Duration {
	return a.delay
}

// Register installs the listener that receives completed chords, replacing
// any previous one. Once Register returns the previous listener is not
// called again. The listener must not call Register itself.
func (a *Aggregator) Register(listener contracts.ChordListener) {
	a.listenerMu.Lock()
	defer a.listenerMu.Unlock()
	a.listener = listener
}

// Chords registers a listener that forwards every chord to the returned
// channel. When the channel buffer is full the chord is dropped with a
// warning. The channel is never closed.
func (a *Aggregator) Chords(buffer int) <-chan contracts.Chord {
	ch := make(chan contracts.Chord, buffer)
	a.Register(func(c contracts.Chord) {
		select {
		case ch <- c:
		default:
			a.logger.Warn("Chord buffer full; dropping chord",
				a.logger.Field().String("notes", strings.Join(c.Names(), " ")))
		}
	})
	return ch
}

// HandleRawEvent feeds one MIDI message to the aggregator. Only status 0x90
// counts; every other status is ignored, velocity included.
func (a *Aggregator) HandleRawEvent(status, note, velocity byte) {
	if status != contracts.StatusNoteOn {
		return
	}
	pc := contracts.PitchClassOf(note)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.chord = append(a.chord, pc)
	a.gen++
	gen := a.gen
	a.debounce(func() { a.flush(gen) })

	a.logger.Debug("Note added to chord",
		a.logger.Field().Uint8("note", note),
		a.logger.Field().String("pitchClass", pc.String()),
		a.logger.Field().Int("pending", len(a.chord)))
}

// HandleRawMessage is HandleRawEvent for undecoded bytes. Messages shorter
// than three bytes are ignored.
func (a *Aggregator) HandleRawMessage(msg []byte) {
	if len(msg) < 3 {
		return
	}
	a.HandleRawEvent(msg[0], msg[1], msg[2])
}

// Handle feeds a transport event to the aggregator.
func (a *Aggregator) Handle(event contracts.MIDI) {
	a.HandleRawEvent(event.Status, event.Note, event.Velocity)
}

// Run consumes events until ctx is done or events is closed. It returns
// ctx.Err() in the first case and nil in the second.
func (a *Aggregator) Run(ctx context.Context, events <-chan contracts.MIDI) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			a.Handle(event)
		}
	}
}

func (a *Aggregator) flush(gen uint64) {
	a.mu.Lock()
	if gen != a.gen || len(a.chord) == 0 {
		a.mu.Unlock()
		return
	}
	chord := a.chord
	a.chord = nil
	a.mu.Unlock()

	a.listenerMu.Lock()
	defer a.listenerMu.Unlock()
	if a.listener == nil {
		a.logger.Debug("Chord completed with no listener registered",
			a.logger.Field().Int("notes", len(chord)))
		return
	}
	a.listener(chord)
}

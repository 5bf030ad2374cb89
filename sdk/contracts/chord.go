package contracts

import (
	"encoding/json"
	"time"
)

// StatusNoteOn is the only status byte that contributes to a chord: Note On
// on the first channel. Every other status byte is discarded.
const StatusNoteOn byte = 0x90

// DefaultChordDelay is the longest gap between two key presses that still
// joins them into the same chord.
const DefaultChordDelay = 50 * time.Millisecond

// NumPitchClasses is the number of chromatic tones in an octave.
const NumPitchClasses = 12

// PitchClass is a MIDI note reduced modulo 12 (0 = C, 11 = B).
type PitchClass uint8

// PitchClassOf reduces a MIDI note number to its pitch class.
func PitchClassOf(note byte) PitchClass {
	return PitchClass(note % NumPitchClasses)
}

var pitchNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// String returns the note name of the pitch class.
func (p PitchClass) String() string {
	return pitchNames[p%NumPitchClasses]
}

// Chord is the ordered list of pitch classes pressed within one debounce
// window. Order is arrival order and duplicates are kept.
type Chord []PitchClass

// Names returns the note names of the chord in arrival order.
func (c Chord) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.String()
	}
	return names
}

// MarshalJSON encodes the chord as an array of numbers rather than the
// base64 string encoding/json uses for byte slices.
func (c Chord) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	ints := make([]int, len(c))
	for i, p := range c {
		ints[i] = int(p)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON decodes an array of numbers, reducing each modulo 12.
func (c *Chord) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if ints == nil {
		*c = nil
		return nil
	}
	out := make(Chord, len(ints))
	for i, n := range ints {
		out[i] = PitchClass(((n % NumPitchClasses) + NumPitchClasses) % NumPitchClasses)
	}
	*c = out
	return nil
}

// ChordListener receives completed chords. It is called synchronously from
// the aggregator's flush and owns the slice it is given.
type ChordListener func(chord Chord)

// Debouncer schedules f after a fixed delay, cancelling whatever was
// scheduled by a previous call.
type Debouncer func(f func())

// AggregatorOptions configures a chord aggregator.
type AggregatorOptions struct {
	Logger     Logger
	ChordDelay time.Duration
	Debouncer  Debouncer
}

// AggregatorOption is a function that modifies AggregatorOptions.
type AggregatorOption func(*AggregatorOptions)

// WithAggregatorLogger sets the logger of the aggregator.
func WithAggregatorLogger(l Logger) AggregatorOption {
	return func(opts *AggregatorOptions) {
		opts.Logger = l
	}
}

// WithChordDelay overrides DefaultChordDelay.
func WithChordDelay(d time.Duration) AggregatorOption {
	return func(opts *AggregatorOptions) {
		opts.ChordDelay = d
	}
}

// WithDebouncer replaces the timer-backed debouncer. When set, ChordDelay is
// only informational.
func WithDebouncer(d Debouncer) AggregatorOption {
	return func(opts *AggregatorOptions) {
		opts.Debouncer = d
	}
}

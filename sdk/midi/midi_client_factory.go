package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/synesthesia/internal/midi/mididarwin"
	"github.com/leandrodaf/synesthesia/internal/midi/midirtmidi"
	"github.com/leandrodaf/synesthesia/internal/midi/midiwindows"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no MIDI transport.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps GOOS values to transport constructors.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,  // CoreMIDI
	"windows": midiwindows.NewMIDIClient, // winmm
	"linux":   midirtmidi.NewMIDIClient,  // rtmidi over ALSA
}

// NewClient initializes the MIDI transport of the current operating system.
//
// Returns ErrUnsupportedOS (wrapped with the GOOS name) when there is none.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	return newClientFor(runtime.GOOS, opts)
}

func newClientFor(goos string, opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if initializer, exists := clientInitializers[goos]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
}

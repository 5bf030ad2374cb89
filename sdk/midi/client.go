package midi

import (
	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// NewMIDIClient creates a new MIDI client with the specified options.
// It applies default options and initializes the client.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.ClientMIDI: An instance of the MIDI client.
//   - error: An error, if any occurred during the creation of the client.
func NewMIDIClient(opts ...contracts.Option) (contracts.ClientMIDI, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	return NewClient(&options)
}

// OpenDevice creates a client, selects deviceID and starts capturing into a
// channel of the given buffer size. The original program always opened the
// first port, so deviceID 0 is the usual choice.
func OpenDevice(deviceID, buffer int, opts ...contracts.Option) (contracts.ClientMIDI, chan contracts.MIDI, error) {
	client, err := NewMIDIClient(opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := client.SelectDevice(deviceID); err != nil {
		_ = client.Stop()
		return nil, nil, err
	}

	events := make(chan contracts.MIDI, buffer)
	client.StartCapture(events)
	return client, events, nil
}

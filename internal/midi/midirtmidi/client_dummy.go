//go:build !linux || !cgo || nortmidi
// +build !linux !cgo nortmidi

// Package midirtmidi is the rtmidi transport used on Linux. Outside Linux,
// without cgo or with the nortmidi build tag, this client refuses every
// operation instead.
package midirtmidi

import (
	"errors"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// ErrUnavailable is returned by every operation of the dummy client.
var ErrUnavailable = errors.New("rtmidi is not available in this build")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient returns a client whose operations all fail with ErrUnavailable.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Debug("Using dummy rtmidi client")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return nil, ErrUnavailable
}

func (m *dummyMIDIClient) SelectDevice(int) error {
	return ErrUnavailable
}

func (m *dummyMIDIClient) StartCapture(chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy rtmidi client")
}

func (m *dummyMIDIClient) Stop() error {
	return nil
}

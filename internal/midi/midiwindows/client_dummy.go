//go:build !windows
// +build !windows

// Package midiwindows is the winmm transport. On other systems it builds a
// client that refuses every operation.
package midiwindows

import (
	"errors"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// ErrUnavailable is returned by every operation of the dummy client.
var ErrUnavailable = errors.New("winmm is not available on this platform")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient returns a client whose operations all fail with ErrUnavailable.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Debug("Using dummy winmm client")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return nil, ErrUnavailable
}

func (m *dummyMIDIClient) SelectDevice(int) error {
	return ErrUnavailable
}

func (m *dummyMIDIClient) StartCapture(chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy winmm client")
}

func (m *dummyMIDIClient) Stop() error {
	return nil
}

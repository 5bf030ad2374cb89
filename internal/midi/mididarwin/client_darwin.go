//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/synesthesia/internal/midi/packet"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices       = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice   = errors.New("invalid MIDI device")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI device")
	ErrCreateInputPort     = errors.New("error creating input port")
)

type internalPortConnection interface {
	Disconnect()
}

// ClientMid reads MIDI input through CoreMIDI.
type ClientMid struct {
	logger       contracts.Logger
	dispatcher   packet.Dispatcher
	eventChannel atomic.Pointer[chan contracts.MIDI]
	client       coremidi.Client
	inputPort    coremidi.InputPort
	portConn     internalPortConnection
	mu           sync.Mutex
	wg           sync.WaitGroup // in-flight CoreMIDI callbacks
	stopOnce     sync.Once
}

// NewMIDIClient creates a CoreMIDI client named after options.CoreMIDIConfig.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("CoreMIDI client created",
		options.Logger.Field().String("clientName", options.CoreMIDIConfig.ClientName))

	return &ClientMid{
		logger:     options.Logger,
		dispatcher: packet.Dispatcher{Logger: options.Logger, Filter: options.MIDIEventFilter},
		client:     client,
	}, nil
}

// ListDevices returns every CoreMIDI source.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		entity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			ID:           i,
			Name:         source.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice connects the input port to the source at deviceID,
// disconnecting any previous source first.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		m.logger.Error(ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return ErrInvalidMIDIDevice
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[deviceID]
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", source.Name()))

	m.inputPort, err = coremidi.NewInputPort(m.client, "synesthesia input", m.handlePacket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device connected")
	return nil
}

func (m *ClientMid) handlePacket(_ coremidi.Source, p coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	ch := m.eventChannel.Load()
	if ch == nil {
		return
	}
	m.dispatcher.DeliverBytes(*ch, p.Data, time.Now())
}

// StartCapture starts forwarding received messages to eventChannel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if m.eventChannel.Swap(&eventChannel) != nil {
		m.logger.Warn("Capture already started; switching to the new channel")
		return
	}
	m.logger.Info("Starting MIDI event capture")
}

// Stop disconnects the source and waits for in-flight callbacks. It is safe
// to call more than once.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.eventChannel.Store(nil)
		if m.portConn != nil {
			m.portConn.Disconnect()
			m.portConn = nil
		}
		m.wg.Wait()
		m.logger.Info("MIDI capture stopped")
	})
	return nil
}

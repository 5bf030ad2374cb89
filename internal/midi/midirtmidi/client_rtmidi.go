//go:build linux && cgo && !nortmidi
// +build linux,cgo,!nortmidi

package midirtmidi

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/synesthesia/internal/midi/packet"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Errors returned by the rtmidi transport.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
)

// ClientMid reads MIDI input through rtmidi (ALSA on Linux).
type ClientMid struct {
	logger       contracts.Logger
	dispatcher   packet.Dispatcher
	eventChannel atomic.Pointer[chan contracts.MIDI]
	drv          *rtmididrv.Driver

	mu     sync.Mutex
	in     drivers.In
	stopFn func()
}

// NewMIDIClient initialises the rtmidi driver.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	options.Logger.Info("rtmidi client created")

	return &ClientMid{
		logger:     options.Logger,
		dispatcher: packet.Dispatcher{Logger: options.Logger, Filter: options.MIDIEventFilter},
		drv:        drv,
	}, nil
}

// ListDevices lists the rtmidi input ports.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	ins, err := m.drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	if len(ins) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i] = contracts.DeviceInfo{
			ID:         i,
			Name:       in.String(),
			EntityName: in.String(),
		}
	}
	return devices, nil
}

// SelectDevice opens the input port at deviceID and starts listening to it,
// closing any previously opened port.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ins, err := m.drv.Ins()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI inputs: %w", err)
	}
	if deviceID < 0 || deviceID >= len(ins) {
		m.logger.Error(ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return ErrInvalidMIDIDevice
	}
	m.closePort()

	in := ins[deviceID]
	if err := in.Open(); err != nil {
		return fmt.Errorf("open %q: %w", in.String(), err)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		ch := m.eventChannel.Load()
		if ch == nil {
			return
		}
		m.dispatcher.DeliverBytes(*ch, msg, time.Now())
	}, midi.HandleError(func(listenErr error) {
		m.logger.Warn("MIDI listener error",
			m.logger.Field().String("device", in.String()),
			m.logger.Field().Error("error", listenErr))
	}))
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("listen %q: %w", in.String(), err)
	}

	m.in = in
	m.stopFn = stop
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", in.String()))
	return nil
}

// StartCapture starts forwarding received messages to eventChannel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	m.eventChannel.Store(&eventChannel)
	m.logger.Info("Starting MIDI event capture")
}

// Stop closes the port and the driver.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.eventChannel.Store(nil)
	m.closePort()
	if m.drv != nil {
		if err := m.drv.Close(); err != nil {
			return fmt.Errorf("close rtmidi driver: %w", err)
		}
		m.drv = nil
	}
	m.logger.Info("MIDI capture stopped")
	return nil
}

func (m *ClientMid) closePort() {
	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}
	if m.in != nil {
		_ = m.in.Close()
		m.in = nil
	}
}

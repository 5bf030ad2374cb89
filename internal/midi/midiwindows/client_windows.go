//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/leandrodaf/synesthesia/internal/midi/packet"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"golang.org/x/sys/windows"
)

// HMIDIIN is a winmm MIDI input handle.
type HMIDIIN windows.Handle

// midiInOpen flags.
const (
	CALLBACK_FUNCTION = 0x00030000
	MIDI_IO_STATUS    = 0x00000020
)

// Messages delivered to the input callback.
const (
	MIM_OPEN      = 0x3C1
	MIM_CLOSE     = 0x3C2
	MIM_DATA      = 0x3C3
	MIM_ERROR     = 0x3C5
	MIM_LONGERROR = 0x3C6
	MIM_MOREDATA  = 0x3CC
)

// Errors returned by the winmm transport.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
	ErrNotConnected      = errors.New("no MIDI device selected")
)

type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// ClientMid reads MIDI input through winmm.
type ClientMid struct {
	logger       contracts.Logger
	dispatcher   packet.Dispatcher
	eventChannel atomic.Pointer[chan contracts.MIDI]
	handle       HMIDIIN
	portConn     bool
	started      bool
	mu           sync.Mutex
	callback     uintptr
}

var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")
)

// NewMIDIClient creates a winmm client.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("MIDI client created for Windows")
	return &ClientMid{
		logger:     options.Logger,
		dispatcher: packet.Dispatcher{Logger: options.Logger, Filter: options.MIDIEventFilter},
	}, nil
}

// ListDevices lists the winmm input devices.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn("Failed to get MIDI device capabilities", m.logger.Field().Int("deviceID", int(i)))
			continue
		}
		name := windows.UTF16ToString(caps.szPname[:])
		devices = append(devices, contracts.DeviceInfo{
			ID:           int(i),
			Name:         name,
			EntityName:   name,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return devices, nil
}

// SelectDevice opens the input device, closing any previous one.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r0, _, _ := procMidiInGetNumDevs.Call()
	if deviceID < 0 || deviceID >= int(r0) {
		return ErrInvalidMIDIDevice
	}

	if m.portConn {
		if err := m.closeDevice(); err != nil {
			return fmt.Errorf("failed to close previous MIDI device: %w", err)
		}
	}

	m.callback = windows.NewCallback(midiInCallback)
	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(deviceID),
		m.callback,
		uintptr(unsafe.Pointer(m)),
		uintptr(CALLBACK_FUNCTION|MIDI_IO_STATUS),
	)
	if r1 != 0 {
		return fmt.Errorf("failed to open MIDI device %d: %v", deviceID, err)
	}

	m.portConn = true
	m.logger.Info("MIDI device connected", m.logger.Field().Int("deviceID", deviceID))
	return nil
}

// StartCapture starts forwarding received messages to eventChannel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if !m.portConn {
		m.logger.Error(ErrNotConnected.Error())
		return
	}

	m.eventChannel.Store(&eventChannel)
	if m.started {
		return
	}

	r1, _, err := procMidiInStart.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("Failed to start MIDI capture", m.logger.Field().Error("error", err))
		return
	}
	m.started = true
	m.logger.Info("MIDI capture started")
}

func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	m := (*ClientMid)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case MIM_DATA:
		ch := m.eventChannel.Load()
		if ch == nil {
			return 0
		}
		data := []byte{
			byte(dwParam1 & 0xFF),
			byte((dwParam1 >> 8) & 0xFF),
			byte((dwParam1 >> 16) & 0xFF),
		}
		m.dispatcher.DeliverBytes(*ch, data, time.Now())
	case MIM_OPEN, MIM_CLOSE, MIM_MOREDATA:
		m.logger.Debug("winmm status message", m.logger.Field().Uint64("wMsg", uint64(wMsg)))
	case MIM_ERROR, MIM_LONGERROR:
		m.logger.Warn("winmm reported an invalid MIDI message", m.logger.Field().Uint64("wMsg", uint64(wMsg)))
	}
	return 0
}

// Stop stops capture and closes the device.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.portConn {
		return nil
	}
	if err := m.closeDevice(); err != nil {
		return fmt.Errorf("failed to stop MIDI capture: %w", err)
	}
	m.logger.Info("MIDI capture stopped and device closed")
	return nil
}

func (m *ClientMid) closeDevice() error {
	if m.started {
		if r1, _, err := procMidiInStop.Call(uintptr(m.handle)); r1 != 0 {
			return err
		}
		m.started = false
	}
	if r1, _, err := procMidiInClose.Call(uintptr(m.handle)); r1 != 0 {
		return err
	}

	m.portConn = false
	m.handle = 0
	m.eventChannel.Store(nil)
	return nil
}

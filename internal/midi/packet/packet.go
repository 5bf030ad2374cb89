// Package packet turns raw transport bytes into contracts.MIDI events and
// delivers them to a capture channel.
package packet

import (
	"errors"
	"time"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
)

// ErrIncompleteMIDIPacket is returned for packets shorter than a channel message.
var ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")

// Decode reads the first three bytes of data as a channel message received at t.
func Decode(data []byte, t time.Time) (contracts.MIDI, error) {
	if len(data) < 3 {
		return contracts.MIDI{}, ErrIncompleteMIDIPacket
	}
	return contracts.MIDI{
		Timestamp: uint64(t.UTC().UnixNano()),
		Status:    data[0],
		Note:      data[1],
		Velocity:  data[2],
	}, nil
}

// Describe renders an event the way gomidi prints messages, for debug logs.
func Describe(event contracts.MIDI) string {
	return midi.Message([]byte{event.Status, event.Note, event.Velocity}).String()
}

// Dispatcher filters events and pushes them to a channel without blocking.
type Dispatcher struct {
	Logger contracts.Logger
	Filter *contracts.MIDIEventFilter
}

// Deliver sends event to ch unless the filter rejects it. A full channel
// drops the event with a warning. It reports whether the event was sent.
func (d Dispatcher) Deliver(ch chan contracts.MIDI, event contracts.MIDI) bool {
	if ch == nil {
		d.Logger.Warn("eventChannel not initialized; dropping MIDI event")
		return false
	}
	if !d.Filter.Allows(event.Command()) {
		return false
	}
	d.Logger.Debug("MIDI event", d.Logger.Field().String("message", Describe(event)))

	select {
	case ch <- event:
		return true
	default:
		d.Logger.Warn("Event buffer full; dropping MIDI event")
		return false
	}
}

// DeliverBytes decodes data and delivers it. Short packets are dropped with
// a warning.
func (d Dispatcher) DeliverBytes(ch chan contracts.MIDI, data []byte, t time.Time) bool {
	event, err := Decode(data, t)
	if err != nil {
		d.Logger.Warn(err.Error(), d.Logger.Field().Int("length", len(data)))
		return false
	}
	return d.Deliver(ch, event)
}

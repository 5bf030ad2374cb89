package contracts

// MIDI is a raw channel message as delivered by a transport.
type MIDI struct {
	Timestamp uint64 // Nanoseconds since the Unix epoch at reception.
	Status    byte   // Raw status byte, command in the high nibble and channel in the low one.
	Note      byte   // First data byte, the MIDI note number (0-127) for note messages.
	Velocity  byte   // Second data byte.
}

// Command returns the command nibble of the status byte (e.g. 0x90 for Note On).
func (m MIDI) Command() MIDICommand {
	return MIDICommand(m.Status & 0xF0)
}

// Channel returns the zero-based MIDI channel of the message.
func (m MIDI) Channel() uint8 {
	return m.Status & 0x0F
}

// ClientMIDI defines the operations of a MIDI input transport.
type ClientMIDI interface {
	Stop() error                         // Stops the client and releases the device.
	ListDevices() ([]DeviceInfo, error)  // Lists the available MIDI input devices.
	SelectDevice(deviceID int) error     // Opens the input device with the given ID.
	StartCapture(eventChannel chan MIDI) // Starts pushing received messages to eventChannel.
}

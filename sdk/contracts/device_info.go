package contracts

// DeviceInfo describes a MIDI input device as reported by the transport.
type DeviceInfo struct {
	ID           int    // Index accepted by ClientMIDI.SelectDevice.
	Name         string // Device name.
	Manufacturer string // Device manufacturer, when the platform reports one.
	EntityName   string // Name of the entity the device belongs to.
}

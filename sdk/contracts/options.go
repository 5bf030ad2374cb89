package contracts

// MIDICommand is the high nibble of a status byte, used for event filtering.
type MIDICommand byte

const (
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// ControlChange is the MIDI command for a Control Change event (0xB0).
	ControlChange MIDICommand = 0xB0
)

// MIDIEventFilter restricts the commands a transport forwards.
type MIDIEventFilter struct {
	Commands []MIDICommand // Commands to forward; everything else is dropped.
}

// Allows reports whether the filter lets the command through.
func (f *MIDIEventFilter) Allows(command MIDICommand) bool {
	if f == nil {
		return true
	}
	for _, allowed := range f.Commands {
		if command == allowed {
			return true
		}
	}
	return false
}

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
}

// ClientOptions defines the configuration options for the MIDI client.
type ClientOptions struct {
	Logger          Logger           // Logger for logging events and errors.
	LogLevel        *LogLevel        // Level of logging to use; nil leaves the logger's level alone.
	LogFilePath     string           // File path for logging if file logging is enabled.
	MIDIEventFilter *MIDIEventFilter // Optional filter for MIDI events to capture.
	CoreMIDIConfig  *CoreMIDIConfig  // Configuration specific to CoreMIDI.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = &level
	}
}

// WithLogFile sends the client's log output to the file at path.
func WithLogFile(path string) Option {
	return func(opts *ClientOptions) {
		opts.LogFilePath = path
	}
}

// WithMIDIEventFilter sets the MIDI event filter for the MIDI client.
func WithMIDIEventFilter(filter MIDIEventFilter) Option {
	return func(opts *ClientOptions) {
		opts.MIDIEventFilter = &filter
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the MIDI client.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}

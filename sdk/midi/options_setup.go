package midi

import (
	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// DefaultClientName is the CoreMIDI client name used when none is configured.
const DefaultClientName = "synesthesia"

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{ClientName: DefaultClientName}
	}

	if options.LogLevel != nil {
		options.Logger.SetLevel(*options.LogLevel)
	}
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}
	return *options, nil
}

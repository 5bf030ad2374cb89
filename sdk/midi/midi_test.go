package midi

import (
	"path/filepath"
	"testing"

	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type levelSpy struct {
	contracts.Logger
	level contracts.LogLevel
	dest  contracts.LogDestination
	path  string
}

func (l *levelSpy) SetLevel(level contracts.LogLevel) { l.level = level }

func (l *levelSpy) SetDestination(dest contracts.LogDestination, filePath ...string) {
	l.dest = dest
	if len(filePath) > 0 {
		l.path = filePath[0]
	}
}

func TestApplyDefaultOptions(t *testing.T) {
	opts, err := applyDefaultOptions()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.NotNil(opts.Logger)
	assert.Equal(DefaultClientName, opts.CoreMIDIConfig.ClientName)
	assert.Nil(opts.MIDIEventFilter)
}

func TestApplyOptionsOverrides(t *testing.T) {
	spy := &levelSpy{Logger: logger.NewNopLogger()}
	path := filepath.Join(t.TempDir(), "midi.log")

	opts, err := applyDefaultOptions(
		contracts.WithLogger(spy),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithLogFile(path),
		contracts.WithCoreMIDIConfig(contracts.CoreMIDIConfig{ClientName: "test"}),
		contracts.WithMIDIEventFilter(contracts.MIDIEventFilter{Commands: []contracts.MIDICommand{contracts.NoteOn}}),
	)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("test", opts.CoreMIDIConfig.ClientName)
	assert.Equal(contracts.DebugLevel, spy.level)
	assert.Equal(contracts.FileLog, spy.dest)
	assert.Equal(path, spy.path)
	assert.True(opts.MIDIEventFilter.Allows(contracts.NoteOn))
	assert.False(opts.MIDIEventFilter.Allows(contracts.NoteOff))
}

func TestInjectedLoggerKeepsItsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.NewFromZap(zap.New(core))
	l.SetLevel(contracts.DebugLevel)

	_, err := applyDefaultOptions(contracts.WithLogger(l))
	require.NoError(t, err)

	l.Debug("still visible")
	assert.Equal(t, 1, logs.Len())

	spy := &levelSpy{Logger: logger.NewNopLogger(), level: contracts.ErrorLevel}
	_, err = applyDefaultOptions(contracts.WithLogger(spy))
	require.NoError(t, err)
	assert.Equal(t, contracts.ErrorLevel, spy.level)
}

func TestUnsupportedOS(t *testing.T) {
	opts, err := applyDefaultOptions(contracts.WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)

	_, err = newClientFor("plan9", &opts)
	assert.ErrorIs(t, err, ErrUnsupportedOS)
	assert.Contains(t, err.Error(), "plan9")
}

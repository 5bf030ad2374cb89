package cmd

import (
	"bytes"
	"testing"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	cases := map[string]contracts.PitchClass{
		"60":  0,
		"61":  1,
		"127": 7,
		"C":   0,
		"c4":  0,
		"C#":  1,
		"Db":  1,
		"Eb3": 3,
		"B#":  0,
		"Cb":  11,
		"A":   9,
	}
	for in, want := range cases {
		got, err := parseNote(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"128", "-1", "H", "C$", "Cx2", ""} {
		_, err := parseNote(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, contracts.DebugLevel, level)

	_, err = parseLogLevel("loud")
	assert.Error(t, err)
}

func TestColorCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"color", "60", "E", "G"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "C E G")
	assert.Contains(t, out.String(), "#00ff00")
}

package serialsink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePort struct {
	bytes.Buffer
	writeErr error
	closed   bool
}

func (p *fakePort) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	return p.Buffer.Write(b)
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestFrameEncode(t *testing.T) {
	got := Frame{R: 0xFF, G: 0x00, B: 0x80}.Encode()
	want := []byte{0xAA, 0x55, 0x04, 0x20, 0xFF, 0x00, 0x80, 0x04 ^ 0x20 ^ 0xFF ^ 0x00 ^ 0x80}
	assert.Equal(t, want, got)
}

func TestShowWritesFrame(t *testing.T) {
	port := &fakePort{}
	s := NewWithPort(port, logger.NewNopLogger())

	require.NoError(t, s.Show(contracts.Paint{Color: contracts.HSL{H: 120, S: 1, L: 0.5}}))
	assert.Equal(t, Frame{G: 0xFF}.Encode(), port.Bytes())

	require.NoError(t, s.Close())
	assert.True(t, port.closed)
}

func TestShowReportsWriteError(t *testing.T) {
	port := &fakePort{writeErr: errors.New("unplugged")}
	s := NewWithPort(port, logger.NewNopLogger())

	err := s.Show(contracts.Paint{Color: contracts.HSL{S: 1, L: 0.5}})
	assert.ErrorContains(t, err, "unplugged")
}

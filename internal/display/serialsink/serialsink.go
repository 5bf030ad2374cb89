// Package serialsink sends chord colors to an LED controller over a serial
// port.
package serialsink

import (
	"fmt"
	"io"
	"sync"

	"github.com/leandrodaf/synesthesia/sdk/color"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"go.bug.st/serial"
)

// DefaultBaudRate matches the controller firmware.
const DefaultBaudRate = 115200

// Sink writes a Frame for every paint.
type Sink struct {
	logger contracts.Logger
	mu     sync.Mutex
	port   io.WriteCloser
}

// Open opens the named serial device. A baud rate below 1 uses DefaultBaudRate.
func Open(name string, baud int, logger contracts.Logger) (*Sink, error) {
	if baud < 1 {
		baud = DefaultBaudRate
	}
	p, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}
	logger.Info("Serial port opened",
		logger.Field().String("device", name),
		logger.Field().Int("baud", baud))
	return NewWithPort(p, logger), nil
}

// NewWithPort wraps an already open port.
func NewWithPort(port io.WriteCloser, logger contracts.Logger) *Sink {
	return &Sink{logger: logger, port: port}
}

// Show implements contracts.DisplaySink.
func (s *Sink) Show(p contracts.Paint) error {
	r, g, b := color.Bytes(color.DisplayRGB(p.Color))
	data := Frame{R: r, G: g, B: b}.Encode()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.port.Write(data); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	s.logger.Debug("Serial frame sent", s.logger.Field().Int("bytes", len(data)))
	return nil
}

// Close closes the port.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port.Close()
}

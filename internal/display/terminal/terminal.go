// Package terminal paints chords as colored blocks on a terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/leandrodaf/synesthesia/sdk/color"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
)

// DefaultWidth is the width of the color block in cells.
const DefaultWidth = 24

// Sink writes one line per paint: a block in the averaged color followed by
// the chord's note names and the HSL triple.
type Sink struct {
	mu       sync.Mutex
	out      io.Writer
	width    int
	renderer *lipgloss.Renderer
}

// New creates a sink writing to out. A width below 1 uses DefaultWidth.
func New(out io.Writer, width int) *Sink {
	if width < 1 {
		width = DefaultWidth
	}
	return &Sink{
		out:      out,
		width:    width,
		renderer: lipgloss.NewRenderer(out),
	}
}

// Show implements contracts.DisplaySink.
func (s *Sink) Show(p contracts.Paint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintln(s.out, s.render(p))
	return err
}

func (s *Sink) render(p contracts.Paint) string {
	hex := color.Hex(color.DisplayRGB(p.Color))
	block := s.renderer.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(s.width).
		Render("")
	label := s.renderer.NewStyle().Bold(true).
		Render(strings.Join(p.Chord.Names(), " "))

	return fmt.Sprintf("%s %s %s hsl(%.0f, %.0f%%, %.0f%%)",
		block, label, hex, p.Color.H, p.Color.S*100, p.Color.L*100)
}

// Close implements contracts.DisplaySink.
func (s *Sink) Close() error {
	return nil
}

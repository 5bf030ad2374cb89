// Package httpsink serves the latest chord color over HTTP so a browser can
// act as the full-screen display.
package httpsink

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/gorilla/mux"
	"github.com/leandrodaf/synesthesia/sdk/color"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/rs/cors"
)

const (
	defaultSwatchSize = 256
	maxSwatchSize     = 2048
)

// ColorResponse is the body of GET /color.
type ColorResponse struct {
	contracts.Paint
	Hex string        `json:"hex"`
	RGB contracts.RGB `json:"rgb"`
}

// ErrorResponse is returned on bad requests.
type ErrorResponse struct {
	Error string `json:"detail"`
}

// Sink keeps the latest paint and serves it.
type Sink struct {
	logger  contracts.Logger
	handler http.Handler
	server  *http.Server

	mu     sync.RWMutex
	latest *contracts.Paint
}

// New creates a sink that will listen on addr once Start is called.
func New(addr string, logger contracts.Logger) *Sink {
	s := &Sink{logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	router.HandleFunc("/color", s.handleColor).Methods(http.MethodGet)
	router.HandleFunc("/swatch.png", s.handleSwatch).Methods(http.MethodGet)

	s.handler = cors.Default().Handler(router)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, CORS included.
func (s *Sink) Handler() http.Handler {
	return s.handler
}

// Start listens in the background. Serve errors other than a clean
// shutdown are logged.
func (s *Sink) Start() {
	s.logger.Info("HTTP display listening", s.logger.Field().String("addr", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP display stopped", s.logger.Field().Error("error", err))
		}
	}()
}

// Show implements contracts.DisplaySink.
func (s *Sink) Show(p contracts.Paint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &p
	return nil
}

// Close shuts the server down.
func (s *Sink) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Sink) current() (contracts.Paint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return contracts.Paint{}, false
	}
	return *s.latest, true
}

func (s *Sink) handleColor(w http.ResponseWriter, r *http.Request) {
	p, ok := s.current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	rgb := color.DisplayRGB(p.Color)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(ColorResponse{Paint: p, Hex: color.Hex(rgb), RGB: rgb}); err != nil {
		s.logger.Warn("Could not encode color", s.logger.Field().Error("error", err))
	}
}

func (s *Sink) handleSwatch(w http.ResponseWriter, r *http.Request) {
	size := defaultSwatchSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSwatchSize {
			writeError(w, http.StatusBadRequest, "size must be between 1 and "+strconv.Itoa(maxSwatchSize))
			return
		}
		size = n
	}

	var rgb contracts.RGB
	if p, ok := s.current(); ok {
		rgb = color.DisplayRGB(p.Color)
	}

	dc := gg.NewContext(size, size)
	dc.SetRGB(rgb.R, rgb.G, rgb.B)
	dc.Clear()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := dc.EncodePNG(w); err != nil {
		s.logger.Warn("Could not encode swatch", s.logger.Field().Error("error", err))
	}
}

func (s *Sink) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: detail})
}

const page = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>synesthesia</title>
<style>html,body{margin:0;height:100%;background:#000;transition:background 80ms linear}</style>
</head>
<body>
<script>
let last = "";
async function poll() {
  try {
    const res = await fetch("/color", {cache: "no-store"});
    if (res.status === 200) {
      const c = await res.json();
      if (c.id !== last) {
        last = c.id;
        document.body.style.background = c.hex;
      }
    }
  } catch (e) {}
  setTimeout(poll, 50);
}
poll();
</script>
</body>
</html>
`

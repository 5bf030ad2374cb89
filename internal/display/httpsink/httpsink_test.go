package httpsink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leandrodaf/synesthesia/internal/logger"
	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink() *Sink {
	return New("127.0.0.1:0", logger.NewNopLogger())
}

func get(t *testing.T, h http.Handler, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func TestColorBeforeFirstChord(t *testing.T) {
	resp := get(t, newTestSink().Handler(), "/color")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestColorReturnsLatestPaint(t *testing.T) {
	s := newTestSink()
	require.NoError(t, s.Show(contracts.Paint{ID: "first", Chord: contracts.Chord{0}, Color: contracts.HSL{H: 0, S: 1, L: 0.5}}))
	require.NoError(t, s.Show(contracts.Paint{ID: "second", Chord: contracts.Chord{0, 4, 7}, Color: contracts.HSL{H: 120, S: 1, L: 0.5}}))

	resp := get(t, s.Handler(), "/color")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	body, _ := io.ReadAll(resp.Body)
	var got ColorResponse
	require.NoError(t, json.Unmarshal(body, &got))

	assert := assert.New(t)
	assert.Equal("second", got.ID)
	assert.Equal(contracts.Chord{0, 4, 7}, got.Chord)
	assert.Equal("#00ff00", got.Hex)
	assert.Equal(120.0, got.Color.H)
}

func TestSwatchIsPNGInPaintColor(t *testing.T) {
	s := newTestSink()
	require.NoError(t, s.Show(contracts.Paint{Color: contracts.HSL{H: 240, S: 1, L: 0.5}}))

	resp := get(t, s.Handler(), "/swatch.png?size=8")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, _ := io.ReadAll(resp.Body)
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	r, g, b, _ := img.At(4, 4).RGBA()
	assert.Equal(t, uint32(0), r>>8)
	assert.Equal(t, uint32(0), g>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestSwatchRejectsBadSize(t *testing.T) {
	resp := get(t, newTestSink().Handler(), "/swatch.png?size=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPageServed(t *testing.T) {
	resp := get(t, newTestSink().Handler(), "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `fetch("/color"`)
}

func TestUnknownMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/color", nil)
	w := httptest.NewRecorder()
	newTestSink().Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

package export

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wilson-ca/internal/render"
	"wilson-ca/internal/sims/wilsoncowan"
)

func smallHistory(t *testing.T, steps int) *wilsoncowan.History {
	t.Helper()
	cfg := wilsoncowan.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Steps = 12, 10, steps
	cfg.SpontaneousRate = 0.1
	h, err := wilsoncowan.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	return h
}

func TestWriteGIF(t *testing.T) {
	h := smallHistory(t, 6)
	opt := DefaultGIFOptions()
	opt.Frame.Scale = 2
	opt.Delay = 5

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, h, opt))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, 6)
	for _, d := range anim.Delay {
		assert.Equal(t, 5, d)
	}

	// Cell (r,c) of frame t maps to the pixel block below the caption.
	last := anim.Image[5]
	for r := 0; r < h.Rows(); r++ {
		for c := 0; c < h.Cols(); c++ {
			idx := last.ColorIndexAt(c*2, render.CaptionHeight+r*2)
			assert.Equal(t, h.At(5, r, c), idx, "cell (%d,%d)", r, c)
		}
	}
}

func TestWriteGIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteGIF(&buf, wilsoncowan.NewHistory(3, 2, 2), DefaultGIFOptions()))
}

func TestWriteAVI(t *testing.T) {
	h := smallHistory(t, 4)
	path := filepath.Join(t.TempDir(), "run.avi")
	require.NoError(t, WriteAVI(path, h, DefaultAVIOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "AVI ", string(data[8:12]))
}

func TestWriteChart(t *testing.T) {
	h := smallHistory(t, 20)
	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, h, ChartOptions{Title: "test", Width: 400, Height: 200}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	assert.Error(t, WriteChart(&buf, smallHistory(t, 1), DefaultChartOptions()))
}

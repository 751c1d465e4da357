package export

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"wilson-ca/internal/render"
	"wilson-ca/internal/sims/wilsoncowan"
)

// AVIOptions controls MJPEG video output.
type AVIOptions struct {
	Frame   render.Options
	FPS     int
	Quality int
}

// DefaultAVIOptions plays ten frames per second at high JPEG quality.
func DefaultAVIOptions() AVIOptions {
	return AVIOptions{Frame: render.DefaultOptions(), FPS: 10, Quality: 90}
}

// WriteAVI encodes every committed frame of h into an MJPEG AVI at path.
func WriteAVI(path string, h *wilsoncowan.History, opt AVIOptions) error {
	if h.Len() == 0 {
		return fmt.Errorf("avi: empty history")
	}
	if opt.FPS <= 0 {
		opt.FPS = DefaultAVIOptions().FPS
	}
	if opt.Quality <= 0 || opt.Quality > 100 {
		opt.Quality = DefaultAVIOptions().Quality
	}
	bounds := opt.Frame.Bounds(h.Rows(), h.Cols())
	aw, err := mjpeg.New(path, int32(bounds.Dx()), int32(bounds.Dy()), int32(opt.FPS))
	if err != nil {
		return fmt.Errorf("avi: %w", err)
	}

	var buf bytes.Buffer
	jpegOpts := &jpeg.Options{Quality: opt.Quality}
	for t := 0; t < h.Len(); t++ {
		buf.Reset()
		img := render.Frame(h.Frame(t), h.Rows(), h.Cols(), t, opt.Frame)
		if err := jpeg.Encode(&buf, img, jpegOpts); err != nil {
			aw.Close()
			return fmt.Errorf("avi: frame %d: %w", t, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("avi: frame %d: %w", t, err)
		}
	}
	return aw.Close()
}

// Package export turns a completed activity history into animations and
// charts.
package export

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"

	"wilson-ca/internal/render"
	"wilson-ca/internal/sims/wilsoncowan"
)

// GIFOptions controls animated GIF output.
type GIFOptions struct {
	Frame render.Options
	// Delay between frames in 100ths of a second.
	Delay int
}

// DefaultGIFOptions plays ten frames per second.
func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Frame: render.DefaultOptions(), Delay: 10}
}

// WriteGIF encodes every committed frame of h as one looping animation.
func WriteGIF(w io.Writer, h *wilsoncowan.History, opt GIFOptions) error {
	if h.Len() == 0 {
		return fmt.Errorf("gif: empty history")
	}
	if opt.Delay <= 0 {
		opt.Delay = DefaultGIFOptions().Delay
	}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, h.Len()),
		Delay: make([]int, h.Len()),
	}
	for t := 0; t < h.Len(); t++ {
		anim.Image[t] = render.Frame(h.Frame(t), h.Rows(), h.Cols(), t, opt.Frame)
		anim.Delay[t] = opt.Delay
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("gif: %w", err)
	}
	return nil
}

// WriteGIFFile writes the animation to path.
func WriteGIFFile(path string, h *wilsoncowan.History, opt GIFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGIF(f, h, opt); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

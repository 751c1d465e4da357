package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CaptionHeight is the height in pixels of the band holding the step label.
const CaptionHeight = 18

// Options controls how a frame is rasterised.
type Options struct {
	// Scale is the edge length of one cell in pixels.
	Scale int
	On    color.Color
	Off   color.Color
	// Caption adds a "Time Step: N" band above the grid.
	Caption bool
}

// DefaultOptions renders firing cells black on white with a caption.
func DefaultOptions() Options {
	return Options{Scale: 8, On: color.Black, Off: color.White, Caption: true}
}

func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.On == nil {
		o.On = color.Black
	}
	if o.Off == nil {
		o.Off = color.White
	}
	return o
}

// Bounds returns the image size for a rows x cols grid.
func (o Options) Bounds(rows, cols int) image.Rectangle {
	o = o.normalized()
	h := rows * o.Scale
	if o.Caption {
		h += CaptionHeight
	}
	return image.Rect(0, 0, cols*o.Scale, h)
}

// Palette returns the two-colour palette used by Frame; index 0 is Off and
// index 1 is On.
func (o Options) Palette() color.Palette {
	o = o.normalized()
	return color.Palette{o.Off, o.On}
}

// Frame rasterises one activity frame. Any non-zero cell is drawn On.
func Frame(cells []uint8, rows, cols, step int, opt Options) *image.Paletted {
	opt = opt.normalized()
	img := image.NewPaletted(opt.Bounds(rows, cols), opt.Palette())
	top := 0
	if opt.Caption {
		top = CaptionHeight
		drawLabel(img, 4, CaptionHeight-5, fmt.Sprintf("Time Step: %d", step), opt.On)
	}
	s := opt.Scale
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cells[r*cols+c] == 0 {
				continue
			}
			for dy := 0; dy < s; dy++ {
				row := img.Pix[(top+r*s+dy)*img.Stride:]
				for dx := 0; dx < s; dx++ {
					row[c*s+dx] = 1
				}
			}
		}
	}
	return img
}

func drawLabel(dst *image.Paletted, x, y int, label string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

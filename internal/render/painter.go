//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads activity frames into an ebiten image and draws them
// with the colours and scale of Options.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws cells onto dst. Frames of the wrong size are ignored. The
// caption setting does not apply; the window shows step counts in its status
// bar.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, opt Options) {
	if len(cells) != gp.w*gp.h {
		return
	}
	opt = opt.normalized()
	fillActivity(gp.buf, cells, opt.On, opt.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(opt.Scale), float64(opt.Scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

//go:build ebiten

package ui

import (
	"image/color"

	"wilson-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status renders a one-line status bar below the simulation view.
type Status struct {
	sim   core.Sim
	line  string
	pixel *ebiten.Image
}

// NewStatus constructs a status bar for sim.
func NewStatus(sim core.Sim) *Status {
	s := &Status{sim: sim}
	s.pixel = ebiten.NewImage(1, 1)
	s.pixel.Fill(color.White)
	return s
}

// Update refreshes the cached status text.
func (s *Status) Update(paused bool) {
	s.line = StatusLine(s.sim, paused)
}

// Draw paints the bar along the bottom edge of screen.
func (s *Status) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	top := b.Dy() - StatusHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), StatusHeight)
	op.GeoM.Translate(0, float64(top))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	screen.DrawImage(s.pixel, op)

	text.Draw(screen, s.line, basicfont.Face7x13, 4, top+14, color.White)
}

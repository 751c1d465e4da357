package render

import "image/color"

type rgba [4]byte

func toRGBA(c color.Color) rgba {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgba{n.R, n.G, n.B, n.A}
}

// fillActivity writes one RGBA pixel per cell into buf: on for firing cells,
// off for the rest.
func fillActivity(buf []byte, cells []uint8, on, off color.Color) {
	px := [2]rgba{toRGBA(off), toRGBA(on)}
	for i, c := range cells {
		copy(buf[i*4:i*4+4], px[min(c, 1)][:])
	}
}

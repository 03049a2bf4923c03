package render

import (
	"image"
	"image/color"
)

// Backdrop is the color behind the rain.
var Backdrop = color.RGBA{A: 255}

// fillRGBA sets every pixel in buf to c.
func fillRGBA(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// blendMask composites tint through mask onto dst with its top-left corner at
// at, using source-over. Pixels outside dst are clipped.
func blendMask(dst *image.RGBA, mask *image.Alpha, at image.Point, tint color.NRGBA) {
	mb := mask.Bounds()
	r := mb.Sub(mb.Min).Add(at).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	ta := uint32(tint.A)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mrow := mask.PixOffset(mb.Min.X+r.Min.X-at.X, mb.Min.Y+y-at.Y)
		base := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sa := uint32(mask.Pix[mrow]) * ta / 255
			mrow++
			if sa == 0 {
				base += 4
				continue
			}
			inv := 255 - sa
			dst.Pix[base+0] = uint8((uint32(tint.R)*sa + uint32(dst.Pix[base+0])*inv) / 255)
			dst.Pix[base+1] = uint8((uint32(tint.G)*sa + uint32(dst.Pix[base+1])*inv) / 255)
			dst.Pix[base+2] = uint8((uint32(tint.B)*sa + uint32(dst.Pix[base+2])*inv) / 255)
			dst.Pix[base+3] = uint8(sa + uint32(dst.Pix[base+3])*inv/255)
			base += 4
		}
	}
}

// overBackdrop flattens tint onto the opaque backdrop for outputs without
// an alpha channel.
func overBackdrop(tint color.NRGBA) color.RGBA {
	a := uint32(tint.A)
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(tint.R)*a + uint32(Backdrop.R)*inv) / 255),
		G: uint8((uint32(tint.G)*a + uint32(Backdrop.G)*inv) / 255),
		B: uint8((uint32(tint.B)*a + uint32(Backdrop.B)*inv) / 255),
		A: 255,
	}
}

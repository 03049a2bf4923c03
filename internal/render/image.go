package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageGlyphs rasterizes a glyph set once into alpha masks and blends them,
// tinted, into an RGBA frame.
type ImageGlyphs struct {
	dst   *image.RGBA
	masks []*image.Alpha

	cellW, cellH int
}

// NewImageGlyphs renders every rune of the set with face.
func NewImageGlyphs(face font.Face, runes []rune) *ImageGlyphs {
	l := layoutGlyphs(face, runes)
	g := &ImageGlyphs{
		masks: make([]*image.Alpha, len(runes)),
		cellW: l.cellW,
		cellH: l.cellH,
	}
	for i, r := range l.runes {
		mask := image.NewAlpha(image.Rect(0, 0, l.widths[i], l.cellH))
		d := font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, l.ascent),
		}
		d.DrawString(string(r))
		g.masks[i] = mask
	}
	return g
}

// CellSize returns the grid cell dimensions in pixels.
func (g *ImageGlyphs) CellSize() (w, h int) { return g.cellW, g.cellH }

// NewFrame allocates a frame for a cols x rows grid filled with the backdrop
// and makes it the draw target.
func (g *ImageGlyphs) NewFrame(cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*g.cellW, rows*g.cellH))
	fillRGBA(img.Pix, Backdrop)
	g.dst = img
	return img
}

// Clear refills the current target with the backdrop.
func (g *ImageGlyphs) Clear() {
	if g.dst != nil {
		fillRGBA(g.dst.Pix, Backdrop)
	}
}

// GlyphSize implements GlyphProvider.
func (g *ImageGlyphs) GlyphSize(idx int) (w, h int, ok bool) {
	if idx < 0 || idx >= len(g.masks) {
		return 0, 0, false
	}
	b := g.masks[idx].Bounds()
	return b.Dx(), b.Dy(), true
}

// DrawGlyph implements GlyphProvider.
func (g *ImageGlyphs) DrawGlyph(idx int, dst image.Rectangle, tint color.NRGBA) {
	if g.dst == nil || idx < 0 || idx >= len(g.masks) {
		return
	}
	blendMask(g.dst, g.masks[idx], dst.Min, tint)
}

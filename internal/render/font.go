package render

import (
	"fmt"
	"os"

	"digirain/internal/core"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// fallbackRune replaces runes the face cannot render.
const fallbackRune = '?'

// LoadFace opens a TrueType/OpenType font at the given point size. An empty
// path selects the built-in 7x13 bitmap face, which covers ASCII only.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("open face %s: %w", path, err)
	}
	return face, nil
}

// glyphLayout is the shared measurement of a glyph set against a face.
type glyphLayout struct {
	cellW, cellH int
	ascent       int
	runes        []rune
	widths       []int
}

// layoutGlyphs measures runes against face. Cells are as wide as 'W' and as
// tall as the face's line height; runes the face lacks become '?'.
func layoutGlyphs(face font.Face, runes []rune) glyphLayout {
	m := face.Metrics()
	l := glyphLayout{
		cellW:  font.MeasureString(face, "W").Ceil(),
		cellH:  m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
		runes:  make([]rune, len(runes)),
		widths: make([]int, len(runes)),
	}
	if l.cellW <= 0 {
		l.cellW = 1
	}
	if l.cellH <= 0 {
		l.cellH = 1
	}
	missing := 0
	for i, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			missing++
			r = fallbackRune
			adv, _ = face.GlyphAdvance(r)
		}
		w := adv.Ceil()
		if w <= 0 {
			w = l.cellW
		}
		l.runes[i] = r
		l.widths[i] = w
	}
	if missing > 0 {
		core.Logger().Debug("glyphs missing from face", "missing", missing, "total", len(runes), "fallback", string(fallbackRune))
	}
	return l
}

package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TerminalGlyphs draws glyphs as terminal cells. Every glyph is one cell, and
// since terminals have no alpha the tint is flattened onto the backdrop.
type TerminalGlyphs struct {
	screen tcell.Screen
	runes  []rune
	bg     tcell.Color
}

// NewTerminalGlyphs returns a provider writing runes to screen.
func NewTerminalGlyphs(screen tcell.Screen, runes []rune) *TerminalGlyphs {
	return &TerminalGlyphs{
		screen: screen,
		runes:  runes,
		bg:     tcell.NewRGBColor(int32(Backdrop.R), int32(Backdrop.G), int32(Backdrop.B)),
	}
}

// BackdropStyle is the style of an unlit cell.
func (g *TerminalGlyphs) BackdropStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(g.bg).Background(g.bg)
}

// GlyphSize implements GlyphProvider.
func (g *TerminalGlyphs) GlyphSize(idx int) (w, h int, ok bool) {
	if idx < 0 || idx >= len(g.runes) {
		return 0, 0, false
	}
	return 1, 1, true
}

// DrawGlyph implements GlyphProvider.
func (g *TerminalGlyphs) DrawGlyph(idx int, dst image.Rectangle, tint color.NRGBA) {
	if idx < 0 || idx >= len(g.runes) {
		return
	}
	c := overBackdrop(tint)
	style := tcell.StyleDefault.
		Background(g.bg).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	g.screen.SetContent(dst.Min.X, dst.Min.Y, g.runes[idx], nil, style)
}

package console

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/pkg/batch"
)

const (
	// GlyphAdvance is the horizontal distance between printed characters.
	GlyphAdvance = assets.SpriteSize / 2
	// LineHeight is the vertical distance between printed lines.
	LineHeight = 6
	// fontInk is the color glyphs are drawn with on the font sheet.
	fontInk = 7
)

// Glyph returns the font sheet cell for r. Runes are mapped through
// ISO-8859-1; anything outside it prints as '?'.
func Glyph(r rune) byte {
	if b, ok := charmap.ISO8859_1.EncodeRune(r); ok {
		return b
	}
	return '?'
}

// Print draws s at (x, y) in color col using the system font and returns
// the x position after the last character. A newline returns to x and moves
// down one line. The remap and transparency state in effect before the call
// is restored afterwards.
func (c *Console) Print(s string, x, y int, col uint8) int {
	saved := c.state

	c.Palt()
	c.PalSet(fontInk, col)
	c.setPage(PageFont)

	startX := x
	for _, r := range s {
		if r == '\n' {
			x = startX
			y += LineHeight
			continue
		}
		gx, gy := assets.SpriteOrigin(int(Glyph(r)))
		c.blit(
			batch.Rect{X: x, Y: y, W: assets.SpriteSize, H: assets.SpriteSize},
			batch.Rect{X: gx, Y: gy, W: assets.SpriteSize, H: assets.SpriteSize},
			false, false,
		)
		x += GlyphAdvance
	}

	c.Flush()
	c.state = saved
	return x
}

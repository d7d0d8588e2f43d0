package assets

import (
	"image"

	"github.com/voxconsole/vox/pkg/palette"
)

const (
	// SpriteSize is the side of one sprite cell in pixels.
	SpriteSize = 8
	// SpritesPerRow is the number of sprite cells per sheet row and column.
	SpritesPerRow = 16
	// SheetSize is the side of a sprite sheet page in pixels.
	SheetSize = SpriteSize * SpritesPerRow
)

// Sheet is a 128x128 page of palette indices, one byte per pixel, row-major.
type Sheet struct {
	Pix [SheetSize * SheetSize]uint8
}

// SheetFromImage quantizes the top-left 128x128 region of img into a sheet.
// Pixels outside the source image are color 0.
func SheetFromImage(img image.Image, p *palette.Palette) *Sheet {
	s := &Sheet{}
	b := img.Bounds()
	w := min(SheetSize, b.Dx())
	h := min(SheetSize, b.Dy())
	m := palette.Model{Palette: p}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Pix[y*SheetSize+x] = m.Index(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return s
}

// Pixel returns the color index at (x, y). Coordinates wrap around the page.
func (s *Sheet) Pixel(x, y int) uint8 {
	x &= SheetSize - 1
	y &= SheetSize - 1
	return s.Pix[y*SheetSize+x]
}

// Set writes a color index at (x, y). Out-of-page writes are ignored.
func (s *Sheet) Set(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= SheetSize || y >= SheetSize {
		return
	}
	s.Pix[y*SheetSize+x] = c & (palette.Size - 1)
}

// Paletted returns a copy of the sheet as a paletted image.
func (s *Sheet) Paletted(p *palette.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, SheetSize, SheetSize), p.ColorPalette())
	copy(img.Pix, s.Pix[:])
	return img
}

// SpriteOrigin returns the top-left pixel of sprite n on a sheet.
func SpriteOrigin(n int) (x, y int) {
	return (n % SpritesPerRow) * SpriteSize, (n / SpritesPerRow) * SpriteSize
}

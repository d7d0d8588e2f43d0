package palette

import (
	"image"
	"image/color"
)

// Model converts arbitrary colors to the nearest palette color using the
// weighted distance. color.Palette.Convert uses an unweighted metric, so
// quantizing through this model matches Closest exactly.
type Model struct {
	Palette *Palette
}

// Convert implements color.Model.
func (m Model) Convert(c color.Color) color.Color {
	return m.Palette[m.Index(c)]
}

// Index returns the palette index nearest to c. Alpha is ignored, matching
// how sheets are imported from 3- and 4-channel images.
func (m Model) Index(c color.Color) uint8 {
	r, g, b := rgb8(c)
	return m.Palette.Closest(r, g, b)
}

// rgb8 returns the 8-bit channels of c without alpha premultiplication.
func rgb8(c color.Color) (int, int, int) {
	switch v := c.(type) {
	case color.RGBA:
		if v.A == 0xff {
			return int(v.R), int(v.G), int(v.B)
		}
	case color.NRGBA:
		return int(v.R), int(v.G), int(v.B)
	case Color:
		return int(v.R), int(v.G), int(v.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

// Quantizer implements image/draw.Quantizer. It ignores the image content and
// the existing palette and always returns the fixed console palette, so
// encoders that quantize (image/gif) produce console-indexed output.
type Quantizer struct {
	Palette *Palette
}

// Quantize implements draw.Quantizer.
func (q Quantizer) Quantize(p color.Palette, _ image.Image) color.Palette {
	return append(p[:0:0], q.Palette.ColorPalette()...)
}

// Quantize maps every pixel of img to its nearest palette index and returns
// the result as a paletted image with the same bounds.
func (p *Palette) Quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, p.ColorPalette())
	m := Model{Palette: p}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = m.Index(img.At(x, y))
		}
	}
	return dst
}

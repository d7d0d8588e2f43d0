// Package palette defines the fixed 16-color console palette and the
// perceptually weighted nearest-color match used to import RGB images.
package palette

import (
	"image/color"
)

// Size is the number of entries in a palette.
const Size = 16

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color. Palette colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Palette is an ordered table of 16 colors. Index 0 is the background color.
type Palette [Size]Color

// Default is the console palette.
var Default = Palette{
	{0, 0, 0},       // 0: black
	{29, 43, 83},    // 1: dark blue
	{126, 37, 83},   // 2: dark purple
	{0, 135, 81},    // 3: dark green
	{171, 82, 54},   // 4: brown
	{95, 87, 79},    // 5: dark gray
	{194, 195, 199}, // 6: light gray
	{255, 241, 232}, // 7: white
	{255, 0, 77},    // 8: red
	{255, 163, 0},   // 9: orange
	{255, 236, 39},  // 10: yellow
	{0, 228, 54},    // 11: green
	{41, 173, 255},  // 12: blue
	{131, 118, 156}, // 13: indigo
	{255, 119, 168}, // 14: pink
	{255, 204, 170}, // 15: peach
}

// Channel weights approximating luma sensitivity.
const (
	weightR = 0.30
	weightG = 0.59
	weightB = 0.11
)

// Distance returns the weighted squared distance between two RGB triples.
// Each channel delta is scaled by its weight before squaring.
func Distance(r1, g1, b1, r2, g2, b2 int) float64 {
	dr := float64(r1-r2) * weightR
	dg := float64(g1-g2) * weightG
	db := float64(b1-b2) * weightB
	return dr*dr + dg*dg + db*db
}

// Closest returns the index of the palette entry nearest to (r, g, b).
// The scan runs from index 0 and only a strictly smaller distance replaces
// the current best, so ties resolve to the lowest index.
func (p *Palette) Closest(r, g, b int) uint8 {
	best := uint8(0)
	bestDist := Distance(r, g, b, int(p[0].R), int(p[0].G), int(p[0].B))
	for i := 1; i < Size; i++ {
		c := p[i]
		d := Distance(r, g, b, int(c.R), int(c.G), int(c.B))
		if d < bestDist {
			best = uint8(i)
			bestDist = d
		}
	}
	return best
}

// FindClosest returns the index of the Default palette entry nearest to (r, g, b).
func FindClosest(r, g, b int) uint8 {
	return Default.Closest(r, g, b)
}

// ColorPalette returns the palette as a color.Palette, suitable for
// image.NewPaletted and the image/png encoder.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, Size)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// Float32s returns the palette as 16 normalized RGB triples for a vec3[16]
// shader uniform.
func (p *Palette) Float32s() []float32 {
	out := make([]float32, 0, Size*3)
	for _, c := range p {
		out = append(out, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	}
	return out
}

// RGBA returns the 8-bit RGBA value for a palette index. Indices are masked
// to the 0-15 range.
func (p *Palette) RGBA(i uint8) color.RGBA {
	c := p[i&(Size-1)]
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

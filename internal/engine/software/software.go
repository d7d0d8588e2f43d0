// Package software renders console batches into a CPU framebuffer of
// palette indices. It decodes the same packed entries the GPU pipelines
// consume, so it doubles as a reference renderer and a headless backend.
package software

import (
	"image"
	"image/color"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/screen"
	"github.com/voxconsole/vox/pkg/batch"
	"github.com/voxconsole/vox/pkg/palette"
)

// Framebuffer is a 128x128 screen of palette indices.
type Framebuffer struct {
	Pix     [screen.Width * screen.Width]uint8
	palette *palette.Palette
	pages   [2]*assets.Sheet

	// Stats for the current frame.
	submits int
	entries int
}

// New creates a framebuffer that resolves colors with p.
func New(p *palette.Palette) *Framebuffer {
	return &Framebuffer{
		palette: p,
		pages:   [2]*assets.Sheet{{}, {}},
	}
}

// SetPage installs a sheet page (console.PageFont or console.PageSprites).
func (f *Framebuffer) SetPage(page int, s *assets.Sheet) {
	if page < 0 || page >= len(f.pages) || s == nil {
		return
	}
	f.pages[page] = s
}

// At returns the palette index at (x, y), or 0 outside the screen.
func (f *Framebuffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= screen.Width || y >= screen.Width {
		return 0
	}
	return f.Pix[y*screen.Width+x]
}

func (f *Framebuffer) set(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= screen.Width || y >= screen.Width {
		return
	}
	f.Pix[y*screen.Width+x] = c
}

// Clear implements console.Backend.
func (f *Framebuffer) Clear(c uint8) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// DrawSprites implements console.Backend.
func (f *Framebuffer) DrawSprites(entries []batch.Entry, st *console.State) {
	f.count(len(entries))
	sheet := f.pages[st.Page&1]
	for _, e := range entries {
		dst, src := batch.UnpackSprite(e)
		f.blit(sheet, dst, src, st)
	}
}

// blit samples src at the center of every destination pixel. A negative
// source extent samples the region mirrored.
func (f *Framebuffer) blit(sheet *assets.Sheet, dst, src batch.Rect, st *console.State) {
	if dst.W <= 0 || dst.H <= 0 {
		return
	}
	sw, sh := abs(src.W), abs(src.H)

	for j := 0; j < dst.H; j++ {
		v := (2*j + 1) * sh / (2 * dst.H)
		if src.H < 0 {
			v = sh - 1 - v
		}
		for i := 0; i < dst.W; i++ {
			u := (2*i + 1) * sw / (2 * dst.W)
			if src.W < 0 {
				u = sw - 1 - u
			}
			c := sheet.Pixel(src.X+u, src.Y+v) & (palette.Size - 1)
			if st.Alpha.Transparent(c) {
				continue
			}
			f.set(dst.X+i, dst.Y+j, st.Remap.Apply(c))
		}
	}
}

// DrawQuads implements console.Backend.
func (f *Framebuffer) DrawQuads(entries []batch.Entry, st *console.State) {
	f.count(len(entries))
	for _, e := range entries {
		x0, y0, x1, y1, c := batch.UnpackQuad(e)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		col := st.Remap.Apply(c)
		for y := max(y0, 0); y < min(y1, screen.Width); y++ {
			for x := max(x0, 0); x < min(x1, screen.Width); x++ {
				f.Pix[y*screen.Width+x] = col
			}
		}
	}
}

// DrawLines implements console.Backend using Bresenham's algorithm. Both end
// points are drawn.
func (f *Framebuffer) DrawLines(lines []batch.Line, st *console.State) {
	f.count(len(lines))
	for _, l := range lines {
		col := st.Remap.Apply(l.C)
		x, y := l.X0, l.Y0
		dx, dy := abs(l.X1-l.X0), -abs(l.Y1-l.Y0)
		stepX, stepY := sign(l.X1-l.X0), sign(l.Y1-l.Y0)
		e := dx + dy
		for {
			f.set(x, y, col)
			if x == l.X1 && y == l.Y1 {
				break
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += stepX
			}
			if e2 <= dx {
				e += dx
				y += stepY
			}
		}
	}
}

func (f *Framebuffer) count(n int) {
	f.submits++
	f.entries += n
}

// Stats returns the number of batches and entries drawn since the last
// ResetStats.
func (f *Framebuffer) Stats() (submits, entries int) {
	return f.submits, f.entries
}

// ResetStats zeroes the draw statistics.
func (f *Framebuffer) ResetStats() {
	f.submits, f.entries = 0, 0
}

// Paletted returns a copy of the screen as a paletted image.
func (f *Framebuffer) Paletted() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, screen.Width, screen.Width), f.palette.ColorPalette())
	copy(img.Pix, f.Pix[:])
	return img
}

// RGBA converts the screen to RGBA through the palette, writing into dst
// when it has the right size.
func (f *Framebuffer) RGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds() != image.Rect(0, 0, screen.Width, screen.Width) {
		dst = image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Width))
	}
	var lut [palette.Size]color.RGBA
	for i := range lut {
		lut[i] = f.palette.RGBA(uint8(i))
	}
	for i, c := range f.Pix {
		p := lut[c&(palette.Size-1)]
		o := i * 4
		dst.Pix[o] = p.R
		dst.Pix[o+1] = p.G
		dst.Pix[o+2] = p.B
		dst.Pix[o+3] = p.A
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Package console implements the immediate-mode drawing API of the 128x128
// fantasy console: cls, spr, sspr, rect, line, print, pal and palt.
//
// Draw calls are packed into per-pipeline batches and handed to a Backend
// when a batch fills up, when another pipeline is used, when the palette
// state changes, or when Flush is called at the end of a frame.
package console

import (
	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/engine/screen"
	"github.com/voxconsole/vox/pkg/batch"
	"github.com/voxconsole/vox/pkg/palette"
)

// MaxExtent is the largest width or height a single sprite entry can carry.
const MaxExtent = 127

type pipeline int

const (
	pipeNone pipeline = iota
	pipeSprites
	pipeQuads
	pipeLines
)

// Console is the immediate-mode drawing API. It is not safe for concurrent
// use; one render loop drives it.
type Console struct {
	backend Backend
	state   State
	active  pipeline

	sprites *batch.Batch[batch.Entry]
	quads   *batch.Batch[batch.Entry]
	lines   *batch.Batch[batch.Line]
}

// New creates a console drawing through b with batches of batch.Capacity.
func New(b Backend) *Console {
	return NewWithCapacity(b, batch.Capacity)
}

// NewWithCapacity creates a console whose batches hold capacity entries.
func NewWithCapacity(b Backend, capacity int) *Console {
	c := &Console{
		backend: b,
		state:   DefaultState(),
	}
	c.sprites = batch.New(capacity, func(e []batch.Entry) { c.backend.DrawSprites(e, &c.state) })
	c.quads = batch.New(capacity, func(e []batch.Entry) { c.backend.DrawQuads(e, &c.state) })
	c.lines = batch.New(capacity, func(l []batch.Line) { c.backend.DrawLines(l, &c.state) })
	return c
}

// State returns a copy of the current draw state.
func (c *Console) State() State {
	return c.state
}

// Flush submits all pending draw commands.
func (c *Console) Flush() {
	c.sprites.Flush()
	c.quads.Flush()
	c.lines.Flush()
	c.active = pipeNone
}

// use switches to pipeline p, flushing the previous one so draw order across
// pipelines is preserved.
func (c *Console) use(p pipeline) {
	if c.active == p {
		return
	}
	switch c.active {
	case pipeSprites:
		c.sprites.Flush()
	case pipeQuads:
		c.quads.Flush()
	case pipeLines:
		c.lines.Flush()
	}
	c.active = p
}

// Cls flushes pending draws and clears the screen to color col.
func (c *Console) Cls(col uint8) {
	c.Flush()
	c.backend.Clear(col & (palette.Size - 1))
}

// Pal resets the color remap to identity.
func (c *Console) Pal() {
	c.Flush()
	c.state.Remap.Reset()
}

// PalSet draws color c0 as color c1 from now on.
func (c *Console) PalSet(c0, c1 uint8) {
	c.Flush()
	c.state.Remap.Set(c0, c1)
}

// Palt resets transparency: only color 0 is transparent.
func (c *Console) Palt() {
	c.Flush()
	c.state.Alpha.Reset()
}

// PaltSet sets whether color col is transparent.
func (c *Console) PaltSet(col uint8, transparent bool) {
	c.Flush()
	c.state.Alpha.Set(col, transparent)
}

// setPage selects the sheet page used by subsequent sprite entries.
func (c *Console) setPage(page int) {
	if c.state.Page == page {
		return
	}
	c.sprites.Flush()
	c.state.Page = page
}

// visible reports whether a destination rectangle touches the screen. Off
// screen entries are dropped because their coordinates may not fit the
// signed byte encoding.
func visible(x, y, w, h int) bool {
	return w > 0 && h > 0 &&
		x < screen.Width && y < screen.Width &&
		x+w > 0 && y+h > 0
}

// blit queues one sprite entry on the current page.
func (c *Console) blit(dst, src batch.Rect, flipX, flipY bool) {
	if !visible(dst.X, dst.Y, dst.W, dst.H) {
		return
	}
	c.use(pipeSprites)
	c.sprites.Add(batch.PackSprite(dst, src, flipX, flipY))
}

// Sspr draws the sheet region (sx, sy, sw, sh) unscaled at (dx, dy).
func (c *Console) Sspr(sx, sy, sw, sh, dx, dy int) {
	c.SsprExt(sx, sy, sw, sh, dx, dy, sw, sh, false, false)
}

// SsprExt draws the sheet region (sx, sy, sw, sh) stretched to the screen
// rectangle (dx, dy, dw, dh), optionally mirrored. Sheet coordinates wrap at
// the page edge; extents are clamped to MaxExtent.
func (c *Console) SsprExt(sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool) {
	c.setPage(PageSprites)
	src := batch.Rect{
		X: sx & (assets.SheetSize - 1),
		Y: sy & (assets.SheetSize - 1),
		W: min(sw, MaxExtent),
		H: min(sh, MaxExtent),
	}
	if src.W <= 0 || src.H <= 0 {
		return
	}
	c.blit(batch.Rect{X: dx, Y: dy, W: min(dw, MaxExtent), H: min(dh, MaxExtent)}, src, flipX, flipY)
}

// Spr draws sprite n at (x, y).
func (c *Console) Spr(n, x, y int) {
	c.SprExt(n, x, y, 1, 1, false, false)
}

// SprExt draws a block of w x h sprites starting at sprite n, optionally
// mirrored. w and h are clamped to [0, 16]. Blocks wider or taller than
// MaxExtent are split into halves so every entry stays encodable.
func (c *Console) SprExt(n, x, y, w, h int, flipX, flipY bool) {
	w = clamp(w, 0, assets.SpritesPerRow) * assets.SpriteSize
	h = clamp(h, 0, assets.SpritesPerRow) * assets.SpriteSize
	if w == 0 || h == 0 {
		return
	}

	c.setPage(PageSprites)
	sx, sy := assets.SpriteOrigin(n)
	sx &= assets.SheetSize - 1
	sy &= assets.SheetSize - 1

	cw := chunk(w)
	ch := chunk(h)
	for oy := 0; oy < h; oy += ch {
		for ox := 0; ox < w; ox += cw {
			// Mirroring the whole block also swaps chunk positions.
			dx, dy := ox, oy
			if flipX {
				dx = w - ox - cw
			}
			if flipY {
				dy = h - oy - ch
			}
			src := batch.Rect{X: (sx + ox) & (assets.SheetSize - 1), Y: (sy + oy) & (assets.SheetSize - 1), W: cw, H: ch}
			c.blit(batch.Rect{X: x + dx, Y: y + dy, W: cw, H: ch}, src, flipX, flipY)
		}
	}
}

// chunk returns the piece size used to split an extent into encodable parts.
func chunk(extent int) int {
	if extent > MaxExtent {
		return extent / 2
	}
	return extent
}

// Rect draws a filled rectangle from (x0, y0) up to but excluding (x1, y1).
func (c *Console) Rect(x0, y0, x1, y1 int, col uint8) {
	c.use(pipeQuads)
	c.quads.Add(batch.PackQuad(x0, y0, x1, y1, col&(palette.Size-1)))
}

// Line draws a line from (x0, y0) to (x1, y1).
func (c *Console) Line(x0, y0, x1, y1 int, col uint8) {
	c.use(pipeLines)
	c.lines.Add(batch.Line{X0: x0, Y0: y0, X1: x1, Y1: y1, C: col & (palette.Size - 1)})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package batch packs draw commands into compact GPU instance data and
// accumulates them into fixed-capacity batches that are submitted in one
// instanced draw call.
package batch

// Capacity is the number of entries a batch holds before it must be flushed.
const Capacity = 8192

// Bias values added to signed fields so they fit into an unsigned byte.
const (
	spriteBias = 128
	quadBias   = 127
)

// Quad corners are clamped to the range that survives the +127 bias.
const (
	QuadMin = -quadBias
	QuadMax = 255 - quadBias
)

// Rect is a rectangle in console pixels. W and H may be negative, which
// mirrors the rectangle along that axis.
type Rect struct {
	X, Y, W, H int
}

// Entry is one instanced draw command: two 32-bit words, each holding four
// biased 8-bit fields ordered x, y, w, h from the most significant byte.
type Entry [2]uint32

// packWord packs four values into one word using the given bias. Values are
// masked to a byte, so anything outside [-bias, 255-bias] wraps.
func packWord(a, b, c, d, bias int) uint32 {
	return uint32(uint8(a+bias))<<24 |
		uint32(uint8(b+bias))<<16 |
		uint32(uint8(c+bias))<<8 |
		uint32(uint8(d+bias))
}

func unpackWord(w uint32, bias int) (a, b, c, d int) {
	a = int(uint8(w>>24)) - bias
	b = int(uint8(w>>16)) - bias
	c = int(uint8(w>>8)) - bias
	d = int(uint8(w)) - bias
	return a, b, c, d
}

// PackSprite encodes a sprite blit. Word 0 holds the destination (screen)
// rectangle and word 1 the source (sheet) rectangle. Flip flags negate the
// source width or height before packing. Fields are biased by 128, so values
// in [-128, 127] round-trip.
func PackSprite(dst, src Rect, flipX, flipY bool) Entry {
	if flipX {
		src.W = -src.W
	}
	if flipY {
		src.H = -src.H
	}
	return Entry{
		packWord(dst.X, dst.Y, dst.W, dst.H, spriteBias),
		packWord(src.X, src.Y, src.W, src.H, spriteBias),
	}
}

// UnpackSprite decodes an entry produced by PackSprite. A flipped source has
// a negative width or height.
func UnpackSprite(e Entry) (dst, src Rect) {
	dst.X, dst.Y, dst.W, dst.H = unpackWord(e[0], spriteBias)
	src.X, src.Y, src.W, src.H = unpackWord(e[1], spriteBias)
	return dst, src
}

// ClampQuad limits a quad coordinate to [QuadMin, QuadMax].
func ClampQuad(v int) int {
	if v < QuadMin {
		return QuadMin
	}
	if v > QuadMax {
		return QuadMax
	}
	return v
}

// PackQuad encodes a filled rectangle spanning (x0,y0) to (x1,y1) in color c.
// Corners are clamped to [QuadMin, QuadMax] and biased by 127; word 1 holds
// the palette index.
func PackQuad(x0, y0, x1, y1 int, c uint8) Entry {
	return Entry{
		packWord(ClampQuad(x0), ClampQuad(y0), ClampQuad(x1), ClampQuad(y1), quadBias),
		uint32(c),
	}
}

// UnpackQuad decodes an entry produced by PackQuad.
func UnpackQuad(e Entry) (x0, y0, x1, y1 int, c uint8) {
	x0, y0, x1, y1 = unpackWord(e[0], quadBias)
	return x0, y0, x1, y1, uint8(e[1])
}

// Line is a single line segment in console pixels with its palette index.
// Lines are uploaded as vertex pairs rather than packed words.
type Line struct {
	X0, Y0, X1, Y1 int
	C              uint8
}

// Vertices appends the two (x, y, color) vertices of the line to dst.
func (l Line) Vertices(dst []float32) []float32 {
	c := float32(l.C)
	return append(dst,
		float32(l.X0), float32(l.Y0), c,
		float32(l.X1), float32(l.Y1), c,
	)
}

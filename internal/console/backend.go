package console

import (
	"github.com/voxconsole/vox/pkg/batch"
	"github.com/voxconsole/vox/pkg/palette"
)

// Sheet pages. The system font occupies page 0 and the user sprite sheet
// page 1.
const (
	PageFont    = 0
	PageSprites = 1
)

// State is the draw state a backend applies to a submitted batch. It is
// captured at submit time, which is why every change to it flushes first.
type State struct {
	Remap palette.Remap
	Alpha palette.AlphaMask
	Page  int
}

// DefaultState returns the identity remap, color 0 transparent, sprite page.
func DefaultState() State {
	return State{
		Remap: palette.IdentityRemap(),
		Alpha: palette.DefaultAlphaMask(),
		Page:  PageSprites,
	}
}

// Backend executes batched draw commands. Implementations must not retain
// the entry slices after returning.
type Backend interface {
	// Clear fills the screen with palette color c.
	Clear(c uint8)
	// DrawSprites draws sprite entries produced by batch.PackSprite.
	DrawSprites(entries []batch.Entry, st *State)
	// DrawQuads draws filled rectangles produced by batch.PackQuad.
	DrawQuads(entries []batch.Entry, st *State)
	// DrawLines draws line segments.
	DrawLines(lines []batch.Line, st *State)
}

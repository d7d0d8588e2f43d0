package gfx

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/shader"
	"github.com/voxconsole/vox/pkg/batch"
)

// pages is the number of sheet pages stacked in the sprite texture.
const pages = 2

// Sprites draws packed sprite entries sampled from an R8UI texture holding
// the font page above the sprite page.
type Sprites struct {
	program uint32
	u       uniforms
	quad    *instancedQuad
	texture uint32
}

// NewSprites compiles the "sprites" shader and allocates the sheet texture.
func NewSprites(fsys fs.FS) (*Sprites, error) {
	program, err := shader.Load(fsys, "sprites")
	if err != nil {
		return nil, err
	}

	s := &Sprites{program: program, u: locate(program), quad: newInstancedQuad()}

	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8UI, assets.SheetSize, assets.SheetSize*pages, 0,
		gl.RED_INTEGER, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return s, nil
}

// Upload copies sheet s into page of the texture.
func (s *Sprites) Upload(page int, sheet *assets.Sheet) error {
	if page < 0 || page >= pages {
		return fmt.Errorf("sheet page %d out of range", page)
	}
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, int32(page*assets.SheetSize), assets.SheetSize, assets.SheetSize,
		gl.RED_INTEGER, gl.UNSIGNED_BYTE, gl.Ptr(&sheet.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Draw draws one batch of sprite entries with draw state st.
func (s *Sprites) Draw(f *Frame, entries []batch.Entry, st *console.State) {
	gl.UseProgram(s.program)
	s.u.upload(f, st)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	s.quad.draw(entries)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases the program, buffers and texture.
func (s *Sprites) Close() {
	s.quad.delete()
	gl.DeleteTextures(1, &s.texture)
	gl.DeleteProgram(s.program)
}

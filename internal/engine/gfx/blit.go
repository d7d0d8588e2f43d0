package gfx

import (
	"image"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/voxconsole/vox/internal/engine/screen"
	"github.com/voxconsole/vox/internal/engine/shader"
)

// Blit draws a screen-sized texture over the current viewport. It presents
// both CPU framebuffers and the Offscreen target.
type Blit struct {
	program uint32
	frame   int32
	flipY   int32
	vao     uint32
	vbo     uint32
	texture uint32
}

// NewBlit compiles the "blit" shader and allocates the upload texture.
func NewBlit(fsys fs.FS) (*Blit, error) {
	program, err := shader.Load(fsys, "blit")
	if err != nil {
		return nil, err
	}
	b := &Blit{
		program: program,
		frame:   shader.Uniform(program, "frame"),
		flipY:   shader.Uniform(program, "flipY"),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadCorners)*4, gl.Ptr(quadCorners), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &b.texture)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, screen.Width, screen.Width, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return b, nil
}

// Draw uploads img, whose first row is the top of the screen, and draws it.
// img must be Width x Width pixels.
func (b *Blit) Draw(img *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, screen.Width, screen.Width, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	b.draw(b.texture, true)
}

// DrawTexture draws a texture rendered by GL, such as Offscreen's.
func (b *Blit) DrawTexture(texture uint32) {
	b.draw(texture, false)
}

func (b *Blit) draw(texture uint32, flipY bool) {
	gl.UseProgram(b.program)
	gl.Uniform1i(b.frame, 0)
	var flip int32
	if flipY {
		flip = 1
	}
	gl.Uniform1i(b.flipY, flip)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases the program, buffer and texture.
func (b *Blit) Close() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteTextures(1, &b.texture)
	gl.DeleteProgram(b.program)
}

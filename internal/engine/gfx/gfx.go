// Package gfx draws console batches with OpenGL 4.1 core. Sprites and quads
// are instanced unit quads fed from packed batch entries, lines are plain
// vertex pairs, and Blit presents a CPU framebuffer.
package gfx

import (
	"fmt"
	"io/fs"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/screen"
	"github.com/voxconsole/vox/internal/engine/shader"
	"github.com/voxconsole/vox/internal/logger"
	"github.com/voxconsole/vox/pkg/batch"
	"github.com/voxconsole/vox/pkg/palette"
)

// entrySize is the byte size of one packed instance.
const entrySize = int32(unsafe.Sizeof(batch.Entry{}))

// Unit quad corners, drawn as two triangles.
var (
	quadCorners = []float32{0, 0, 1, 0, 1, 1, 0, 1}
	quadIndices = []uint8{0, 1, 2, 2, 3, 0}
)

// uniforms caches the uniform locations shared by the console shaders.
// Locations a shader does not use are -1 and ignored by GL.
type uniforms struct {
	proj     int32
	palette  int32
	colorMap int32
	alphaMap int32
	page     int32
	sheet    int32
}

func locate(program uint32) uniforms {
	return uniforms{
		proj:     shader.Uniform(program, "proj"),
		palette:  shader.Uniform(program, "palette[0]"),
		colorMap: shader.Uniform(program, "colorMap[0]"),
		alphaMap: shader.Uniform(program, "alphaMap[0]"),
		page:     shader.Uniform(program, "page"),
		sheet:    shader.Uniform(program, "sheet"),
	}
}

// Frame holds the per-frame values every pipeline uploads with a batch.
type Frame struct {
	Proj    [16]float32
	Palette []float32
}

// NewFrame returns the projection for the virtual screen and the palette
// as shader colors.
func NewFrame(p *palette.Palette) *Frame {
	return &Frame{Proj: screen.Ortho(), Palette: p.Float32s()}
}

// upload sets the uniforms for a batch drawn with draw state st. The program
// must be in use.
func (u uniforms) upload(f *Frame, st *console.State) {
	gl.UniformMatrix4fv(u.proj, 1, false, &f.Proj[0])
	gl.Uniform3fv(u.palette, palette.Size, &f.Palette[0])

	remap := st.Remap.Int32s()
	gl.Uniform1iv(u.colorMap, palette.Size, &remap[0])
	alpha := st.Alpha.Int32s()
	gl.Uniform1iv(u.alphaMap, palette.Size, &alpha[0])

	gl.Uniform1i(u.page, int32(st.Page))
	gl.Uniform1i(u.sheet, 0)
}

// instancedQuad is a unit quad VAO with a per-instance uvec2 attribute.
type instancedQuad struct {
	vao       uint32
	corners   uint32
	indices   uint32
	instances uint32
}

func newInstancedQuad() *instancedQuad {
	q := &instancedQuad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.corners)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.corners)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadCorners)*4, gl.Ptr(quadCorners), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.GenBuffers(1, &q.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices), gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &q.instances)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.instances)
	gl.BufferData(gl.ARRAY_BUFFER, batch.Capacity*int(entrySize), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribIPointer(1, 2, gl.UNSIGNED_INT, entrySize, nil)
	gl.VertexAttribDivisor(1, 1)

	gl.BindVertexArray(0)
	return q
}

// draw uploads entries and draws one quad per entry. The program must be
// in use.
func (q *instancedQuad) draw(entries []batch.Entry) {
	if len(entries) == 0 {
		return
	}
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.instances)
	gl.BufferData(gl.ARRAY_BUFFER, len(entries)*int(entrySize), unsafe.Pointer(&entries[0]), gl.STREAM_DRAW)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_BYTE, nil, int32(len(entries)))
	gl.BindVertexArray(0)
}

func (q *instancedQuad) delete() {
	gl.DeleteVertexArrays(1, &q.vao)
	buffers := []uint32{q.corners, q.indices, q.instances}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
}

// Renderer draws console batches on the GPU. It implements console.Backend.
type Renderer struct {
	frame   *Frame
	palette *palette.Palette

	sprites *Sprites
	quads   *Quads
	lines   *Lines
}

// New compiles the sprite, quad and line shaders from fsys and creates
// their pipelines. A GL context must be current.
func New(fsys fs.FS, p *palette.Palette) (*Renderer, error) {
	r := &Renderer{frame: NewFrame(p), palette: p}

	var err error
	if r.sprites, err = NewSprites(fsys); err != nil {
		return nil, fmt.Errorf("sprites pipeline: %w", err)
	}
	if r.quads, err = NewQuads(fsys); err != nil {
		r.sprites.Close()
		return nil, fmt.Errorf("quads pipeline: %w", err)
	}
	if r.lines, err = NewLines(fsys); err != nil {
		r.sprites.Close()
		r.quads.Close()
		return nil, fmt.Errorf("lines pipeline: %w", err)
	}

	logger.Named("gfx").Info("pipelines ready",
		zap.Uint32("sprites", r.sprites.program),
		zap.Uint32("quads", r.quads.program),
		zap.Uint32("lines", r.lines.program))
	return r, nil
}

// Upload copies a sheet into a page of the sprite texture.
func (r *Renderer) Upload(page int, s *assets.Sheet) error {
	return r.sprites.Upload(page, s)
}

// Clear implements console.Backend. It clears the bound render target.
func (r *Renderer) Clear(c uint8) {
	col := r.palette.RGBA(c)
	gl.ClearColor(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites implements console.Backend.
func (r *Renderer) DrawSprites(entries []batch.Entry, st *console.State) {
	r.sprites.Draw(r.frame, entries, st)
}

// DrawQuads implements console.Backend.
func (r *Renderer) DrawQuads(entries []batch.Entry, st *console.State) {
	r.quads.Draw(r.frame, entries, st)
}

// DrawLines implements console.Backend.
func (r *Renderer) DrawLines(lines []batch.Line, st *console.State) {
	r.lines.Draw(r.frame, lines, st)
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.sprites.Close()
	r.quads.Close()
	r.lines.Close()
}

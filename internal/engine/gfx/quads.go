package gfx

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/shader"
	"github.com/voxconsole/vox/pkg/batch"
)

// Quads draws packed filled rectangles.
type Quads struct {
	program uint32
	u       uniforms
	quad    *instancedQuad
}

// NewQuads compiles the "quads" shader.
func NewQuads(fsys fs.FS) (*Quads, error) {
	program, err := shader.Load(fsys, "quads")
	if err != nil {
		return nil, err
	}
	return &Quads{program: program, u: locate(program), quad: newInstancedQuad()}, nil
}

// Draw draws one batch of quad entries with draw state st.
func (q *Quads) Draw(f *Frame, entries []batch.Entry, st *console.State) {
	gl.UseProgram(q.program)
	q.u.upload(f, st)
	q.quad.draw(entries)
}

// Close releases the program and buffers.
func (q *Quads) Close() {
	q.quad.delete()
	gl.DeleteProgram(q.program)
}

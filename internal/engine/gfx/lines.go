package gfx

import (
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/shader"
	"github.com/voxconsole/vox/pkg/batch"
)

// floatsPerLine is two (x, y, color) vertices.
const floatsPerLine = 6

// Lines draws line segments as GL_LINES from a streamed vertex buffer.
type Lines struct {
	program  uint32
	u        uniforms
	vao      uint32
	vbo      uint32
	vertices []float32
}

// NewLines compiles the "lines" shader.
func NewLines(fsys fs.FS) (*Lines, error) {
	program, err := shader.Load(fsys, "lines")
	if err != nil {
		return nil, err
	}

	l := &Lines{
		program:  program,
		u:        locate(program),
		vertices: make([]float32, 0, batch.Capacity*floatsPerLine),
	}

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, cap(l.vertices)*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return l, nil
}

// Draw draws one batch of lines with draw state st.
func (l *Lines) Draw(f *Frame, lines []batch.Line, st *console.State) {
	if len(lines) == 0 {
		return
	}
	l.vertices = l.vertices[:0]
	for _, ln := range lines {
		l.vertices = ln.Vertices(l.vertices)
	}

	gl.UseProgram(l.program)
	l.u.upload(f, st)

	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(l.vertices)*4, gl.Ptr(l.vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)*2))
	gl.BindVertexArray(0)
}

// Close releases the program and buffers.
func (l *Lines) Close() {
	gl.DeleteVertexArrays(1, &l.vao)
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteProgram(l.program)
}

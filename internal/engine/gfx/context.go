package gfx

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/voxconsole/vox/internal/logger"
)

// Init loads the GL function pointers for the current context and sets the
// fixed state the console pipelines expect.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.SCISSOR_TEST)
	return nil
}

// ClearWindow clears the whole default framebuffer, letterbox included,
// to black.
func ClearWindow() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetViewport maps drawing onto vp, given in top-left window coordinates of
// a drawable windowHeight pixels tall.
func SetViewport(vp image.Rectangle, windowHeight int) {
	gl.Viewport(int32(vp.Min.X), int32(windowHeight-vp.Max.Y), int32(vp.Dx()), int32(vp.Dy()))
}

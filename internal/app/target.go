package app

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/config"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/gfx"
	"github.com/voxconsole/vox/internal/engine/screen"
	"github.com/voxconsole/vox/internal/engine/software"
	"github.com/voxconsole/vox/internal/snapshot"
	"github.com/voxconsole/vox/pkg/batch"
	"github.com/voxconsole/vox/pkg/palette"
)

// target is where a session draws: the GL pipelines rendering offscreen, or
// a CPU framebuffer. Either way the frame reaches the window through Blit.
type target interface {
	console.Backend
	Upload(page int, s *assets.Sheet) error
	// Begin prepares a frame; Present draws it into the current viewport.
	Begin()
	Present()
	// Snapshot returns the last frame at console resolution.
	Snapshot() (*image.RGBA, error)
	Stats() (submits, entries int)
	Close()
}

func newTarget(renderer string, shaders fs.FS, p *palette.Palette) (target, error) {
	blit, err := gfx.NewBlit(shaders)
	if err != nil {
		return nil, err
	}

	var t target
	if renderer == config.RendererSoftware {
		t = &softwareTarget{Framebuffer: software.New(p), blit: blit}
	} else {
		t, err = newGLTarget(shaders, p, blit)
	}
	if err != nil {
		blit.Close()
		return nil, err
	}
	return t, nil
}

// glTarget draws batches with instanced GL pipelines into an Offscreen.
type glTarget struct {
	*gfx.Renderer
	offscreen *gfx.Offscreen
	blit      *gfx.Blit
	submits   int
	entries   int
}

func newGLTarget(shaders fs.FS, p *palette.Palette, blit *gfx.Blit) (*glTarget, error) {
	r, err := gfx.New(shaders, p)
	if err != nil {
		return nil, err
	}
	o, err := gfx.NewOffscreen()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("offscreen target: %w", err)
	}
	return &glTarget{Renderer: r, offscreen: o, blit: blit}, nil
}

func (t *glTarget) DrawSprites(e []batch.Entry, st *console.State) {
	t.count(len(e))
	t.Renderer.DrawSprites(e, st)
}

func (t *glTarget) DrawQuads(e []batch.Entry, st *console.State) {
	t.count(len(e))
	t.Renderer.DrawQuads(e, st)
}

func (t *glTarget) DrawLines(l []batch.Line, st *console.State) {
	t.count(len(l))
	t.Renderer.DrawLines(l, st)
}

func (t *glTarget) count(n int) {
	t.submits++
	t.entries += n
}

func (t *glTarget) Begin() {
	t.offscreen.Bind()
}

func (t *glTarget) Present() {
	t.offscreen.Unbind()
	t.blit.DrawTexture(t.offscreen.Texture())
}

func (t *glTarget) Snapshot() (*image.RGBA, error) {
	return snapshot.FromGLPixels(t.offscreen.ReadPixels(), screen.Width, screen.Width)
}

// Stats returns and resets the draw counters.
func (t *glTarget) Stats() (submits, entries int) {
	submits, entries = t.submits, t.entries
	t.submits, t.entries = 0, 0
	return submits, entries
}

func (t *glTarget) Close() {
	t.offscreen.Destroy()
	t.blit.Close()
	t.Renderer.Close()
}

// softwareTarget rasterizes on the CPU and uploads the result once a frame.
type softwareTarget struct {
	*software.Framebuffer
	blit *gfx.Blit
	rgba *image.RGBA
}

func (t *softwareTarget) Upload(page int, s *assets.Sheet) error {
	t.SetPage(page, s)
	return nil
}

func (t *softwareTarget) Begin() {}

func (t *softwareTarget) Present() {
	t.rgba = t.RGBA(t.rgba)
	t.blit.Draw(t.rgba)
}

func (t *softwareTarget) Snapshot() (*image.RGBA, error) {
	return t.RGBA(nil), nil
}

// Stats returns and resets the draw counters.
func (t *softwareTarget) Stats() (submits, entries int) {
	submits, entries = t.Framebuffer.Stats()
	t.ResetStats()
	return submits, entries
}

func (t *softwareTarget) Close() {
	t.blit.Close()
}

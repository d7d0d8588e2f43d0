// Package app runs the console: it opens the window, sets up the chosen
// renderer, loads the sheets and drives the demo session every frame.
package app

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/config"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/gfx"
	"github.com/voxconsole/vox/internal/engine/input"
	"github.com/voxconsole/vox/internal/engine/screen"
	"github.com/voxconsole/vox/internal/engine/shader/glsl"
	"github.com/voxconsole/vox/internal/engine/window"
	"github.com/voxconsole/vox/internal/logger"
	"github.com/voxconsole/vox/internal/session"
	"github.com/voxconsole/vox/internal/snapshot"
	"github.com/voxconsole/vox/pkg/palette"
)

// Title is the window title.
const Title = "vox"

// App is the running console.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	window  *window.Window
	input   *input.Input
	target  target
	assets  *assets.Manager
	session *session.Session
	shots   *snapshot.Capture
	running bool

	viewport     image.Rectangle
	windowWidth  int
	windowHeight int
	drawWidth    int
	drawHeight   int
}

// New creates the window and GL context, then everything that draws into it.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   logger.Named("app"),
		shots: snapshot.NewCapture("screenshots", "vox"),
	}
	a.log.Info("initializing console",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("renderer", cfg.Graphics.Renderer),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Debug:      cfg.Graphics.DebugOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := a.init(); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.resize()
	a.log.Info("console initialized")
	return a, nil
}

// init sets up everything that needs a current GL context.
func (a *App) init() error {
	if err := gfx.Init(); err != nil {
		return err
	}
	if a.cfg.Graphics.DebugOutput {
		gfx.EnableDebugOutput()
	}

	var err error
	a.target, err = newTarget(a.cfg.Graphics.Renderer, a.shaderFS(), &palette.Default)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	a.assets = assets.NewManager(os.DirFS("."), &palette.Default)
	sheets, err := session.LoadSheets(a.assets, a.cfg.Assets)
	if err != nil {
		return err
	}
	for _, page := range []int{console.PageFont, console.PageSprites} {
		if err := a.target.Upload(page, sheets.Page(page)); err != nil {
			return fmt.Errorf("uploading page %d: %w", page, err)
		}
	}

	a.session, err = session.New(a.target, a.cfg.Demo)
	return err
}

// shaderFS returns the configured shader directory, or the built-in sources.
func (a *App) shaderFS() fs.FS {
	if dir := a.cfg.Assets.ShaderDir; dir != "" {
		a.log.Info("loading shaders from directory", zap.String("dir", dir))
		return os.DirFS(dir)
	}
	return glsl.Builtin
}

// resize recomputes the letterboxed viewport for the current drawable.
func (a *App) resize() {
	a.windowWidth, a.windowHeight = a.window.GetSize()
	a.drawWidth, a.drawHeight = a.window.DrawableSize()
	a.viewport = screen.CalcRect(a.drawWidth, a.drawHeight)
	a.log.Debug("viewport",
		zap.Int("drawable_width", a.drawWidth),
		zap.Int("drawable_height", a.drawHeight),
		zap.Stringer("rect", a.viewport),
		zap.Int("scale", screen.Scale(a.viewport)),
	)
}

// pointer converts the mouse position to console pixels.
func (a *App) pointer() session.Pointer {
	mx, my := a.input.Mouse()
	if a.windowWidth > 0 && a.windowHeight > 0 {
		mx = mx * a.drawWidth / a.windowWidth
		my = my * a.drawHeight / a.windowHeight
	}
	x, y, ok := screen.ToConsole(a.viewport, mx, my)
	return session.Pointer{X: x, Y: y, In: ok}
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop", zap.String("scene", a.session.Scene()))

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		capture := false
		for _, event := range a.input.Events() {
			switch {
			case event.Type == input.EventWindowResize:
				a.resize()
			case event.Type == input.EventKeyDown && event.Key == sdl.SCANCODE_F12:
				capture = true
			}
		}

		a.target.Begin()
		a.session.Frame(a.pointer())
		gfx.ClearWindow()
		gfx.SetViewport(a.viewport, a.drawHeight)
		a.target.Present()

		if capture {
			a.screenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			submits, entries := a.target.Stats()
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("submits", submits),
				zap.Int("entries", entries),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// screenshot saves the last frame, scaled like the window shows it.
func (a *App) screenshot() {
	img, err := a.target.Snapshot()
	if err == nil {
		var name string
		if name, err = a.shots.Save(snapshot.Scale(img, max(screen.Scale(a.viewport), 1))); err == nil {
			a.log.Info("screenshot saved", zap.String("file", name))
			return
		}
	}
	a.log.Warn("screenshot failed", zap.Error(err))
}

// Close releases the renderer, assets and window.
func (a *App) Close() {
	a.log.Info("closing console")

	if a.target != nil {
		a.target.Close()
	}
	if a.assets != nil {
		hits, misses, entries := a.assets.Stats()
		a.log.Debug("asset cache",
			zap.Int("hits", hits),
			zap.Int("misses", misses),
			zap.Int("entries", entries),
		)
		a.assets.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

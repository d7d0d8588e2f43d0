// Package session runs a demo scene on a console backend. It owns the
// console, the scene and its random generator, and knows nothing about
// windows or GL, so the runtime and the screenshot tool share it.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/config"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/demo"
	"github.com/voxconsole/vox/internal/logger"
)

// Sheets are the two pages of the sprite texture.
type Sheets struct {
	Font    *assets.Sheet
	Sprites *assets.Sheet
}

// Page returns the sheet for a console page.
func (s Sheets) Page(page int) *assets.Sheet {
	if page == console.PageFont {
		return s.Font
	}
	return s.Sprites
}

// LoadSheets imports the font and sprite sheets named in cfg.
func LoadSheets(m *assets.Manager, cfg config.AssetsConfig) (Sheets, error) {
	font, err := m.Sheet(cfg.Font)
	if err != nil {
		return Sheets{}, fmt.Errorf("font sheet: %w", err)
	}
	sprites, err := m.Sheet(cfg.Sprites)
	if err != nil {
		return Sheets{}, fmt.Errorf("sprite sheet: %w", err)
	}
	return Sheets{Font: font, Sprites: sprites}, nil
}

// Session draws frames of one scene.
type Session struct {
	console *console.Console
	scene   demo.Scene
	name    string
	rand    *demo.Rand
	tick    int
}

// New creates a session drawing the named scene through b.
func New(b console.Backend, cfg config.DemoConfig) (*Session, error) {
	scene, err := demo.Lookup(cfg.Scene)
	if err != nil {
		return nil, err
	}
	logger.Info("demo scene selected", zap.String("scene", cfg.Scene), zap.Uint64("seed", cfg.Seed))
	return &Session{
		console: console.New(b),
		scene:   scene,
		name:    cfg.Scene,
		rand:    demo.NewRand(cfg.Seed),
	}, nil
}

// Console returns the session's console.
func (s *Session) Console() *console.Console {
	return s.console
}

// Scene returns the scene name.
func (s *Session) Scene() string {
	return s.name
}

// Tick returns the number of frames drawn.
func (s *Session) Tick() int {
	return s.tick
}

// Pointer is the mouse position in console pixels.
type Pointer struct {
	X, Y int
	In   bool
}

// Frame draws one frame and flushes every pending batch.
func (s *Session) Frame(p Pointer) {
	s.scene.Draw(&demo.Frame{
		Console: s.console,
		Rand:    s.rand,
		Tick:    s.tick,
		MouseX:  p.X,
		MouseY:  p.Y,
		MouseIn: p.In,
	})
	s.console.Flush()
	s.tick++
}

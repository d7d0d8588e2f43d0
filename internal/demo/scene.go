// Package demo holds the built-in scenes the runtime and the screenshot tool
// can show. Every scene is deterministic for a given seed and frame.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/engine/screen"
)

// Frame is what a scene gets to draw one frame.
type Frame struct {
	Console *console.Console
	Rand    *Rand
	// Tick counts frames since the scene started.
	Tick int
	// Mouse is the pointer in console pixels; MouseIn is false when it is
	// outside the screen.
	MouseX, MouseY int
	MouseIn        bool
}

// Scene draws one frame.
type Scene interface {
	Draw(f *Frame)
}

// SceneFunc adapts a function to Scene.
type SceneFunc func(f *Frame)

// Draw calls fn(f).
func (fn SceneFunc) Draw(f *Frame) { fn(f) }

var scenes = map[string]Scene{
	"sprites": SceneFunc(drawSprites),
	"rects":   SceneFunc(drawRects),
	"quads":   SceneFunc(drawQuads),
	"lines":   SceneFunc(drawLines),
	"text":    SceneFunc(drawText),
}

// Names returns the scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named scene.
func Lookup(name string) (Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// begin clears the screen and resets the palette state.
func begin(c *console.Console) {
	c.Cls(0)
	c.Palt()
	c.Pal()
	c.PaltSet(14, true)
}

// drawSprites scatters a few thousand sprites from the sixth sheet row.
func drawSprites(f *Frame) {
	c, r := f.Console, f.Rand
	begin(c)
	for i := 0; i < 4000; i++ {
		c.Spr(16*5+r.Intn(8), r.Intn(screen.Width), r.Intn(screen.Width))
	}
	c.Print("HELLO FROM VOX!", 0, 8, 8)
}

// drawRects scatters single pixels.
func drawRects(f *Frame) {
	c, r := f.Console, f.Rand
	begin(c)
	for i := 0; i < 100; i++ {
		x, y := r.Intn(screen.Width), r.Intn(screen.Width)
		c.Rect(x, y, x+1, y+1, r.Color())
	}
}

// drawQuads stacks larger rectangles, some partly off screen.
func drawQuads(f *Frame) {
	c, r := f.Console, f.Rand
	begin(c)
	for i := 0; i < 200; i++ {
		x, y := r.Intn(screen.Width+32)-16, r.Intn(screen.Width+32)-16
		w, h := r.Intn(24)+1, r.Intn(24)+1
		c.Rect(x, y, x+w, y+h, r.Color())
	}
}

// drawLines draws one long random polyline.
func drawLines(f *Frame) {
	c, r := f.Console, f.Rand
	begin(c)
	lastX, lastY := r.Intn(screen.Width), r.Intn(screen.Width)
	for i := 0; i < 1000; i++ {
		x, y := r.Intn(screen.Width), r.Intn(screen.Width)
		c.Line(lastX, lastY, x, y, r.Color())
		lastX, lastY = x, y
	}
}

// lineSpacing is the row distance used by the text scene.
const lineSpacing = console.LineHeight + 2

// drawText shows the palette, remapped text and the pointer position.
func drawText(f *Frame) {
	c := f.Console
	begin(c)

	const swatch = screen.Width / 16
	for i := 0; i < 16; i++ {
		c.Rect(i*swatch, 0, (i+1)*swatch, swatch, uint8(i))
	}

	c.Print("VOX 128X128 16 COLORS", 2, 12, 7)
	for i := 1; i < 16; i++ {
		c.Print(fmt.Sprintf("COLOR %2d", i), 2+(i-1)/8*64, 24+(i-1)%8*lineSpacing, uint8(i))
	}

	y := 24 + 8*lineSpacing + 4
	c.Print("THE QUICK BROWN FOX\nJUMPS OVER THE LAZY DOG", 2, y, 6)

	if f.MouseIn {
		c.Line(f.MouseX-2, f.MouseY, f.MouseX+2, f.MouseY, 8)
		c.Line(f.MouseX, f.MouseY-2, f.MouseX, f.MouseY+2, 8)
		c.Print(fmt.Sprintf("%d,%d", f.MouseX, f.MouseY), 2, screen.Width-8, 12)
	}
}

// voxshot renders demo scenes headlessly through the software backend and
// saves the frames as PNG files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/voxconsole/vox/internal/assets"
	"github.com/voxconsole/vox/internal/config"
	"github.com/voxconsole/vox/internal/console"
	"github.com/voxconsole/vox/internal/demo"
	"github.com/voxconsole/vox/internal/engine/software"
	"github.com/voxconsole/vox/internal/logger"
	"github.com/voxconsole/vox/internal/session"
	"github.com/voxconsole/vox/internal/snapshot"
	"github.com/voxconsole/vox/pkg/palette"
)

func main() {
	cfg := config.Default()

	// Own flag set: the config package registers the runtime flags on the global one.
	fs := flag.NewFlagSet("voxshot", flag.ExitOnError)
	fs.StringVar(&cfg.Demo.Scene, "demo", cfg.Demo.Scene, fmt.Sprintf("Demo scene %v", demo.Names()))
	fs.Uint64Var(&cfg.Demo.Seed, "seed", cfg.Demo.Seed, "Random seed")
	fs.StringVar(&cfg.Assets.Font, "font", cfg.Assets.Font, "Font sheet image")
	fs.StringVar(&cfg.Assets.Sprites, "sprites", cfg.Assets.Sprites, "Sprite sheet image")
	frames := fs.Int("frames", 1, "Frames to run before capturing")
	scale := fs.Int("scale", 4, "Integer upscale factor of the saved image")
	out := fs.String("out", "", "Output directory")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(os.Args[1:])

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	name, err := run(cfg, *frames, *scale, *out)
	if err != nil {
		logger.Error("capture failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	fmt.Println(name)
}

func run(cfg *config.Config, frames, scale int, outDir string) (string, error) {
	fb := software.New(&palette.Default)

	m := assets.NewManager(os.DirFS("."), &palette.Default)
	defer m.Close()
	sheets, err := session.LoadSheets(m, cfg.Assets)
	if err != nil {
		return "", err
	}
	fb.SetPage(console.PageFont, sheets.Font)
	fb.SetPage(console.PageSprites, sheets.Sprites)

	s, err := session.New(fb, cfg.Demo)
	if err != nil {
		return "", err
	}
	for i := 0; i < max(frames, 1); i++ {
		s.Frame(session.Pointer{})
	}

	submits, entries := fb.Stats()
	logger.Debug("frames rendered",
		zap.Int("frames", s.Tick()),
		zap.Int("submits", submits),
		zap.Int("entries", entries))

	return snapshot.NewCapture(outDir, cfg.Demo.Scene).Save(snapshot.Scale(fb.Paletted(), scale))
}

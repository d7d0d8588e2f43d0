package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 800 {
		t.Errorf("expected 800x800, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Renderer != RendererGL {
		t.Errorf("expected renderer %q, got %q", RendererGL, cfg.Graphics.Renderer)
	}
	if cfg.Assets.Font != "pico8_font.png" {
		t.Errorf("expected font pico8_font.png, got %s", cfg.Assets.Font)
	}
	if cfg.Assets.ShaderDir != "" {
		t.Errorf("expected built-in shaders by default, got dir %q", cfg.Assets.ShaderDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1024
  height: 768
  fullscreen: true
  vsync: false
  renderer: software
  debug_output: true

assets:
  font: fonts/font.png
  sprites: sheets/level1.bmp
  shader_dir: ./shaders

demo:
  scene: sprites
  seed: 42

logging:
  level: "debug"
  log_file: "vox.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Renderer != RendererSoftware {
		t.Errorf("expected software renderer, got %q", cfg.Graphics.Renderer)
	}
	if !cfg.Graphics.DebugOutput {
		t.Error("expected debug_output to be true")
	}
	if cfg.Assets.Sprites != "sheets/level1.bmp" {
		t.Errorf("expected sprites sheets/level1.bmp, got %s", cfg.Assets.Sprites)
	}
	if cfg.Assets.ShaderDir != "./shaders" {
		t.Errorf("expected shader dir ./shaders, got %s", cfg.Assets.ShaderDir)
	}
	if cfg.Demo.Scene != "sprites" || cfg.Demo.Seed != 42 {
		t.Errorf("expected demo sprites/42, got %s/%d", cfg.Demo.Scene, cfg.Demo.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "vox.log" {
		t.Errorf("expected log file 'vox.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Renderer = "vulkan"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown renderer")
	}

	cfg = Default()
	cfg.Graphics.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("config.yaml", []byte("graphics:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.DebugOutput {
					t.Error("expected debug output enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 1024
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 1024 {
					t.Errorf("expected 1280x1024, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "renderer, demo and shader flags",
			setup: func() {
				*flagRenderer = RendererSoftware
				*flagScene = "lines"
				*flagShaders = "assets/shaders"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Renderer != RendererSoftware {
					t.Errorf("expected software renderer, got %s", cfg.Graphics.Renderer)
				}
				if cfg.Demo.Scene != "lines" {
					t.Errorf("expected scene lines, got %s", cfg.Demo.Scene)
				}
				if cfg.Assets.ShaderDir != "assets/shaders" {
					t.Errorf("expected shader dir assets/shaders, got %s", cfg.Assets.ShaderDir)
				}
			},
			teardown: func() {
				*flagRenderer = ""
				*flagScene = ""
				*flagShaders = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 600
  height: 500
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 500 {
		t.Errorf("expected height 500 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSave(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir follows XDG_CONFIG_HOME on linux only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := Default()
	cfg.Graphics.Renderer = RendererSoftware
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, filepath.Join(dir, "vox", "config.yaml")); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Graphics.Renderer != RendererSoftware {
		t.Errorf("expected renderer %s after reload, got %s", RendererSoftware, loaded.Graphics.Renderer)
	}

	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	*flagConfig = explicit
	defer func() { *flagConfig = "" }()
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save with --config failed: %v", err)
	}
	if _, err := os.Stat(explicit); err != nil {
		t.Errorf("expected config at --config path: %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Demo.Scene = "text"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Demo.Scene != "text" {
		t.Errorf("expected scene text after reload, got %s", loaded.Demo.Scene)
	}
}

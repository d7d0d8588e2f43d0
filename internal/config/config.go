// Package config handles console configuration loading and management.
package config

// Config holds all runtime settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Renderer names accepted by GraphicsConfig.Renderer.
const (
	RendererGL       = "gl"
	RendererSoftware = "software"
)

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	Renderer    string `yaml:"renderer"`     // "gl" (instanced batches) or "software" (CPU framebuffer blit)
	DebugOutput bool   `yaml:"debug_output"` // log GL validation messages
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	Font      string `yaml:"font"`       // system font sheet
	Sprites   string `yaml:"sprites"`    // user sprite sheet
	ShaderDir string `yaml:"shader_dir"` // directory with <name>.vert/.frag; empty uses built-in shaders
}

// DemoConfig selects the scene drawn by the runtime.
type DemoConfig struct {
	Scene string `yaml:"scene"`
	Seed  uint64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       800,
			Height:      800,
			Fullscreen:  false,
			VSync:       true,
			Renderer:    RendererGL,
			DebugOutput: false,
		},
		Assets: AssetsConfig{
			Font:    "pico8_font.png",
			Sprites: "sprites1.png",
		},
		Demo: DemoConfig{
			Scene: "rects",
			Seed:  0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

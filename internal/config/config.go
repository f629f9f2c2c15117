// Package config handles scene viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and context settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Title      string `yaml:"title"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	// TexturesDir is searched for texture images before the embedded assets.
	TexturesDir string `yaml:"textures_dir"`
	// Description optionally replaces the embedded scene description.
	Description string `yaml:"description"`
	// TextureMap selects texture-mapped objects by one-letter codes
	// (c, d, q, x). Empty maps every object.
	TextureMap []string `yaml:"texture_map"`
	// MaxTextureSize caps texture dimensions; larger images are downscaled.
	MaxTextureSize int `yaml:"max_texture_size"`
	// FrameInterval is how long the loop waits for input when idle.
	FrameInterval time.Duration `yaml:"frame_interval"`
	// CaptureDir receives F12 frame captures.
	CaptureDir string `yaml:"capture_dir"`
	// CaptureFormat is png or bmp.
	CaptureFormat string `yaml:"capture_format"`
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
			Width:      1500,
			Height:     1200,
			Fullscreen: false,
			VSync:      true,
			Title:      "Texture Mapping",
		},
		Scene: SceneConfig{
			TexturesDir:    "textures",
			MaxTextureSize: 2048,
			FrameInterval:  16 * time.Millisecond,
			CaptureDir:     "captures",
			CaptureFormat:  "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/Faultbox/texscene/internal/engine/geometry"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1500 {
		t.Errorf("expected width 1500, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1200 {
		t.Errorf("expected height 1200, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.Title != "Texture Mapping" {
		t.Errorf("expected title 'Texture Mapping', got %q", cfg.Graphics.Title)
	}

	if cfg.Scene.TexturesDir != "textures" {
		t.Errorf("expected textures dir 'textures', got %s", cfg.Scene.TexturesDir)
	}
	if len(cfg.Scene.TextureMap) != 0 {
		t.Errorf("expected empty texture map, got %v", cfg.Scene.TextureMap)
	}
	if cfg.Scene.FrameInterval != 16*time.Millisecond {
		t.Errorf("expected frame interval 16ms, got %v", cfg.Scene.FrameInterval)
	}
	if cfg.Scene.CaptureDir != "captures" || cfg.Scene.CaptureFormat != "png" {
		t.Errorf("expected png captures in captures/, got %s in %s", cfg.Scene.CaptureFormat, cfg.Scene.CaptureDir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 800
  height: 600
  fullscreen: true
  vsync: false

scene:
  textures_dir: "/srv/textures"
  texture_map: ["c", "q"]
  max_texture_size: 512
  frame_interval: 33ms

logging:
  level: "debug"
  log_file: "texscene.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.Title != "Texture Mapping" {
		t.Errorf("title should keep its default, got %q", cfg.Graphics.Title)
	}
	if cfg.Scene.TexturesDir != "/srv/textures" {
		t.Errorf("expected textures dir /srv/textures, got %s", cfg.Scene.TexturesDir)
	}
	if len(cfg.Scene.TextureMap) != 2 || cfg.Scene.TextureMap[1] != "q" {
		t.Errorf("expected texture map [c q], got %v", cfg.Scene.TextureMap)
	}
	if cfg.Scene.MaxTextureSize != 512 {
		t.Errorf("expected max texture size 512, got %d", cfg.Scene.MaxTextureSize)
	}
	if cfg.Scene.FrameInterval != 33*time.Millisecond {
		t.Errorf("expected frame interval 33ms, got %v", cfg.Scene.FrameInterval)
	}
	if cfg.Logging.LogFile != "texscene.log" {
		t.Errorf("expected log file 'texscene.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
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

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.TextureMap = []string{"d"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if len(loaded.Scene.TextureMap) != 1 || loaded.Scene.TextureMap[0] != "d" {
		t.Errorf("texture map not preserved: %v", loaded.Scene.TextureMap)
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
				*flagWidth = 1024
				*flagHeight = 768
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
					t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "textures flag",
			setup: func() { *flagTextures = "assets/img" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.TexturesDir != "assets/img" {
					t.Errorf("expected textures dir assets/img, got %s", cfg.Scene.TexturesDir)
				}
			},
			teardown: func() { *flagTextures = "" },
		},
		{
			name: "positional texture map",
			setup: func() {
				if err := flag.CommandLine.Parse([]string{"c", "d"}); err != nil {
					t.Fatal(err)
				}
			},
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Scene.TextureMap) != 2 || cfg.Scene.TextureMap[0] != "c" {
					t.Errorf("expected texture map [c d], got %v", cfg.Scene.TextureMap)
				}
			},
			teardown: func() { _ = flag.CommandLine.Parse(nil) },
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
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
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
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestExpandPaths(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	cfg := Default()
	cfg.Scene.TexturesDir = "~/textures"
	cfg.Scene.CaptureDir = "/tmp/captures"
	if err := cfg.expandPaths(); err != nil {
		t.Fatalf("expandPaths: %v", err)
	}
	if want := filepath.Join(home, "textures"); cfg.Scene.TexturesDir != want {
		t.Errorf("expected %s, got %s", want, cfg.Scene.TexturesDir)
	}
	if cfg.Scene.CaptureDir != "/tmp/captures" {
		t.Errorf("absolute path changed: %s", cfg.Scene.CaptureDir)
	}

	cfg.Scene.Description = "~other/scene.yaml"
	if err := cfg.expandPaths(); err == nil {
		t.Error("expected error for ~user paths")
	}
}

func TestParseSelection(t *testing.T) {
	all := []geometry.Shape{geometry.Cylinder, geometry.Fork, geometry.Cube}

	tests := []struct {
		name    string
		args    []string
		mapped  []geometry.Shape
		plain   []geometry.Shape
		ignored int
	}{
		{name: "no args maps all", args: nil, mapped: all},
		{name: "cylinder only", args: []string{"c"}, mapped: []geometry.Shape{geometry.Cylinder},
			plain: []geometry.Shape{geometry.Discs, geometry.Sphere, geometry.Cube}},
		{name: "first letter counts", args: []string{"discs", "quad"},
			mapped: []geometry.Shape{geometry.Discs, geometry.Sphere}, plain: []geometry.Shape{geometry.Cylinder}},
		{name: "x maps nothing", args: []string{"x"}, plain: all},
		{name: "bad letter keeps default", args: []string{"z"}, mapped: all, ignored: 1},
		{name: "bad letter with good", args: []string{"z", "q", ""},
			mapped: []geometry.Shape{geometry.Sphere}, plain: []geometry.Shape{geometry.Cylinder}, ignored: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, ignored := ParseSelection(tt.args)
			for _, s := range tt.mapped {
				if !sel[s] {
					t.Errorf("%v should be mapped", s)
				}
			}
			for _, s := range tt.plain {
				if sel[s] {
					t.Errorf("%v should not be mapped", s)
				}
			}
			if len(ignored) != tt.ignored {
				t.Errorf("ignored = %v, want %d entries", ignored, tt.ignored)
			}
		})
	}
}

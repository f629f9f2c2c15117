// Package app wires the scene viewer together: window, GL resources and
// the redraw loop.
package app

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/texscene/internal/assets"
	"github.com/Faultbox/texscene/internal/config"
	"github.com/Faultbox/texscene/internal/engine/buffers"
	"github.com/Faultbox/texscene/internal/engine/capture"
	"github.com/Faultbox/texscene/internal/engine/geometry"
	"github.com/Faultbox/texscene/internal/engine/input"
	"github.com/Faultbox/texscene/internal/engine/shader"
	"github.com/Faultbox/texscene/internal/engine/texture"
	"github.com/Faultbox/texscene/internal/engine/window"
	"github.com/Faultbox/texscene/internal/logger"
	"github.com/Faultbox/texscene/internal/scene"
)

var _ scene.Drawable = (*buffers.BufferSet)(nil)

// App is the running viewer.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	window *window.Window
	input  *input.Input
	frames *capture.Capturer
	watch  *descWatcher

	desc     *scene.Description
	driver   *scene.Driver
	programs [scene.NumPrograms]*shader.Program
	sets     [geometry.NumShapes]*buffers.BufferSet
	textures []uint32

	width, height int
}

// New opens the window and uploads every mesh, shader and texture.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	format, err := capture.ParseFormat(cfg.Scene.CaptureFormat)
	if err != nil {
		return nil, err
	}
	a.frames = capture.New(cfg.Scene.CaptureDir, "texscene", format)

	desc, err := loadDescription(cfg.Scene.Description)
	if err != nil {
		return nil, err
	}
	a.desc = desc

	sel, ignored := cfg.TextureSelection()
	for _, arg := range ignored {
		a.log.Warn("ignoring texture map argument", zap.String("arg", arg))
	}
	reg, err := scene.NewRegistry(desc, sel)
	if err != nil {
		return nil, err
	}
	a.driver = scene.NewDriver(reg, desc.Light, logger.Named("scene"))

	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	a.log.Info("opengl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0, 0, 0, 1)
	a.width, a.height = a.window.DrawableSize()
	gl.Viewport(0, 0, int32(a.width), int32(a.height))

	if err := a.initPrograms(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.initMeshes(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.initTextures(); err != nil {
		a.Close()
		return nil, err
	}

	if path := cfg.Scene.Description; path != "" {
		if a.watch, err = watchDescription(path, a.log); err != nil {
			a.log.Warn("scene description will not reload", zap.Error(err))
		}
	}

	a.log.Info("scene ready", zap.Int("objects", len(reg.All())), zap.Int("textures", len(a.textures)))
	return a, nil
}

// loadDescription reads the scene from path, or the built-in scene when
// path is empty.
func loadDescription(path string) (*scene.Description, error) {
	data := assets.SceneDescription()
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scene description: %w", err)
		}
	}
	return scene.ParseDescription(data)
}

func (a *App) initPrograms() error {
	for p := scene.Program(0); p < scene.NumPrograms; p++ {
		vs, fs, err := assets.ShaderSource(p.String())
		if err != nil {
			return err
		}
		prog, err := shader.NewProgram(p.String(), vs, fs)
		if err != nil {
			return err
		}
		a.programs[p] = prog
	}
	return nil
}

func (a *App) initMeshes() error {
	lib := geometry.NewLibrary(logger.Named("geometry"))
	for _, o := range a.driver.Registry().All() {
		mesh, err := lib.Mesh(o.Shape)
		if err != nil {
			return err
		}
		packed, err := buffers.Pack(mesh)
		if err != nil {
			return fmt.Errorf("packing %v: %w", o.Shape, err)
		}
		set, err := buffers.Upload(packed)
		if err != nil {
			return fmt.Errorf("uploading %v: %w", o.Shape, err)
		}
		a.sets[o.Shape] = set
		o.Buffers = set
	}
	a.log.Debug("meshes uploaded", zap.Int("families", lib.Built()))
	return nil
}

func (a *App) initTextures() error {
	m := assets.NewManager()
	defer m.Close()
	if dir := a.cfg.Scene.TexturesDir; dir != "" {
		if err := m.AddDir(dir); err != nil {
			a.log.Warn("texture directory unavailable", zap.Error(err))
		}
	}

	for _, t := range a.desc.Textures {
		img := loadTexture(m, t.File, a.cfg.Scene.MaxTextureSize, a.log)
		id, err := texture.Upload(t.Unit, img)
		if err != nil {
			return fmt.Errorf("texture %s: %w", t.File, err)
		}
		a.textures = append(a.textures, id)
	}
	hits, misses := m.CacheStats()
	a.log.Debug("textures loaded", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))
	return nil
}

// loadTexture decodes one texture image. Missing or unreadable files are
// replaced by a checkerboard so the object stays visible.
func loadTexture(m *assets.Manager, file string, maxSize int, log *zap.Logger) *image.RGBA {
	data, err := m.Load(file)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			log.Warn("texture not found, using fallback", zap.String("file", file))
		} else {
			log.Warn("texture unreadable, using fallback", zap.String("file", file), zap.Error(err))
		}
		return texture.Fallback()
	}

	img, format, err := texture.Decode(data, maxSize)
	if err != nil {
		log.Warn("texture undecodable, using fallback", zap.String("file", file), zap.Error(err))
		return texture.Fallback()
	}
	log.Debug("texture loaded",
		zap.String("file", file),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return img
}

// Close releases GL resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.watch != nil {
		if err := a.watch.Close(); err != nil {
			a.log.Warn("closing scene watcher", zap.Error(err))
		}
		a.watch = nil
	}

	for i, set := range a.sets {
		if set != nil {
			set.Delete()
			a.sets[i] = nil
		}
	}
	texture.Delete(a.textures...)
	a.textures = nil
	for i, p := range a.programs {
		if p != nil {
			p.Delete()
			a.programs[i] = nil
		}
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

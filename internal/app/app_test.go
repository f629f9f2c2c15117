package app

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/texscene/internal/assets"
	"github.com/Faultbox/texscene/internal/config"
	"github.com/Faultbox/texscene/internal/engine/geometry"
	"github.com/Faultbox/texscene/internal/engine/input"
	"github.com/Faultbox/texscene/internal/engine/texture"
	"github.com/Faultbox/texscene/internal/scene"
)

func TestLoadDescriptionEmbedded(t *testing.T) {
	d, err := loadDescription("")
	require.NoError(t, err)
	assert.Len(t, d.Objects, int(geometry.NumShapes))
}

func TestLoadDescriptionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, assets.SceneDescription(), 0o644))

	d, err := loadDescription(path)
	require.NoError(t, err)
	assert.Len(t, d.Textures, 10)
}

func TestLoadDescriptionErrors(t *testing.T) {
	_, err := loadDescription(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading scene description")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects: []\n"), 0o644))
	_, err = loadDescription(path)
	assert.Error(t, err)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadTexture(t *testing.T) {
	m := assets.NewManager()
	defer m.Close()
	m.AddFS("test", fstest.MapFS{
		"wood.png":   {Data: encodePNG(t, 64, 32)},
		"broken.jpg": {Data: []byte("not an image")},
	})
	log := zap.NewNop()

	img := loadTexture(m, "wood.png", 16, log)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	fallback := texture.Fallback()
	assert.Equal(t, fallback.Pix, loadTexture(m, "missing.png", 0, log).Pix)
	assert.Equal(t, fallback.Pix, loadTexture(m, "broken.jpg", 0, log).Pix)
}

type unreadableFS struct{}

func (unreadableFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestLoadTextureUnreadable(t *testing.T) {
	m := assets.NewManager()
	defer m.Close()
	m.AddFS("locked", unreadableFS{})

	core, logs := observer.New(zap.WarnLevel)
	img := loadTexture(m, "wood.png", 0, zap.New(core))

	assert.Equal(t, texture.Fallback().Pix, img.Pix)
	assert.Equal(t, 1, logs.FilterMessage("texture unreadable, using fallback").Len())
	assert.Zero(t, logs.FilterMessage("texture not found, using fallback").Len())
}

func TestLoadTextureJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	m := assets.NewManager()
	defer m.Close()
	m.AddFS("test", fstest.MapFS{"coffee.jpg": {Data: buf.Bytes()}})

	core, logs := observer.New(zap.WarnLevel)
	img := loadTexture(m, "coffee.jpg", 0, zap.New(core))
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Zero(t, logs.Len(), "a valid JPEG must not fall back")
}

func TestDescriptionWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, assets.SceneDescription(), 0o644))

	w, err := watchDescription(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, assets.SceneDescription(), 0o644))
	require.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
}

func newTestApp(t *testing.T, path string) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Scene.Description = path

	desc, err := loadDescription(path)
	require.NoError(t, err)
	sel, _ := cfg.TextureSelection()
	reg, err := scene.NewRegistry(desc, sel)
	require.NoError(t, err)

	return &App{
		cfg:    cfg,
		log:    zap.NewNop(),
		desc:   desc,
		driver: scene.NewDriver(reg, desc.Light, nil),
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, assets.SceneDescription(), 0o644))
	a := newTestApp(t, path)
	a.driver.Registry().Get(geometry.Teapot).Angle = 12
	a.driver.ClearDirty()

	edited := bytes.Replace(assets.SceneDescription(), []byte("fovy: 60"), []byte("fovy: 45"), 1)
	require.NoError(t, os.WriteFile(path, edited, 0o644))
	a.reload()

	assert.Equal(t, float32(45), a.desc.Camera.FovY)
	assert.Equal(t, float32(12), a.driver.Registry().Get(geometry.Teapot).Angle)
	assert.True(t, a.driver.Dirty())
}

func TestReloadKeepsSceneOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, assets.SceneDescription(), 0o644))
	a := newTestApp(t, path)
	reg := a.driver.Registry()
	a.driver.ClearDirty()

	require.NoError(t, os.WriteFile(path, []byte("objects: [\n"), 0o644))
	a.reload()

	assert.Same(t, reg, a.driver.Registry())
	assert.False(t, a.driver.Dirty())
}

func TestEscapeKeyQuits(t *testing.T) {
	assert.Equal(t, input.KeyEscape, scene.KeyEscape)

	a := newTestApp(t, "")
	assert.True(t, a.driver.HandleKey(input.KeyEscape))
}

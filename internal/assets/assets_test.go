package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestEmbeddedAssets(t *testing.T) {
	if !strings.Contains(string(SceneDescription()), "objects:") {
		t.Error("scene description has no objects section")
	}

	for _, name := range []string{"phong", "texture"} {
		v, f, err := ShaderSource(name)
		if err != nil {
			t.Fatalf("ShaderSource(%s): %v", name, err)
		}
		if !strings.HasPrefix(v, "#version 410") || !strings.HasPrefix(f, "#version 410") {
			t.Errorf("%s: missing version directive", name)
		}
	}

	if _, _, err := ShaderSource("toon"); err == nil {
		t.Error("expected error for unknown shader")
	}
}

func TestManagerPriority(t *testing.T) {
	m := NewManager()
	m.AddFS("low", fstest.MapFS{
		"a.png": {Data: []byte("low-a")},
		"b.png": {Data: []byte("low-b")},
	})
	m.AddFS("high", fstest.MapFS{
		"a.png": {Data: []byte("high-a")},
	})

	tests := []struct {
		name string
		want string
	}{
		{"a.png", "high-a"},
		{"b.png", "low-b"},
		{"scene.yaml", ""},
	}
	for _, tt := range tests {
		data, err := m.Load(tt.name)
		if err != nil {
			t.Fatalf("Load(%s): %v", tt.name, err)
		}
		if tt.want != "" && string(data) != tt.want {
			t.Errorf("Load(%s) = %q, want %q", tt.name, data, tt.want)
		}
	}

	if _, err := m.Load("missing.jpg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestManagerCache(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{"x.bmp": {Data: []byte("x")}})

	for i := 0; i < 3; i++ {
		if _, err := m.Load("x.bmp"); err != nil {
			t.Fatal(err)
		}
	}
	hits, misses := m.CacheStats()
	if hits != 2 || misses != 1 {
		t.Errorf("cache stats = %d hits, %d misses; want 2, 1", hits, misses)
	}

	m.Close()
	if _, err := m.Load("x.bmp"); err == nil {
		t.Error("expected error after Close")
	}
}

func TestManagerAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "coffee.jpg"), []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	data, err := m.Load("coffee.jpg")
	if err != nil || string(data) != "jpeg" {
		t.Errorf("Load(coffee.jpg) = %q, %v", data, err)
	}

	if err := m.AddDir(filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for missing dir")
	}
	if err := m.AddDir(filepath.Join(dir, "coffee.jpg")); err == nil {
		t.Error("expected error for file path")
	}
}

var errDisk = errors.New("disk read failed")

// failingFS has every file but can read none of them.
type failingFS struct{}

func (failingFS) Open(name string) (fs.File, error) {
	if name == "missing.png" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: errDisk}
}

func TestManagerReadError(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{"wood.png": {Data: []byte("low")}})
	m.AddFS("broken", failingFS{})

	_, err := m.Load("wood.png")
	if !errors.Is(err, errDisk) {
		t.Errorf("Load(wood.png) error = %v, want the read error", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("read failure reported as not found")
	}

	if _, err := m.Load("missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing.png) error = %v, want ErrNotFound", err)
	}
}

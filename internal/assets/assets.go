// Package assets locates scene resources: the embedded scene description
// and shaders, and texture images on disk.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
)

//go:embed data
var embedded embed.FS

// ErrNotFound is returned when no source holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Embedded returns the built-in asset tree.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// SceneDescription returns the built-in scene description.
func SceneDescription() []byte {
	data, err := fs.ReadFile(Embedded(), "scene.yaml")
	if err != nil {
		panic(err)
	}
	return data
}

// ShaderSource returns the vertex and fragment source of a bundled program.
func ShaderSource(name string) (vertex, fragment string, err error) {
	v, err := fs.ReadFile(Embedded(), path.Join("shaders", name+".vert"))
	if err != nil {
		return "", "", fmt.Errorf("shader %s: %w", name, err)
	}
	f, err := fs.ReadFile(Embedded(), path.Join("shaders", name+".frag"))
	if err != nil {
		return "", "", fmt.Errorf("shader %s: %w", name, err)
	}
	return string(v), string(f), nil
}

type source struct {
	name string
	fsys fs.FS
}

// Manager loads files from an ordered list of sources.
// Sources are searched in reverse order (last added = highest priority).
type Manager struct {
	sources []source
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager backed by the embedded assets.
func NewManager() *Manager {
	m := &Manager{cache: NewCache()}
	m.AddFS("embedded", Embedded())
	return m
}

// AddFS adds a file system source.
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, fsys: fsys})
	m.mu.Unlock()
}

// AddDir adds a directory on disk as a source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// Load reads a slash-separated path from the highest-priority source that
// has it. A source that has the file but fails to read it stops the search.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i].fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s from %s: %w", name, m.sources[i].name, err)
		}
		m.cache.Set(name, data)
		return data, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// CacheStats returns how many loads were served from and missed the cache.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

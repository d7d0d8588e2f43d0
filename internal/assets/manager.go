package assets

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/voxconsole/vox/internal/logger"
	"github.com/voxconsole/vox/pkg/palette"
)

// Manager imports sprite sheets from a filesystem and caches the results.
type Manager struct {
	fsys    fs.FS
	palette *palette.Palette
	cache   *Cache
}

// NewManager creates a manager reading from fsys and quantizing with p.
func NewManager(fsys fs.FS, p *palette.Palette) *Manager {
	return &Manager{
		fsys:    fsys,
		palette: p,
		cache:   NewCache(),
	}
}

// Sheet loads and quantizes the named image, returning a cached sheet when
// the same name was loaded before.
func (m *Manager) Sheet(name string) (*Sheet, error) {
	if s, ok := m.cache.Get(name); ok {
		return s, nil
	}

	img, err := LoadImage(m.fsys, name)
	if err != nil {
		logger.Error("unable to load image", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("loading sheet %s: %w", name, err)
	}

	b := img.Bounds()
	if b.Dx() != SheetSize || b.Dy() != SheetSize {
		logger.Warn("sheet is not 128x128, cropping or padding",
			zap.String("file", name),
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()),
		)
	}

	s := SheetFromImage(img, m.palette)
	m.cache.Set(name, s)
	logger.Debug("sheet loaded", zap.String("file", name))
	return s, nil
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses, entries int) {
	return m.cache.Stats()
}

// Close drops all cached sheets.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache of imported sheets.
type Cache struct {
	data   map[string]*Sheet
	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string]*Sheet)}
}

// Get returns a cached sheet.
func (c *Cache) Get(name string) (*Sheet, bool) {
	s, ok := c.data[name]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return s, ok
}

// Set stores a sheet.
func (c *Cache) Set(name string, s *Sheet) {
	c.data[name] = s
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.data = make(map[string]*Sheet)
}

// Stats returns hit and miss counts and the number of entries.
func (c *Cache) Stats() (hits, misses, entries int) {
	return c.hits, c.misses, len(c.data)
}

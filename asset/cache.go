package asset

import (
	"fmt"
	"sync"
)

// Cache memoizes a Loader by path so shared resources load once
// Failed loads are not cached and will be retried on the next request
type Cache struct {
	mu     sync.Mutex
	loader Loader
	images map[string]Image
	fonts  map[string]Font
	loads  int
}

// NewCache wraps loader
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader: loader,
		images: make(map[string]Image),
		fonts:  make(map[string]Font),
	}
}

// LoadImage returns the cached image for path, loading it on first use
func (c *Cache) LoadImage(path string) (Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[path]; ok {
		return img, nil
	}
	c.loads++
	img, err := c.loader.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", path, err)
	}
	c.images[path] = img
	return img, nil
}

// LoadFont returns the cached font for path, loading it on first use
func (c *Cache) LoadFont(path string) (Font, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fonts[path]; ok {
		return f, nil
	}
	c.loads++
	f, err := c.loader.LoadFont(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	c.fonts[path] = f
	return f, nil
}

// Loads returns how many requests reached the underlying loader
func (c *Cache) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

// Unload drops every cached resource, used when a screen is torn down
func (c *Cache) Unload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.images)
	clear(c.fonts)
}

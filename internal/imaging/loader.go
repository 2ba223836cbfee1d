package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// ImageCache provides thread-safe caching of loaded images and their derived
// luminance grids, keyed by file path.
//
// Lab runs typically extract several feature sets (corner maps, descriptors
// at more than one configuration) from the same source image; the cache
// keeps both the decoded image and its luminance conversion so neither is
// redone per extraction. Entries stay in memory until Evict or Clear is
// called.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
	grids  map[string][][]float64
}

// NewImageCache creates an empty cache ready for use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
		grids:  make(map[string][][]float64),
	}
}

// Load returns the decoded image for a path, reading and decoding it from
// disk on first use. Supported formats are PNG, JPEG, and GIF.
//
// Images are cached by the exact path string, so relative and absolute paths
// to the same file occupy separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadLuminance returns the luminance grid for a path, decoding the image
// and converting it on first use. The grid is shared between callers and
// must be treated as read-only.
func (c *ImageCache) LoadLuminance(path string) ([][]float64, error) {
	c.mu.RLock()
	if grid, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return grid, nil
	}
	c.mu.RUnlock()

	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	grid, err := Luminance(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.mu.Lock()
	c.grids[path] = grid
	c.mu.Unlock()

	return grid, nil
}

// Evict removes a path's image and grid from the cache. Unknown paths are
// ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	delete(c.grids, path)
	c.mu.Unlock()
}

// Clear removes every cached entry, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.grids = make(map[string][][]float64)
	c.mu.Unlock()
}

package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Thumbnail sizes
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ImageCache keeps optimized product images on disk
type ImageCache struct {
	dir string
}

// NewImageCache creates the cache directory if it doesn't exist
func NewImageCache(dir string) (*ImageCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &ImageCache{dir: dir}, nil
}

// Path returns the cache file path for a product image and size
func (c *ImageCache) Path(productID, size string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, productID)
	return filepath.Join(c.dir, fmt.Sprintf("product_%s_%s.jpg", safe, size))
}

// Get reads a cached image, reporting false when it is not cached
func (c *ImageCache) Get(productID, size string) ([]byte, bool) {
	data, err := os.ReadFile(c.Path(productID, size))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put saves an optimized image to the cache
func (c *ImageCache) Put(productID, size string, data []byte) error {
	path := c.Path(productID, size)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	zap.S().Debugf("✅ Image cached: %s", path)
	return nil
}

// OptimizeImage converts an image to JPEG, shrinking it to fit the requested size
// Unknown sizes are treated as medium. Images are never enlarged.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if size == SizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		zap.S().Debugf("🔄 Resizing image: %dx%d to fit %d", bounds.Dx(), bounds.Dy(), maxDim)
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache keeps decoded images keyed by the exact path string they were
// loaded from. It is safe for concurrent use.
//
// Cached images stay in memory until Evict or Clear. The tool server keeps
// one cache for its lifetime; the command line loads a single image per run.
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/shape.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grid := imaging.NewPixelGrid(img)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

type cachedImage struct {
	img    image.Image
	format string
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported; the format is sniffed
// from the file contents, not the extension.
func (c *ImageCache) Load(path string) (image.Image, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(path string) (cachedImage, error) {
	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to decode image: %w", err)
	}

	entry := cachedImage{img: img, format: format}
	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes path from the cache so the next Load reads the file again.
// Evicting a path that is not cached does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo summarizes an image as input for shape recognition.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the name of the decoder that read the file: "png", "jpeg",
	// "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// ForegroundPixels counts exactly opaque black pixels, the ones the
	// recognizer treats as the shape.
	ForegroundPixels int `json:"foreground_pixels"`

	// OtherPixels counts pixels that are neither exactly black nor exactly
	// white, such as anti-aliased edges or JPEG artifacts. They are all
	// treated as background.
	OtherPixels int `json:"other_pixels"`

	// Binary is true when every pixel is exactly black or exactly white.
	Binary bool `json:"binary"`
}

// LoadImageInfo loads the image at path through cache and reports its size,
// format and how many of its pixels the recognizer would see as the shape.
//
// A non-binary image can still be recognized, but only its exactly black
// pixels take part, so gray or colored outlines are ignored.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	grid := NewPixelGrid(entry.img)
	info := &ImageInfo{
		Width:  grid.Width(),
		Height: grid.Height(),
		Format: entry.format,
	}
	for _, p := range grid.pix {
		switch p {
		case Black:
			info.ForegroundPixels++
		case White:
		default:
			info.OtherPixels++
		}
	}
	info.Binary = info.OtherPixels == 0

	return info, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the size of the image at path, loading it through
// cache if needed.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

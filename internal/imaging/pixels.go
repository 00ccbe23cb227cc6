package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is a single 8-bit, non-premultiplied RGBA value.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	// White is the canonical background pixel.
	White = Pixel{R: 255, G: 255, B: 255, A: 255}

	// Black is the only pixel value treated as foreground.
	Black = Pixel{R: 0, G: 0, B: 0, A: 255}
)

// IsForeground reports whether p is exactly opaque black.
func (p Pixel) IsForeground() bool {
	return p == Black
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// PixelGrid is a width×height block of pixels stored in row-major order
// (index = y*width + x).
//
// A PixelGrid owns its pixel buffer and exposes it read-only; it is never
// modified after construction, so it is safe to share between goroutines.
type PixelGrid struct {
	width  int
	height int
	pix    []Pixel
}

// NewPixelGrid copies img into a new PixelGrid.
//
// The grid's origin is the top-left corner of img.Bounds(), so a sub-image
// with a non-zero Min is re-based to (0,0). Every pixel is converted through
// color.NRGBAModel, which undoes alpha premultiplication; an opaque black
// pixel in any color model becomes Black.
func NewPixelGrid(img image.Image) *PixelGrid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pix := make([]Pixel, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pix[y*width+x] = Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}

	return &PixelGrid{width: width, height: height, pix: pix}
}

// NewPixelGridFromPixels builds a grid from a row-major pixel slice.
// The slice is copied; later changes to pix do not affect the grid.
func NewPixelGridFromPixels(width, height int, pix []Pixel) (*PixelGrid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match grid size %dx%d", len(pix), width, height)
	}

	owned := make([]Pixel, len(pix))
	copy(owned, pix)
	return &PixelGrid{width: width, height: height, pix: owned}, nil
}

// LoadPixelGrid loads the image at path through the cache and converts it
// to a PixelGrid.
func LoadPixelGrid(cache *ImageCache, path string) (*PixelGrid, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return NewPixelGrid(img), nil
}

// Width returns the number of columns.
func (g *PixelGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *PixelGrid) Height() int { return g.height }

// Empty reports whether the grid has no pixels at all.
func (g *PixelGrid) Empty() bool { return g.width == 0 || g.height == 0 }

// At returns the pixel at (x, y). It panics if the coordinates are outside
// the grid, like indexing a slice.
func (g *PixelGrid) At(x, y int) Pixel {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("imaging: pixel (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.pix[y*g.width+x]
}

// IsForeground reports whether (x, y) lies inside the grid and holds a
// foreground pixel. Coordinates outside the grid are background.
func (g *PixelGrid) IsForeground(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.pix[y*g.width+x].IsForeground()
}

// Image returns a copy of the grid as an *image.NRGBA.
func (g *PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for i, p := range g.pix {
		img.Pix[i*4] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = p.A
	}
	return img
}

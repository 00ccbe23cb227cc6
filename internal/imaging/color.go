package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit, non-premultiplied components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes the color of one pixel and whether the recognizer
// treats it as part of the shape.
type ColorResult struct {
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Hex        string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA       RGBAColor `json:"rgba"` // Non-premultiplied components
	HSL        HSLColor  `json:"hsl"`
	Foreground bool      `json:"foreground"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in several formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// A fully transparent pixel has no meaningful hue; its Hex and HSL are
// reported as black.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := img.At(x, y)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	px := Pixel{R: n.R, G: n.G, B: n.B, A: n.A}

	result := &ColorResult{
		X:          x,
		Y:          y,
		Hex:        "#000000",
		RGBA:       RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		Foreground: px.IsForeground(),
	}

	if cf, ok := colorful.MakeColor(c); ok {
		result.Hex = strings.ToUpper(cf.Clamped().Hex())
		h, s, l := cf.Hsl()
		if math.IsNaN(h) {
			h = 0
		}
		result.HSL = HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		}
	}

	return result, nil
}

// ParseHexColor parses "#RRGGBB" (the leading '#' is optional) into an
// opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	cf, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

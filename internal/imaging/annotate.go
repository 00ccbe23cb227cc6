package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// DefaultAnnotateScale is the upscale factor used when AnnotateOptions.Scale
// is not positive.
const DefaultAnnotateScale = 8

// MaxAnnotateScale bounds the upscale factor accepted from callers; the
// annotated image holds Scale² pixels for every source pixel.
const MaxAnnotateScale = 64

// AnnotateOptions controls how Annotate renders its markers.
type AnnotateOptions struct {
	// Scale is the integer nearest-neighbor upscale factor. Pixels become
	// Scale×Scale blocks so single-pixel marks stay visible.
	Scale int

	// MarkerColor is used for the crosses and their index labels.
	// Defaults to opaque red.
	MarkerColor color.Color

	// PathColor tints the cells listed in AnnotateOptions.Path.
	// Defaults to semi-transparent blue.
	PathColor color.Color

	// Path lists cells to tint before the markers are drawn, e.g. the cells
	// probed between two border points.
	Path []image.Point

	// Labels draws the 1-based index of each mark next to its cross.
	Labels bool
}

// Annotate returns an upscaled copy of img with a cross drawn over each of
// marks. Mark and path coordinates are relative to img.Bounds().Min.
// The source image is not modified.
func Annotate(img image.Image, marks []image.Point, opts AnnotateOptions) *image.NRGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultAnnotateScale
	}
	markerColor := toNRGBA(opts.MarkerColor, color.NRGBA{R: 255, A: 255})
	pathColor := toNRGBA(opts.PathColor, color.NRGBA{B: 255, A: 128})

	base := imaging.Clone(img)
	for _, p := range opts.Path {
		if p.In(base.Bounds()) {
			base.SetNRGBA(p.X, p.Y, blend(base.NRGBAAt(p.X, p.Y), pathColor))
		}
	}

	w, h := base.Bounds().Dx(), base.Bounds().Dy()
	result := imaging.Resize(base, w*scale, h*scale, imaging.NearestNeighbor)

	for i, m := range marks {
		cx := m.X*scale + scale/2
		cy := m.Y*scale + scale/2
		drawCross(result, cx, cy, scale, markerColor)
		if opts.Labels {
			drawLabel(result, cx+scale/2+2, cy+scale/2+2, strconv.Itoa(i+1), markerColor, color.NRGBA{R: 255, G: 255, B: 255, A: 200})
		}
	}

	return result
}

// SaveAnnotation writes img to path as PNG.
func SaveAnnotation(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save annotation: %w", err)
	}
	return nil
}

// AnnotationResult contains an annotated image encoded as base64 PNG.
type AnnotationResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodeAnnotation encodes img as a base64 PNG for transport in JSON.
func EncodeAnnotation(img image.Image) (*AnnotationResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &AnnotationResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func toNRGBA(c color.Color, fallback color.NRGBA) color.NRGBA {
	if c == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// blend composites src over dst using src's alpha.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: dst.A,
	}
}

// drawCross draws a plus sign centered on (cx, cy) whose arms reach one
// scaled pixel beyond the marked cell on each side.
func drawCross(img *image.NRGBA, cx, cy, scale int, c color.NRGBA) {
	arm := scale + scale/2
	bounds := img.Bounds()
	for d := -arm; d <= arm; d++ {
		if p := image.Pt(cx+d, cy); p.In(bounds) {
			img.SetNRGBA(p.X, p.Y, c)
		}
		if p := image.Pt(cx, cy+d); p.In(bounds) {
			img.SetNRGBA(p.X, p.Y, c)
		}
	}
}

// drawLabel draws text with a 3x5 pixel digit font on a filled background.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if p := image.Pt(x+dx, y+dy); p.In(bounds) {
				img.SetNRGBA(p.X, p.Y, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				if p := image.Pt(cx+col, y+row); p.In(bounds) {
					img.SetNRGBA(p.X, p.Y, fg)
				}
			}
		}
		cx += charWidth
	}
}

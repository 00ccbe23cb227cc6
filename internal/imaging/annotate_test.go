package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestAnnotate_Scale(t *testing.T) {
	img := squareImage(10, 6, 2, 2, 5, 4)

	out := Annotate(img, nil, AnnotateOptions{Scale: 3})
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 18 {
		t.Fatalf("size: got %dx%d, want 30x18", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Nearest-neighbor scaling keeps every source pixel as a solid block.
	if got := out.NRGBAAt(2*3+1, 2*3+1); got != (color.NRGBA{A: 255}) {
		t.Errorf("scaled foreground pixel: got %v, want black", got)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("scaled background pixel: got %v, want white", got)
	}

	if def := Annotate(img, nil, AnnotateOptions{}); def.Bounds().Dx() != 10*DefaultAnnotateScale {
		t.Errorf("default scale width: got %d, want %d", def.Bounds().Dx(), 10*DefaultAnnotateScale)
	}
}

func TestAnnotate_Markers(t *testing.T) {
	img := solidImage(8, 8, color.White)
	marker := color.NRGBA{G: 255, A: 255}

	out := Annotate(img, []image.Point{{3, 4}}, AnnotateOptions{Scale: 4, MarkerColor: marker})

	cx, cy := 3*4+2, 4*4+2
	for _, p := range []image.Point{{cx, cy}, {cx - 4, cy}, {cx + 4, cy}, {cx, cy - 4}, {cx, cy + 4}} {
		if got := out.NRGBAAt(p.X, p.Y); got != marker {
			t.Errorf("cross pixel %v: got %v, want %v", p, got, marker)
		}
	}
	if got := out.NRGBAAt(cx+2, cy+2); got == marker {
		t.Errorf("pixel off the cross arms should not be marked")
	}
}

func TestAnnotate_PathDoesNotModifySource(t *testing.T) {
	img := solidImage(5, 5, color.White)
	path := []image.Point{{1, 1}, {2, 2}, {9, 9}}

	out := Annotate(img, nil, AnnotateOptions{Scale: 1, PathColor: color.NRGBA{B: 255, A: 255}})
	if out.NRGBAAt(1, 1) != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("no path given, pixel should be untouched")
	}

	out = Annotate(img, nil, AnnotateOptions{Scale: 1, Path: path, PathColor: color.NRGBA{B: 255, A: 255}})
	if got := out.NRGBAAt(2, 2); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("path cell: got %v, want opaque blue", got)
	}
	if r, _, _, _ := img.At(2, 2).RGBA(); r != 0xffff {
		t.Error("Annotate modified the source image")
	}
}

func TestSaveAnnotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "annotated.png")

	out := Annotate(squareImage(6, 6, 1, 1, 4, 4), []image.Point{{4, 1}}, AnnotateOptions{Scale: 2, Labels: true})
	if err := SaveAnnotation(path, out); err != nil {
		t.Fatalf("SaveAnnotation failed: %v", err)
	}

	info, err := LoadImageInfo(NewImageCache(), path)
	if err != nil {
		t.Fatalf("saved annotation could not be loaded: %v", err)
	}
	if info.Width != 12 || info.Height != 12 {
		t.Errorf("saved size: got %dx%d, want 12x12", info.Width, info.Height)
	}

	if err := SaveAnnotation(filepath.Join(dir, "missing", "out.png"), out); err == nil {
		t.Error("SaveAnnotation should fail for a missing directory")
	}
	_ = os.Remove(path)
}

func TestEncodeAnnotation(t *testing.T) {
	out := Annotate(squareImage(4, 3, 1, 1, 2, 1), nil, AnnotateOptions{Scale: 5})

	result, err := EncodeAnnotation(out)
	if err != nil {
		t.Fatalf("EncodeAnnotation failed: %v", err)
	}
	if result.Width != 20 || result.Height != 15 {
		t.Errorf("size: got %dx%d, want 20x15", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if decoded.Bounds().Dx() != 20 {
		t.Errorf("decoded width: got %d, want 20", decoded.Bounds().Dx())
	}
}

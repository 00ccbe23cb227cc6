package detection

import (
	"image"

	"github.com/ironsheep/shape-recognizer/internal/geometry"
)

// Grid is the read-only pixel view the detectors work on.
// *imaging.PixelGrid satisfies it.
type Grid interface {
	Width() int
	Height() int
	// IsForeground reports whether (x, y) is a shape pixel. It must return
	// false for coordinates outside the grid.
	IsForeground(x, y int) bool
}

// BorderPoints holds the four extreme foreground pixels of a shape.
//
// When several pixels share an extreme coordinate the winner depends on the
// row-major scan order:
//   - MaxX: the first one found (topmost)
//   - MinX: the last one found (bottommost)
//   - MaxY: the last one found (rightmost)
//   - MinY: the first one found (leftmost)
type BorderPoints struct {
	MaxX geometry.Point `json:"max_x"` // Rightmost point
	MinX geometry.Point `json:"min_x"` // Leftmost point
	MaxY geometry.Point `json:"max_y"` // Bottommost point
	MinY geometry.Point `json:"min_y"` // Topmost point

	// Foreground is the number of foreground pixels seen by the scan.
	// When it is zero the points hold their initial sentinel values.
	Foreground int `json:"foreground_pixels"`
}

// Found reports whether the scan saw at least one foreground pixel.
func (b BorderPoints) Found() bool {
	return b.Foreground > 0
}

// Points returns the border points in the order MaxX, MinX, MaxY, MinY.
func (b BorderPoints) Points() [4]geometry.Point {
	return [4]geometry.Point{b.MaxX, b.MinX, b.MaxY, b.MinY}
}

// HasCoincidence reports whether any two of the four points are the same pixel.
func (b BorderPoints) HasCoincidence() bool {
	pts := b.Points()
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i] == pts[j] {
				return true
			}
		}
	}
	return false
}

// FindBorderPoints scans the whole grid once, rows top to bottom and columns
// left to right, and returns its extreme foreground pixels.
//
// Before the scan the points are initialized to sentinels at or beyond the
// grid edges: MaxX=(0,0), MinX=(width,0), MaxY=(0,0), MinY=(0,height).
// A grid without foreground pixels returns these unchanged with
// Foreground == 0.
func FindBorderPoints(g Grid) BorderPoints {
	width, height := g.Width(), g.Height()

	b := BorderPoints{
		MaxX: geometry.Pt(0, 0),
		MinX: geometry.Pt(width, 0),
		MaxY: geometry.Pt(0, 0),
		MinY: geometry.Pt(0, height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !g.IsForeground(x, y) {
				continue
			}

			// The first pixel always claims MaxX so that a shape confined
			// to column 0 does not leave the sentinel in place.
			if b.Foreground == 0 || x > b.MaxX.X {
				b.MaxX = geometry.Pt(x, y)
			}
			if x <= b.MinX.X {
				b.MinX = geometry.Pt(x, y)
			}
			if y >= b.MaxY.Y {
				b.MaxY = geometry.Pt(x, y)
			}
			if y < b.MinY.Y {
				b.MinY = geometry.Pt(x, y)
			}

			b.Foreground++
		}
	}

	return b
}

// Marks returns the border points as image points, in the order of Points.
func (b BorderPoints) Marks() []image.Point {
	pts := b.Points()
	marks := make([]image.Point, len(pts))
	for i, p := range pts {
		marks[i] = image.Pt(p.X, p.Y)
	}
	return marks
}

// ProbedEdge returns the cells the classifier inspects between MaxX and
// MaxY when deciding whether the shape is a circle.
func (b BorderPoints) ProbedEdge() []image.Point {
	cells := EdgeCells(b.MaxX, b.MaxY)
	path := make([]image.Point, len(cells))
	for i, c := range cells {
		path[i] = image.Pt(c.X, c.Y)
	}
	return path
}

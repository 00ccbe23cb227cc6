package detection

import (
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ironsheep/shape-recognizer/internal/geometry"
)

// Options tunes the classifier. The zero value compares lengths exactly and
// measures triangle angles with signed dot products.
type Options struct {
	// Tolerance is the absolute difference in pixels under which two lengths
	// are considered equal when comparing diagonals and sides. Zero means
	// exact floating-point equality.
	Tolerance float64

	// LegacyAngles measures triangle angles with absolute coordinate
	// differences (geometry.LegacyAngleAt), as older recognizer builds did.
	// Obtuse angles are then reported as their supplement.
	LegacyAngles bool
}

func (o Options) equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, o.Tolerance)
}

func (o Options) angle(vertex, a, b geometry.Point) float64 {
	if o.LegacyAngles {
		return geometry.LegacyAngleAt(vertex, a, b)
	}
	return geometry.AngleAt(vertex, a, b)
}

// Recognize finds the border points of the shape in g and classifies them.
// The border points are returned alongside the shape for reporting.
func Recognize(g Grid, opts Options) (Shape, BorderPoints) {
	b := FindBorderPoints(g)
	return Classify(b, g, opts), b
}

// Classify runs the decision tree described in the package documentation
// over b. The grid is consulted only to test whether the border between
// b.MaxX and b.MaxY is straight.
//
// Classify never fails: border points from an empty scan, and border
// points with fewer than three distinct positions (lines and single
// pixels), are Unrecognized.
func Classify(b BorderPoints, g Grid, opts Options) Shape {
	if !b.Found() {
		return Shape{Kind: Unrecognized}
	}

	if b.HasCoincidence() {
		return classifyTriangle(b, opts)
	}

	if !StraightEdge(g, b.MaxX, b.MaxY) {
		return Shape{
			Kind:   Circle,
			Radius: geometry.Distance(b.MinX, b.MaxX) / 2,
		}
	}

	if opts.equal(geometry.Distance(b.MaxX, b.MinX), geometry.Distance(b.MaxY, b.MinY)) {
		sideX := geometry.Distance(b.MinY, b.MaxX)
		sideY := geometry.Distance(b.MaxY, b.MaxX)

		if opts.equal(sideX, sideY) {
			return Shape{Kind: Square, Side: sideX}
		}
		return Shape{Kind: Rectangle, SideX: sideX, SideY: sideY}
	}

	return Shape{Kind: Unrecognized}
}

// classifyTriangle measures a triangle whose corners are among the border
// points. The measured side runs from MaxX to MinY, or from MaxX to MaxY
// when MaxX and MinY are the same pixel; MinX is the opposite corner.
// When that choice would reuse a pixel, MinX stays the opposite corner and
// the side joins the other two distinct border points.
func classifyTriangle(b BorderPoints, opts Options) Shape {
	near, far, apex := b.MaxX, b.MinY, b.MinX
	if b.MaxX == b.MinY {
		far = b.MaxY
	}

	if near == far || near == apex || far == apex {
		rest := make([]geometry.Point, 0, 2)
		for _, p := range b.Points() {
			if p == apex || slices.Contains(rest, p) {
				continue
			}
			rest = append(rest, p)
		}
		// Two distinct points: a line or a single pixel.
		if len(rest) < 2 {
			return Shape{Kind: Unrecognized}
		}
		near, far = rest[0], rest[1]
	}

	return Shape{
		Kind:   Triangle,
		Side:   geometry.Distance(near, far),
		AngleA: opts.angle(near, apex, far),
		AngleB: opts.angle(far, apex, near),
	}
}

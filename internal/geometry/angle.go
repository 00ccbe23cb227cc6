package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// AngleAt returns the angle in radians at vertex between the edges
// vertex→a and vertex→b, using the law of cosines:
//
//	angle = acos((u·v) / (|u||v|))
//
// The result lies in [0, π]. If either edge has zero length the result is NaN.
func AngleAt(vertex, a, b Point) float64 {
	u := r2.Sub(a.vec(), vertex.vec())
	v := r2.Sub(b.vec(), vertex.vec())
	return acosClamped(r2.Dot(u, v) / (r2.Norm(u) * r2.Norm(v)))
}

// LegacyAngleAt is AngleAt computed with the absolute values of the
// coordinate differences:
//
//	u·v ≈ |Δx1|·|Δx2| + |Δy1|·|Δy2|
//
// It never reports an obtuse angle. It exists to reproduce the output of
// older recognizer builds and should not be used for new measurements.
func LegacyAngleAt(vertex, a, b Point) float64 {
	u := r2.Sub(a.vec(), vertex.vec())
	v := r2.Sub(b.vec(), vertex.vec())
	dot := math.Abs(u.X)*math.Abs(v.X) + math.Abs(u.Y)*math.Abs(v.Y)
	return acosClamped(dot / (r2.Norm(u) * r2.Norm(v)))
}

// acosClamped is math.Acos with its argument clamped to [-1, 1] so that
// rounding just outside the domain does not produce NaN. NaN passes through.
func acosClamped(cos float64) float64 {
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

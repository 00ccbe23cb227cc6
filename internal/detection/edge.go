package detection

import (
	"github.com/ironsheep/shape-recognizer/internal/geometry"
)

// StraightEdge reports whether the shape's border runs in a straight line
// from p1 to p2.
//
// The digital line between the two points is walked cell by cell, endpoints
// excluded. Every cell on it must be a foreground pixel, and the shape must
// stay on one side of the line: for every cell, the neighbour one step
// across the line on the outer side is background or lies outside the grid.
// A chord cutting through the inside of a curved shape passes interior
// pixels and fails; so does a chord crossing empty space, and so does a
// chord the shape bulges past.
//
// Points that are equal or adjacent have no cells between them and are
// reported as a straight edge.
func StraightEdge(g Grid, p1, p2 geometry.Point) bool {
	steps := acrossSteps(p1, p2)

	// Either side may be the outer one; each is ruled out by the first cell
	// with a foreground neighbour on that side.
	clearPos, clearNeg := true, true
	return geometry.WalkBetween(p1, p2, func(p geometry.Point) bool {
		if !g.IsForeground(p.X, p.Y) {
			return false
		}
		for _, s := range steps {
			if g.IsForeground(p.X+s.X, p.Y+s.Y) {
				clearPos = false
			}
			if g.IsForeground(p.X-s.X, p.Y-s.Y) {
				clearNeg = false
			}
		}
		return clearPos || clearNeg
	})
}

// acrossSteps returns the unit grid steps that cross the line from p1 to
// p2 along its normal: the dominant axis of the normal, or both axes for a
// 45 degree line.
func acrossSteps(p1, p2 geometry.Point) []geometry.Point {
	nx, ny := p2.Y-p1.Y, p1.X-p2.X

	steps := make([]geometry.Point, 0, 2)
	if abs(nx) >= abs(ny) {
		steps = append(steps, geometry.Pt(sign(nx), 0))
	}
	if abs(ny) >= abs(nx) {
		steps = append(steps, geometry.Pt(0, sign(ny)))
	}
	return steps
}

// EdgeCells returns the cells StraightEdge inspects between p1 and p2.
func EdgeCells(p1, p2 geometry.Point) []geometry.Point {
	cells := make([]geometry.Point, 0)
	geometry.WalkBetween(p1, p2, func(p geometry.Point) bool {
		cells = append(cells, p)
		return true
	})
	return cells
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package detection

import (
	"image"
	"image/color"

	"github.com/ironsheep/shape-recognizer/internal/geometry"
	"github.com/ironsheep/shape-recognizer/internal/imaging"
)

// pointGrid is a Grid whose foreground is an explicit set of points.
type pointGrid struct {
	width, height int
	fg            map[geometry.Point]bool
}

func newPointGrid(width, height int, pts ...geometry.Point) *pointGrid {
	g := &pointGrid{width: width, height: height, fg: make(map[geometry.Point]bool)}
	for _, p := range pts {
		g.fg[p] = true
	}
	return g
}

func (g *pointGrid) Width() int  { return g.width }
func (g *pointGrid) Height() int { return g.height }
func (g *pointGrid) IsForeground(x, y int) bool {
	return g.fg[geometry.Pt(x, y)]
}

// countingGrid wraps a Grid and counts foreground lookups.
type countingGrid struct {
	Grid
	lookups int
}

func (g *countingGrid) IsForeground(x, y int) bool {
	g.lookups++
	return g.Grid.IsForeground(x, y)
}

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// paint returns a white grid with every pixel for which inside returns true
// set to black.
func paint(width, height int, inside func(x, y int) bool) *imaging.PixelGrid {
	img := createTestImage(width, height, color.White)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if inside(x, y) {
				img.Set(x, y, color.Black)
			}
		}
	}
	return imaging.NewPixelGrid(img)
}

// filledRect draws a solid block covering x1..x2, y1..y2 inclusive.
func filledRect(width, height, x1, y1, x2, y2 int) *imaging.PixelGrid {
	return paint(width, height, func(x, y int) bool {
		return x >= x1 && x <= x2 && y >= y1 && y <= y2
	})
}

// outlineRect draws a one pixel wide rectangle outline.
func outlineRect(width, height, x1, y1, x2, y2 int) *imaging.PixelGrid {
	return paint(width, height, func(x, y int) bool {
		inX := x >= x1 && x <= x2
		inY := y >= y1 && y <= y2
		return inX && inY && (x == x1 || x == x2 || y == y1 || y == y2)
	})
}

// filledDisk draws every pixel within radius of the center.
func filledDisk(width, height, cx, cy, radius int) *imaging.PixelGrid {
	return paint(width, height, func(x, y int) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= radius*radius
	})
}

// outlineCircle draws a circle outline using the midpoint algorithm.
func outlineCircle(width, height, cx, cy, radius int) *imaging.PixelGrid {
	img := createTestImage(width, height, color.White)

	x := radius
	y := 0
	err := 0

	for x >= y {
		img.Set(cx+x, cy+y, color.Black)
		img.Set(cx+y, cy+x, color.Black)
		img.Set(cx-y, cy+x, color.Black)
		img.Set(cx-x, cy+y, color.Black)
		img.Set(cx-x, cy-y, color.Black)
		img.Set(cx-y, cy-x, color.Black)
		img.Set(cx+y, cy-x, color.Black)
		img.Set(cx+x, cy-y, color.Black)

		if err <= 0 {
			y += 1
			err += 2*y + 1
		}
		if err > 0 {
			x -= 1
			err -= 2*x + 1
		}
	}

	return imaging.NewPixelGrid(img)
}

// filledDiamond draws |x-cx| + |y-cy| <= r.
func filledDiamond(width, height, cx, cy, r int) *imaging.PixelGrid {
	return paint(width, height, func(x, y int) bool {
		return abs(x-cx)+abs(y-cy) <= r
	})
}

// filledTriangle draws every pixel inside or on the triangle abc.
func filledTriangle(width, height int, a, b, c geometry.Point) *imaging.PixelGrid {
	cross := func(o, p, q geometry.Point) int {
		return (p.X-o.X)*(q.Y-o.Y) - (p.Y-o.Y)*(q.X-o.X)
	}
	orient := cross(a, b, c)
	return paint(width, height, func(x, y int) bool {
		pt := geometry.Pt(x, y)
		return cross(a, b, pt)*orient >= 0 && cross(b, c, pt)*orient >= 0 && cross(c, a, pt)*orient >= 0
	})
}

package detection

import (
	"testing"

	"github.com/ironsheep/shape-recognizer/internal/geometry"
)

func TestStraightEdge(t *testing.T) {
	tests := []struct {
		name   string
		grid   Grid
		p1, p2 geometry.Point
		want   bool
	}{
		{
			name: "right side of filled square",
			grid: filledRect(12, 12, 2, 2, 9, 9),
			p1:   geometry.Pt(9, 2), p2: geometry.Pt(9, 9),
			want: true,
		},
		{
			name: "right side of outlined square",
			grid: outlineRect(12, 12, 2, 2, 9, 9),
			p1:   geometry.Pt(9, 2), p2: geometry.Pt(9, 9),
			want: true,
		},
		{
			name: "square touching the grid edge",
			grid: filledRect(5, 5, 0, 0, 4, 4),
			p1:   geometry.Pt(4, 0), p2: geometry.Pt(4, 4),
			want: true,
		},
		{
			name: "diagonal edge of diamond",
			grid: filledDiamond(21, 21, 10, 10, 7),
			p1:   geometry.Pt(17, 10), p2: geometry.Pt(10, 17),
			want: true,
		},
		{
			name: "chord through filled disk",
			grid: filledDisk(31, 31, 15, 15, 10),
			p1:   geometry.Pt(25, 15), p2: geometry.Pt(15, 25),
			want: false,
		},
		{
			name: "small disk bulging past the chord",
			grid: filledDisk(11, 11, 5, 5, 3),
			p1:   geometry.Pt(8, 5), p2: geometry.Pt(5, 8),
			want: false,
		},
		{
			name: "diamond edge walked backwards",
			grid: filledDiamond(21, 21, 10, 10, 7),
			p1:   geometry.Pt(10, 17), p2: geometry.Pt(17, 10),
			want: true,
		},
		{
			name: "chord across circle outline",
			grid: outlineCircle(41, 41, 20, 20, 15),
			p1:   geometry.Pt(35, 20), p2: geometry.Pt(20, 35),
			want: false,
		},
		{
			name: "diagonal through filled square",
			grid: filledRect(12, 12, 2, 2, 9, 9),
			p1:   geometry.Pt(2, 2), p2: geometry.Pt(9, 9),
			want: false,
		},
		{
			name: "adjacent points",
			grid: newPointGrid(4, 4, geometry.Pt(1, 1), geometry.Pt(2, 1)),
			p1:   geometry.Pt(1, 1), p2: geometry.Pt(2, 1),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StraightEdge(tt.grid, tt.p1, tt.p2); got != tt.want {
				t.Errorf("StraightEdge(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestStraightEdge_Symmetric(t *testing.T) {
	grid := filledRect(10, 10, 1, 1, 8, 6)
	a, b := geometry.Pt(8, 1), geometry.Pt(8, 6)
	if StraightEdge(grid, a, b) != StraightEdge(grid, b, a) {
		t.Error("StraightEdge gives different answers for reversed endpoints")
	}
}

func TestEdgeCells(t *testing.T) {
	cells := EdgeCells(geometry.Pt(3, 0), geometry.Pt(3, 4))
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}
	for i, c := range cells {
		if c != geometry.Pt(3, i+1) {
			t.Errorf("cell %d = %v, want %v", i, c, geometry.Pt(3, i+1))
		}
	}
}

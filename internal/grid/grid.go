// Package grid provides the integer-grid primitives shared by every
// generation algorithm: positions, axis-aligned rectangles, and the
// occupancy grid itself.
package grid

// Cell is the occupancy code for one grid cell.
type Cell uint8

const (
	CellWall Cell = iota
	CellFloor
	CellDoor
)

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y int
}

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from an origin and a width/height pair.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Pos {
	return Pos{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns the rectangle width in cells.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the rectangle height in cells.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p lies inside r (inclusive edges).
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Grid holds the occupancy map for one dungeon layout.
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y][x]
}

// Set replaces the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.Cells[y][x] = c
}

// IsOpen returns true when (x, y) is in bounds and passable (floor or door).
func (g *Grid) IsOpen(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Cells[y][x] != CellWall
}

// CountOpen returns the number of passable cells.
func (g *Grid) CountOpen() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != CellWall {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := New(g.Width, g.Height)
	for y := range g.Cells {
		copy(out.Cells[y], g.Cells[y])
	}
	return out
}

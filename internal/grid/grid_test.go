package grid

import "testing"

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := g.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsOpen(t *testing.T) {
	g := New(5, 5)
	// all walls initially
	if g.IsOpen(2, 2) {
		t.Error("wall cell should not be open")
	}
	g.Set(2, 2, CellFloor)
	if !g.IsOpen(2, 2) {
		t.Error("floor cell should be open")
	}
	g.Set(2, 2, CellDoor)
	if !g.IsOpen(2, 2) {
		t.Error("door cell should be open")
	}
	if g.IsOpen(-1, 2) {
		t.Error("out-of-bounds cell should not be open")
	}
}

func TestRectCenterAndContains(t *testing.T) {
	r := NewRect(2, 3, 5, 4) // X1=2 Y1=3 X2=6 Y2=6
	if r.Width() != 5 || r.Height() != 4 {
		t.Fatalf("NewRect size = %dx%d, want 5x4", r.Width(), r.Height())
	}
	c := r.Center()
	if !r.Contains(c) {
		t.Errorf("center %v should lie within %v", c, r)
	}
	if r.Contains(Pos{X: 7, Y: 3}) {
		t.Error("point past X2 should not be contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	cases := []struct {
		b    Rect
		want bool
	}{
		{NewRect(3, 3, 4, 4), true},  // corner overlap
		{NewRect(4, 0, 2, 2), false}, // just past right edge
		{NewRect(0, 4, 2, 2), false}, // just past bottom edge
		{NewRect(1, 1, 2, 2), true},  // fully inside
	}
	for i, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("case %d: Intersects(%v)=%v, want %v", i, c.b, got, c.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(4, 4)
	g.Set(1, 1, CellFloor)
	cl := g.Clone()
	cl.Set(1, 1, CellWall)
	if g.At(1, 1) != CellFloor {
		t.Error("mutating a clone must not affect the original")
	}
}

package generate

import (
	"math"
	"testing"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// newTestGenerator builds a generator with rooms pre-placed at the given
// rects, carved and unconnected.
func newTestGenerator(t *testing.T, params dungeon.Params, rects []grid.Rect) *Generator {
	t.Helper()
	g := New(params)
	for _, r := range rects {
		g.addRoom(r, dungeon.ShapeRectangle, true)
	}
	return g
}

func TestUnionFind(t *testing.T) {
	u := newUnionFind(5)
	for i := 0; i < 5; i++ {
		if u.find(i) != i {
			t.Fatalf("fresh set: find(%d) = %d", i, u.find(i))
		}
	}

	u.union(0, 1)
	u.union(2, 3)
	if u.find(0) != u.find(1) {
		t.Error("0 and 1 not merged")
	}
	if u.find(0) == u.find(2) {
		t.Error("0 and 2 merged without a union")
	}

	u.union(1, 3)
	for i := 0; i < 4; i++ {
		if u.find(i) != u.find(0) {
			t.Errorf("element %d outside merged component", i)
		}
	}
	if u.find(4) == u.find(0) {
		t.Error("4 merged spuriously")
	}
}

func TestCenterDistance(t *testing.T) {
	cases := []struct {
		a, b grid.Pos
		want float64
	}{
		{grid.Pos{X: 0, Y: 0}, grid.Pos{X: 0, Y: 0}, 0},
		{grid.Pos{X: 0, Y: 0}, grid.Pos{X: 3, Y: 4}, 5},
		{grid.Pos{X: 2, Y: 2}, grid.Pos{X: 2, Y: 7}, 5},
		{grid.Pos{X: 1, Y: 1}, grid.Pos{X: 2, Y: 2}, math.Sqrt2},
	}
	for _, tc := range cases {
		if got := centerDistance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("centerDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestConnectAllSpansEveryRoom(t *testing.T) {
	params := dungeon.DefaultParams()
	g := newTestGenerator(t, params, []grid.Rect{
		grid.NewRect(2, 2, 5, 5),
		grid.NewRect(20, 3, 5, 5),
		grid.NewRect(40, 20, 5, 5),
		grid.NewRect(5, 30, 5, 5),
	})

	g.connectAll()

	// A spanning tree over 4 rooms needs exactly 3 edges.
	if len(g.corridors) != 3 {
		t.Fatalf("corridors = %d, want 3", len(g.corridors))
	}

	dsu := newUnionFind(len(g.rooms))
	for _, r := range g.rooms {
		for _, other := range r.ConnectedIDs() {
			dsu.union(r.ID, other)
		}
	}
	for _, r := range g.rooms[1:] {
		if dsu.find(r.ID) != dsu.find(0) {
			t.Errorf("room %d not connected to room 0", r.ID)
		}
	}
}

func TestConnectAllKeepsExistingEdges(t *testing.T) {
	params := dungeon.DefaultParams()
	g := newTestGenerator(t, params, []grid.Rect{
		grid.NewRect(2, 2, 5, 5),
		grid.NewRect(20, 3, 5, 5),
		grid.NewRect(40, 20, 5, 5),
	})
	// Pre-connect everything; connectAll must then add nothing.
	g.connectPair(0, 1)
	g.connectPair(1, 2)
	before := len(g.corridors)

	g.connectAll()
	if len(g.corridors) != before {
		t.Errorf("corridors grew from %d to %d on a connected graph", before, len(g.corridors))
	}
}

func TestConnectPair(t *testing.T) {
	params := dungeon.DefaultParams()
	g := newTestGenerator(t, params, []grid.Rect{
		grid.NewRect(2, 2, 5, 5),
		grid.NewRect(30, 25, 5, 5),
	})

	g.connectPair(0, 1)

	if !g.rooms[0].Connected.Has(1) || !g.rooms[1].Connected.Has(0) {
		t.Error("adjacency not symmetric")
	}
	if len(g.corridors) != 1 {
		t.Fatalf("corridors = %d, want 1", len(g.corridors))
	}
	c := g.corridors[0]
	if c.StartRoom != 0 || c.EndRoom != 1 {
		t.Errorf("corridor endpoints %d->%d, want 0->1", c.StartRoom, c.EndRoom)
	}
	if len(c.Path) == 0 {
		t.Fatal("corridor path empty")
	}
	for _, p := range c.Path {
		if !g.grid.IsOpen(p.X, p.Y) {
			t.Errorf("path cell %v not carved", p)
		}
	}
	// The L runs horizontally at the source row first.
	if c.Path[0].Y != g.rooms[0].Center.Y {
		t.Errorf("path starts at row %d, want source row %d", c.Path[0].Y, g.rooms[0].Center.Y)
	}
}

func TestCarveBandWidth(t *testing.T) {
	params := dungeon.DefaultParams()
	params.CorridorWidth = 3
	g := New(params)

	g.carveBandV(10, 10)
	for _, y := range []int{9, 10, 11} {
		if g.grid.At(10, y) != grid.CellFloor {
			t.Errorf("cell (10,%d) not carved by width-3 vertical band", y)
		}
	}
	if g.grid.At(10, 8) != grid.CellWall || g.grid.At(10, 12) != grid.CellWall {
		t.Error("width-3 band carved outside its extent")
	}

	g.carveBandH(20, 20)
	for _, x := range []int{19, 20, 21} {
		if g.grid.At(x, 20) != grid.CellFloor {
			t.Errorf("cell (%d,20) not carved by width-3 horizontal band", x)
		}
	}
}

func TestDoorsOnlyOutsideRooms(t *testing.T) {
	for _, seed := range testSeeds {
		params := dungeon.DefaultParams()
		params.Seed = seed

		layout := mustGenerate(t, params)
		for y := 0; y < layout.Grid.Height; y++ {
			for x := 0; x < layout.Grid.Width; x++ {
				if layout.Grid.At(x, y) != grid.CellDoor {
					continue
				}
				p := grid.Pos{X: x, Y: y}
				for _, r := range layout.LiveRooms() {
					if r.Bounds.Contains(p) {
						t.Errorf("seed %d: door at %v inside room %d", seed, p, r.ID)
					}
				}
			}
		}
	}
}

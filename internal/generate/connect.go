package generate

import (
	"math"
	"sort"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// connectAll links every room into one component. It seeds a union-find
// with the adjacency the primary algorithm already produced, sorts all
// pairwise center-to-center distances ascending, and greedily accepts an
// edge only when it strictly reduces the number of components. Already
// connected layouts (the BSP path) pass through untouched.
func (g *Generator) connectAll() {
	ids := g.liveRoomIDs()
	if len(ids) <= 1 {
		return
	}

	dsu := newUnionFind(len(g.rooms))
	for _, id := range ids {
		for _, other := range g.rooms[id].ConnectedIDs() {
			dsu.union(id, other)
		}
	}

	type edge struct {
		a, b int
		dist float64
	}
	edges := make([]edge, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := g.rooms[ids[i]], g.rooms[ids[j]]
			edges = append(edges, edge{a: a.ID, b: b.ID, dist: centerDistance(a.Center, b.Center)})
		}
	}
	// Tie-break on IDs so equal distances sort the same way every run.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].dist != edges[j].dist {
			return edges[i].dist < edges[j].dist
		}
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})

	for _, e := range edges {
		if dsu.find(e.a) == dsu.find(e.b) {
			continue
		}
		dsu.union(e.a, e.b)
		g.connectPair(e.a, e.b)
	}
}

// connectPair draws an L-shaped corridor between two rooms and records the
// symmetric adjacency. The corridor runs horizontally at the source row
// first, then vertically at the destination column.
func (g *Generator) connectPair(a, b int) {
	ra, rb := g.rooms[a], g.rooms[b]
	path := g.carveCorridor(ra.Center, rb.Center)

	ra.Connected.Put(b)
	rb.Connected.Put(a)

	g.corridors = append(g.corridors, &dungeon.Corridor{
		ID:        len(g.corridors),
		Width:     g.params.CorridorWidth,
		StartRoom: a,
		EndRoom:   b,
		Path:      path,
	})
}

// carveCorridor carves the corridor cells (a corridorWidth-wide band
// around the center line) and returns the ordered center-line path. With
// 20% probability a door is placed at the corridor elbow, but only when
// the elbow falls outside every room footprint.
func (g *Generator) carveCorridor(from, to grid.Pos) []grid.Pos {
	var path []grid.Pos

	x1, x2 := from.X, to.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		path = append(path, grid.Pos{X: x, Y: from.Y})
		g.carveBandV(x, from.Y)
	}
	y1, y2 := from.Y, to.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		path = append(path, grid.Pos{X: to.X, Y: y})
		g.carveBandH(to.X, y)
	}

	elbow := grid.Pos{X: to.X, Y: from.Y}
	if g.rng.Intn(100) < 20 && g.grid.InBounds(elbow.X, elbow.Y) &&
		g.grid.At(elbow.X, elbow.Y) == grid.CellFloor && !g.insideAnyRoom(elbow) {
		g.grid.Set(elbow.X, elbow.Y, grid.CellDoor)
	}
	return path
}

// carveBandV carves the vertical band of cells around (x, y) for a
// horizontal corridor run.
func (g *Generator) carveBandV(x, y int) {
	w := g.params.CorridorWidth
	for off := -((w - 1) / 2); off <= w/2; off++ {
		if g.grid.InBounds(x, y+off) && g.grid.At(x, y+off) == grid.CellWall {
			g.grid.Set(x, y+off, grid.CellFloor)
		}
	}
}

// carveBandH carves the horizontal band of cells around (x, y) for a
// vertical corridor run.
func (g *Generator) carveBandH(x, y int) {
	w := g.params.CorridorWidth
	for off := -((w - 1) / 2); off <= w/2; off++ {
		if g.grid.InBounds(x+off, y) && g.grid.At(x+off, y) == grid.CellWall {
			g.grid.Set(x+off, y, grid.CellFloor)
		}
	}
}

// insideAnyRoom reports whether p falls inside a live room's bounds.
func (g *Generator) insideAnyRoom(p grid.Pos) bool {
	for _, r := range g.rooms {
		if !r.Removed && r.Bounds.Contains(p) {
			return true
		}
	}
	return false
}

func centerDistance(a, b grid.Pos) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// unionFind is a plain union-find over room IDs.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}

package generate

import (
	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// extractRooms converts connected floor regions of the current grid into
// rooms. Every region with area at least minRoomW*minRoomH becomes an
// irregular room with a bounding-box footprint. The room center is moved
// onto the region cell nearest the box center, so corridors always attach
// to actual floor.
func (g *Generator) extractRooms() {
	minArea := g.params.MinRoomW * g.params.MinRoomH
	visited := make([][]bool, g.params.Height)
	for y := range visited {
		visited[y] = make([]bool, g.params.Width)
	}

	for y := 0; y < g.params.Height; y++ {
		for x := 0; x < g.params.Width; x++ {
			if visited[y][x] || g.grid.At(x, y) != grid.CellFloor {
				continue
			}
			region := g.floodFill(x, y, visited)
			g.requested++
			if len(region) < minArea {
				continue
			}
			room := g.addRoom(boundingBox(region), dungeon.ShapeIrregular, false)
			room.Center = nearestCell(region, room.Bounds.Center())
		}
	}
}

// nearestCell picks the region cell closest to target, breaking ties by
// scan order so extraction stays deterministic.
func nearestCell(region []grid.Pos, target grid.Pos) grid.Pos {
	best := region[0]
	bestDist := sqDist(best, target)
	for _, c := range region[1:] {
		if d := sqDist(c, target); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDist(a, b grid.Pos) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// floodFill collects every floor cell 4-connected to (x, y). The walk is
// stack-based rather than recursive so a map-sized region cannot blow the
// call stack.
func (g *Generator) floodFill(x, y int, visited [][]bool) []grid.Pos {
	var region []grid.Pos
	stack := []grid.Pos{{X: x, Y: y}}
	visited[y][x] = true

	dirs := [4]grid.Pos{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)

		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !g.grid.InBounds(nx, ny) || visited[ny][nx] {
				continue
			}
			if g.grid.At(nx, ny) != grid.CellFloor {
				continue
			}
			visited[ny][nx] = true
			stack = append(stack, grid.Pos{X: nx, Y: ny})
		}
	}
	return region
}

// boundingBox returns the tightest rect covering all positions.
func boundingBox(cells []grid.Pos) grid.Rect {
	r := grid.Rect{X1: cells[0].X, Y1: cells[0].Y, X2: cells[0].X, Y2: cells[0].Y}
	for _, c := range cells[1:] {
		if c.X < r.X1 {
			r.X1 = c.X
		}
		if c.X > r.X2 {
			r.X2 = c.X
		}
		if c.Y < r.Y1 {
			r.Y1 = c.Y
		}
		if c.Y > r.Y2 {
			r.Y2 = c.Y
		}
	}
	return r
}

package generate

import "dungeonforge/internal/grid"

const (
	cellularSeedChance = 0.45
	cellularIterations = 5
	cellularWallVotes  = 5
)

// runCellular seeds the grid with random floor, relaxes it with a
// neighbor-majority rule, and extracts rooms from the surviving blobs.
func (g *Generator) runCellular() {
	for y := 0; y < g.params.Height; y++ {
		for x := 0; x < g.params.Width; x++ {
			if g.rng.Float64() < cellularSeedChance {
				g.grid.Set(x, y, grid.CellFloor)
			}
		}
	}

	g.smooth(cellularIterations)
	g.extractRooms()
}

// smooth applies the cellular automata rule for the given number of
// iterations: a cell becomes wall when at least cellularWallVotes of its
// eight Moore neighbors are wall, floor otherwise. Out-of-bounds
// neighbors count as wall, which keeps the map edge sealed.
func (g *Generator) smooth(iterations int) {
	for i := 0; i < iterations; i++ {
		next := grid.New(g.params.Width, g.params.Height)
		for y := 0; y < g.params.Height; y++ {
			for x := 0; x < g.params.Width; x++ {
				if g.mooreWalls(x, y) >= cellularWallVotes {
					next.Set(x, y, grid.CellWall)
				} else {
					next.Set(x, y, grid.CellFloor)
				}
			}
		}
		g.grid = next
	}
}

// mooreWalls counts wall neighbors in the 8-cell Moore neighborhood.
func (g *Generator) mooreWalls(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.grid.InBounds(nx, ny) || g.grid.At(nx, ny) == grid.CellWall {
				count++
			}
		}
	}
	return count
}

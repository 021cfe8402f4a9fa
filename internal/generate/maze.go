package generate

import "dungeonforge/internal/grid"

// runMaze lays a sparse lattice skeleton: every odd coordinate becomes
// floor, and each lattice point independently extends one cell right and
// one cell down with probability density (0.5 when unset). Rooms are then
// extracted from the resulting regions by flood fill.
func (g *Generator) runMaze() {
	p := g.params.Density
	if p <= 0 {
		p = 0.5
	}

	for y := 1; y < g.params.Height; y += 2 {
		for x := 1; x < g.params.Width; x += 2 {
			g.grid.Set(x, y, grid.CellFloor)
			if g.rng.Float64() < p && x+1 < g.params.Width {
				g.grid.Set(x+1, y, grid.CellFloor)
			}
			if g.rng.Float64() < p && y+1 < g.params.Height {
				g.grid.Set(x, y+1, grid.CellFloor)
			}
		}
	}

	g.extractRooms()
}

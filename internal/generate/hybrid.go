package generate

// hybridSmoothIterations is deliberately lower than the standalone
// cellular pass: the goal is roughened edges, not full relaxation.
const hybridSmoothIterations = 2

// runHybrid composes the BSP partitioner with a short cellular smoothing
// pass. Smoothing erodes room edges and corridors, so a repair pass
// re-carves every room footprint and corridor path afterwards; graph-level
// connectivity is then re-verified by the shared post-processing step.
func (g *Generator) runHybrid() {
	g.runBSP()
	g.smooth(hybridSmoothIterations)

	for _, r := range g.rooms {
		g.carveRect(r.Bounds)
	}
	for _, c := range g.corridors {
		for _, p := range c.Path {
			g.carveBandV(p.X, p.Y)
			g.carveBandH(p.X, p.Y)
		}
	}
}

package generate

import (
	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// roomPlaceAttempts bounds the rejection sampling per room.
const roomPlaceAttempts = 100

// runRoomFirst scatters non-overlapping rectangular rooms by rejection
// sampling. A room that cannot be placed within the attempt budget is
// skipped; the layout records requested vs placed so callers notice.
func (g *Generator) runRoomFirst() {
	target := g.randRange(g.params.MinRooms, g.params.MaxRooms)
	g.requested = target

	for i := 0; i < target; i++ {
		for attempt := 0; attempt < roomPlaceAttempts; attempt++ {
			w := g.randRange(g.params.MinRoomW, g.params.MaxRoomW)
			h := g.randRange(g.params.MinRoomH, g.params.MaxRoomH)
			if w > g.params.Width-2 || h > g.params.Height-2 {
				continue
			}
			x := g.randRange(1, g.params.Width-w-1)
			y := g.randRange(1, g.params.Height-h-1)

			candidate := grid.NewRect(x, y, w, h)
			if g.overlapsExisting(candidate) {
				continue
			}
			g.addRoom(candidate, dungeon.ShapeRectangle, true)
			break
		}
	}
}

// overlapsExisting reports whether candidate intersects any placed room.
func (g *Generator) overlapsExisting(candidate grid.Rect) bool {
	for _, r := range g.rooms {
		if candidate.Intersects(r.Bounds) {
			return true
		}
	}
	return false
}

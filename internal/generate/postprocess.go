package generate

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// loopRadius bounds loop-injection candidates to nearby rooms.
const loopRadius = 20.0

// postProcess runs the order-dependent finishing steps: special-room
// assignment, critical-path computation, optional dead-end pruning,
// optional loop injection, and a final connectivity re-verification.
func (g *Generator) postProcess() {
	g.assignSpecialRooms()
	g.computeCriticalPath()
	if g.params.RemoveDeadEnds {
		g.removeDeadEnds()
	}
	if g.params.AllowLoops {
		g.injectLoops()
	}
	g.ensureConnected()
}

// assignSpecialRooms marks the first room as the start, the room farthest
// from it (Euclidean) as the boss room, and sprinkles special types over
// the rest according to specialRoomRatio.
func (g *Generator) assignSpecialRooms() {
	ids := g.liveRoomIDs()
	g.startID = ids[0]
	start := g.rooms[g.startID]
	start.Type = dungeon.RoomStandard

	g.bossID = g.startID
	best := -1.0
	for _, id := range ids[1:] {
		if d := centerDistance(start.Center, g.rooms[id].Center); d > best {
			best = d
			g.bossID = id
		}
	}
	g.rooms[g.bossID].Type = dungeon.RoomBoss

	special := [...]dungeon.RoomType{
		dungeon.RoomCombat, dungeon.RoomTreasure, dungeon.RoomSecret,
		dungeon.RoomPuzzle, dungeon.RoomTrap, dungeon.RoomEmpty,
	}
	for _, id := range ids {
		if id == g.startID || id == g.bossID {
			continue
		}
		if g.rng.Float64() < g.params.SpecialRoomRatio {
			g.rooms[id].Type = special[g.rng.Intn(len(special))]
		}
	}
}

// computeCriticalPath BFS-walks the room graph from the start, assigning
// hop distances, then reconstructs the shortest start→boss path through
// parent back-pointers and flags every room on it. Neighbors are visited
// in sorted ID order so ties always break the same way.
func (g *Generator) computeCriticalPath() {
	parent := make(map[int]int)
	g.rooms[g.startID].DistanceFromStart = 0
	queue := []int{g.startID}
	seen := map[int]bool{g.startID: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.rooms[cur].ConnectedIDs() {
			if seen[next] || g.rooms[next].Removed {
				continue
			}
			seen[next] = true
			parent[next] = cur
			g.rooms[next].DistanceFromStart = g.rooms[cur].DistanceFromStart + 1
			queue = append(queue, next)
		}
	}

	if !seen[g.bossID] {
		return // disconnected; ensureConnected repairs later
	}
	for id := g.bossID; ; {
		g.rooms[id].OnMainPath = true
		if id == g.startID {
			break
		}
		id = parent[id]
	}
}

// removeDeadEnds prunes rooms with at most one connection until a full
// pass removes nothing. Rooms on the critical path, the boss room, and
// treasure rooms are never pruned. Removal marks the arena slot instead
// of re-indexing, so held room IDs stay valid.
func (g *Generator) removeDeadEnds() {
	for {
		removed := false
		for i := len(g.rooms) - 1; i >= 0; i-- {
			r := g.rooms[i]
			if r.Removed || r.Degree() > 1 {
				continue
			}
			if r.OnMainPath || r.Type == dungeon.RoomBoss || r.Type == dungeon.RoomTreasure {
				continue
			}
			g.removeRoom(r)
			removed = true
		}
		if !removed {
			return
		}
	}
}

// removeRoom clears a room's edges, blanks its footprint back to wall,
// and drops corridors that reference it.
func (g *Generator) removeRoom(r *dungeon.Room) {
	for _, other := range r.ConnectedIDs() {
		g.rooms[other].Connected.Remove(r.ID)
	}
	r.Connected = mapset.New[int]()
	r.Removed = true

	for y := r.Bounds.Y1; y <= r.Bounds.Y2; y++ {
		for x := r.Bounds.X1; x <= r.Bounds.X2; x++ {
			if g.grid.InBounds(x, y) {
				g.grid.Set(x, y, grid.CellWall)
			}
		}
	}

	kept := g.corridors[:0]
	for _, c := range g.corridors {
		if c.StartRoom != r.ID && c.EndRoom != r.ID {
			kept = append(kept, c)
		}
	}
	g.corridors = kept
}

// injectLoops adds up to round(liveRooms × branching) extra edges between
// non-adjacent rooms within loopRadius of each other, making the graph
// less tree-like.
func (g *Generator) injectLoops() {
	ids := g.liveRoomIDs()
	attempts := int(math.Round(float64(len(ids)) * g.params.Branching))

	for i := 0; i < attempts; i++ {
		// Bounded random probing; an attempt that finds no candidate
		// pair is simply forfeited.
		for try := 0; try < 30; try++ {
			a := ids[g.rng.Intn(len(ids))]
			b := ids[g.rng.Intn(len(ids))]
			if a == b || g.rooms[a].Connected.Has(b) {
				continue
			}
			if centerDistance(g.rooms[a].Center, g.rooms[b].Center) > loopRadius {
				continue
			}
			g.connectPair(a, b)
			break
		}
	}
}

// ensureConnected re-verifies reachability from the start room and wires
// any stranded room to its nearest reached room, repeating until the
// graph is whole.
func (g *Generator) ensureConnected() {
	for {
		reached := map[int]bool{g.startID: true}
		queue := []int{g.startID}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range g.rooms[cur].ConnectedIDs() {
				if reached[next] || g.rooms[next].Removed {
					continue
				}
				reached[next] = true
				queue = append(queue, next)
			}
		}

		// Nearest (stranded, reached) pair by center distance.
		bestDist := math.MaxFloat64
		bestA, bestB := -1, -1
		for _, id := range g.liveRoomIDs() {
			if reached[id] {
				continue
			}
			for _, other := range g.liveRoomIDs() {
				if !reached[other] {
					continue
				}
				if d := centerDistance(g.rooms[id].Center, g.rooms[other].Center); d < bestDist {
					bestDist = d
					bestA, bestB = id, other
				}
			}
		}
		if bestA == -1 {
			return
		}
		g.connectPair(bestA, bestB)
	}
}

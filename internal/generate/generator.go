// Package generate turns a dungeon.Params value into a fully connected
// dungeon.Layout. Generation is synchronous and deterministic: every call
// owns a private RNG seeded from the parameters and consumes it in a fixed
// order, so the same parameters always produce an identical layout.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// ErrNoRooms is returned when primary generation produced no rooms at all.
// A layout without rooms is useless to every consumer, so this is promoted
// to a hard error rather than a validator warning.
var ErrNoRooms = errors.New("generation produced no rooms")

// Generator accumulates the grid, room arena, and corridor list for one
// generation call. Not safe for concurrent use; create one per call.
type Generator struct {
	params    dungeon.Params
	rng       *rand.Rand
	grid      *grid.Grid
	rooms     []*dungeon.Room
	corridors []*dungeon.Corridor
	requested int
	startID   int
	bossID    int
}

// New creates a Generator for the given parameters.
func New(params dungeon.Params) *Generator {
	return &Generator{
		params: params,
		rng:    rand.New(rand.NewSource(params.Seed)),
		grid:   grid.New(params.Width, params.Height),
	}
}

// Generate runs the configured algorithm, connects the room graph, and
// post-processes the result into a finished layout.
func (g *Generator) Generate() (*dungeon.Layout, error) {
	if err := g.params.Check(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	switch g.params.Algorithm {
	case dungeon.AlgorithmBSP:
		g.runBSP()
	case dungeon.AlgorithmCellular:
		g.runCellular()
	case dungeon.AlgorithmRoomFirst:
		g.runRoomFirst()
	case dungeon.AlgorithmMaze:
		g.runMaze()
	case dungeon.AlgorithmHybrid:
		g.runHybrid()
	default:
		return nil, fmt.Errorf("unknown algorithm %v", g.params.Algorithm)
	}

	if len(g.rooms) == 0 {
		return nil, ErrNoRooms
	}

	g.connectAll()
	g.postProcess()

	layout := &dungeon.Layout{
		Width:          g.params.Width,
		Height:         g.params.Height,
		Grid:           g.grid,
		Rooms:          g.rooms,
		Corridors:      g.corridors,
		Params:         g.params,
		RoomsRequested: g.requested,
		RoomsPlaced:    len(g.rooms),
	}
	layout.StartRoom, layout.BossRoom = g.startID, g.bossID
	return layout, nil
}

// addRoom appends a room to the arena. When carve is set the room's
// footprint is marked floor; flood-filled rooms skip carving because
// their cells are already open and their bounding box may cover walls
// that shape the region.
func (g *Generator) addRoom(bounds grid.Rect, shape dungeon.RoomShape, carve bool) *dungeon.Room {
	room := dungeon.NewRoom(len(g.rooms), bounds, shape)
	g.rooms = append(g.rooms, room)
	if carve {
		g.carveRect(bounds)
	}
	return room
}

// carveRect marks every cell of r as floor.
func (g *Generator) carveRect(r grid.Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if g.grid.InBounds(x, y) {
				g.grid.Set(x, y, grid.CellFloor)
			}
		}
	}
}

// liveRoomIDs returns the IDs of all non-removed rooms in ID order.
func (g *Generator) liveRoomIDs() []int {
	ids := make([]int, 0, len(g.rooms))
	for _, r := range g.rooms {
		if !r.Removed {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// randRange draws uniformly from [lo, hi]. When the range is degenerate it
// returns lo without consuming randomness.
func (g *Generator) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

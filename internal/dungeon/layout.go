package dungeon

import "dungeonforge/internal/grid"

// Layout is the sole output of one generation call. It is fully populated
// before being returned and never mutated afterwards; collaborators that
// track runtime state (traps, fog) key it by room ID or grid position.
type Layout struct {
	Width, Height int
	Grid          *grid.Grid
	// Rooms is an arena indexed by room ID. Removed rooms stay in their
	// slot with Removed set; use LiveRooms to skip them.
	Rooms     []*Room
	Corridors []*Corridor
	StartRoom int
	BossRoom  int
	Params    Params

	// Requested vs placed room counts, so callers can detect
	// under-generation instead of digging it out of logs.
	RoomsRequested int
	RoomsPlaced    int
}

// Room returns the room with the given ID, or nil when the ID is out of
// range or the room was removed.
func (l *Layout) Room(id int) *Room {
	if id < 0 || id >= len(l.Rooms) {
		return nil
	}
	r := l.Rooms[id]
	if r == nil || r.Removed {
		return nil
	}
	return r
}

// LiveRooms returns the rooms still present, in ID order.
func (l *Layout) LiveRooms() []*Room {
	out := make([]*Room, 0, len(l.Rooms))
	for _, r := range l.Rooms {
		if r != nil && !r.Removed {
			out = append(out, r)
		}
	}
	return out
}

// LiveRoomCount returns the number of rooms still present.
func (l *Layout) LiveRoomCount() int {
	n := 0
	for _, r := range l.Rooms {
		if r != nil && !r.Removed {
			n++
		}
	}
	return n
}

package dungeon

import (
	"sort"
	"testing"

	"dungeonforge/internal/grid"
)

func TestNewRoom(t *testing.T) {
	r := NewRoom(3, grid.NewRect(5, 5, 6, 4), ShapeRectangle)
	if r.ID != 3 {
		t.Errorf("ID = %d, want 3", r.ID)
	}
	if r.DistanceFromStart != -1 {
		t.Errorf("DistanceFromStart = %d, want -1 before path computation", r.DistanceFromStart)
	}
	if r.Degree() != 0 {
		t.Errorf("Degree = %d, want 0", r.Degree())
	}
	if want := (grid.Pos{X: 7, Y: 6}); r.Center != want {
		t.Errorf("Center = %v, want %v", r.Center, want)
	}
}

func TestConnectedIDsSorted(t *testing.T) {
	r := NewRoom(0, grid.NewRect(0, 0, 4, 4), ShapeRectangle)
	for _, id := range []int{9, 2, 7, 1, 5} {
		r.Connected.Put(id)
	}

	ids := r.ConnectedIDs()
	if len(ids) != 5 {
		t.Fatalf("len = %d, want 5", len(ids))
	}
	if !sort.IntsAreSorted(ids) {
		t.Errorf("ids not sorted: %v", ids)
	}
	if r.Degree() != 5 {
		t.Errorf("Degree = %d, want 5", r.Degree())
	}

	r.Connected.Remove(7)
	if r.Connected.Has(7) {
		t.Error("id 7 still present after Remove")
	}
	if r.Degree() != 4 {
		t.Errorf("Degree = %d after removal, want 4", r.Degree())
	}
}

func TestLayoutRoomLookup(t *testing.T) {
	a := NewRoom(0, grid.NewRect(1, 1, 4, 4), ShapeRectangle)
	b := NewRoom(1, grid.NewRect(10, 1, 4, 4), ShapeRectangle)
	b.Removed = true
	l := &Layout{Rooms: []*Room{a, b}}

	if l.Room(0) != a {
		t.Error("live room not returned")
	}
	if l.Room(1) != nil {
		t.Error("removed room returned")
	}
	if l.Room(-1) != nil || l.Room(2) != nil {
		t.Error("out-of-range ID returned a room")
	}
	if got := l.LiveRoomCount(); got != 1 {
		t.Errorf("LiveRoomCount = %d, want 1", got)
	}
	live := l.LiveRooms()
	if len(live) != 1 || live[0] != a {
		t.Errorf("LiveRooms = %v", live)
	}
}

package dungeon

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/internal/grid"
)

// RoomType classifies a room for downstream placement collaborators.
type RoomType uint8

const (
	RoomStandard RoomType = iota
	RoomCombat
	RoomEmpty
	RoomTreasure
	RoomSecret
	RoomPuzzle
	RoomTrap
	RoomBoss
)

func (t RoomType) String() string {
	switch t {
	case RoomStandard:
		return "standard"
	case RoomCombat:
		return "combat"
	case RoomEmpty:
		return "empty"
	case RoomTreasure:
		return "treasure"
	case RoomSecret:
		return "secret"
	case RoomPuzzle:
		return "puzzle"
	case RoomTrap:
		return "trap"
	case RoomBoss:
		return "boss"
	}
	return fmt.Sprintf("roomtype(%d)", uint8(t))
}

// RoomShape distinguishes carved rectangles from flood-filled blobs.
type RoomShape uint8

const (
	ShapeRectangle RoomShape = iota
	ShapeIrregular
)

func (s RoomShape) String() string {
	if s == ShapeIrregular {
		return "irregular"
	}
	return "rectangle"
}

// Room is one room of a layout. IDs are permanent arena slots: a removed
// room keeps its ID and slot so references held by corridors or external
// collaborators never shift.
type Room struct {
	ID                int
	Type              RoomType
	Shape             RoomShape
	Bounds            grid.Rect
	Center            grid.Pos
	Connected         mapset.Set[int]
	DistanceFromStart int
	OnMainPath        bool
	Removed           bool
}

// NewRoom builds a room over bounds with an empty adjacency set.
func NewRoom(id int, bounds grid.Rect, shape RoomShape) *Room {
	return &Room{
		ID:                id,
		Shape:             shape,
		Bounds:            bounds,
		Center:            bounds.Center(),
		Connected:         mapset.New[int](),
		DistanceFromStart: -1,
	}
}

// ConnectedIDs returns the adjacency set as a sorted slice. Sorting makes
// graph traversal order independent of map iteration order, which the
// determinism contract requires.
func (r *Room) ConnectedIDs() []int {
	ids := make([]int, 0, r.Connected.Size())
	r.Connected.Each(func(id int) { ids = append(ids, id) })
	sort.Ints(ids)
	return ids
}

// Degree returns the number of rooms adjacent to r.
func (r *Room) Degree() int { return r.Connected.Size() }

// Corridor is a carved connection between two rooms. Corridors are derived
// artifacts: one whose endpoint room is removed gets dropped from the
// layout's corridor list.
type Corridor struct {
	ID        int
	Width     int
	StartRoom int
	EndRoom   int
	Path      []grid.Pos
}

// Package dungeon defines the data model for generated layouts: the
// generation parameters, rooms, corridors, the layout itself, and the
// advisory validator.
package dungeon

import "fmt"

// Algorithm selects the primary generation strategy.
type Algorithm uint8

const (
	AlgorithmBSP Algorithm = iota
	AlgorithmCellular
	AlgorithmRoomFirst
	AlgorithmMaze
	AlgorithmHybrid
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBSP:
		return "bsp"
	case AlgorithmCellular:
		return "cellular"
	case AlgorithmRoomFirst:
		return "roomfirst"
	case AlgorithmMaze:
		return "maze"
	case AlgorithmHybrid:
		return "hybrid"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range []Algorithm{AlgorithmBSP, AlgorithmCellular, AlgorithmRoomFirst, AlgorithmMaze, AlgorithmHybrid} {
		if a.String() == s {
			return a, nil
		}
	}
	return AlgorithmBSP, fmt.Errorf("unknown algorithm %q", s)
}

// Theme tags a layout for external tile rendering. The generation
// algorithms never interpret it.
type Theme uint8

const (
	ThemeStone Theme = iota
	ThemeCave
	ThemeCrypt
	ThemeGarden
)

func (t Theme) String() string {
	switch t {
	case ThemeStone:
		return "stone"
	case ThemeCave:
		return "cave"
	case ThemeCrypt:
		return "crypt"
	case ThemeGarden:
		return "garden"
	}
	return fmt.Sprintf("theme(%d)", uint8(t))
}

// Params is the immutable input to one generation call. The same Params
// value (seed included) always produces an identical layout.
type Params struct {
	Width              int       `json:"width"`
	Height             int       `json:"height"`
	MinRooms           int       `json:"min_rooms"`
	MaxRooms           int       `json:"max_rooms"`
	MinRoomW           int       `json:"min_room_w"`
	MinRoomH           int       `json:"min_room_h"`
	MaxRoomW           int       `json:"max_room_w"`
	MaxRoomH           int       `json:"max_room_h"`
	Density            float64   `json:"density"`
	SpecialRoomRatio   float64   `json:"special_room_ratio"`
	CorridorWidth      int       `json:"corridor_width"`
	Seed               int64     `json:"seed"`
	Algorithm          Algorithm `json:"algorithm"`
	AllowLoops         bool      `json:"allow_loops"`
	Branching          float64   `json:"branching"`
	RemoveDeadEnds     bool      `json:"remove_dead_ends"`
	CriticalPathLength int       `json:"critical_path_length"`
	Theme              Theme     `json:"theme"`
}

// DefaultParams returns a reasonable mid-size parameter set.
func DefaultParams() Params {
	return Params{
		Width:              60,
		Height:             40,
		MinRooms:           6,
		MaxRooms:           12,
		MinRoomW:           4,
		MinRoomH:           4,
		MaxRoomW:           9,
		MaxRoomH:           9,
		Density:            0.5,
		SpecialRoomRatio:   0.3,
		CorridorWidth:      1,
		Seed:               1,
		Algorithm:          AlgorithmBSP,
		AllowLoops:         true,
		Branching:          0.3,
		RemoveDeadEnds:     false,
		CriticalPathLength: 3,
		Theme:              ThemeStone,
	}
}

// Check rejects parameter sets the generator cannot act on.
func (p Params) Check() error {
	if p.Width < 10 || p.Height < 10 {
		return fmt.Errorf("map bounds %dx%d too small (minimum 10x10)", p.Width, p.Height)
	}
	if p.MinRoomW < 3 || p.MinRoomH < 3 {
		return fmt.Errorf("minimum room size %dx%d too small (minimum 3x3)", p.MinRoomW, p.MinRoomH)
	}
	if p.MaxRoomW < p.MinRoomW || p.MaxRoomH < p.MinRoomH {
		return fmt.Errorf("max room size %dx%d below min room size %dx%d",
			p.MaxRoomW, p.MaxRoomH, p.MinRoomW, p.MinRoomH)
	}
	if p.MinRooms < 1 || p.MaxRooms < p.MinRooms {
		return fmt.Errorf("room count bounds [%d,%d] invalid", p.MinRooms, p.MaxRooms)
	}
	if p.CorridorWidth < 1 {
		return fmt.Errorf("corridor width %d invalid", p.CorridorWidth)
	}
	return nil
}

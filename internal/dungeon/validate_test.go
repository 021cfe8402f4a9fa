package dungeon

import (
	"strings"
	"testing"

	"dungeonforge/internal/grid"
)

// cleanLayout builds a minimal two-room layout that passes validation.
func cleanLayout() *Layout {
	g := grid.New(30, 20)
	a := NewRoom(0, grid.NewRect(2, 2, 5, 5), ShapeRectangle)
	b := NewRoom(1, grid.NewRect(20, 10, 5, 5), ShapeRectangle)
	for _, r := range []*Room{a, b} {
		for y := r.Bounds.Y1; y <= r.Bounds.Y2; y++ {
			for x := r.Bounds.X1; x <= r.Bounds.X2; x++ {
				g.Set(x, y, grid.CellFloor)
			}
		}
	}
	a.Connected.Put(1)
	b.Connected.Put(0)
	a.DistanceFromStart = 0
	b.DistanceFromStart = 1
	b.Type = RoomBoss

	params := DefaultParams()
	params.MinRooms = 2
	params.CriticalPathLength = 1

	return &Layout{
		Width: 30, Height: 20,
		Grid:      g,
		Rooms:     []*Room{a, b},
		StartRoom: 0,
		BossRoom:  1,
		Params:    params,
	}
}

func TestValidateCleanLayout(t *testing.T) {
	if diags := Validate(cleanLayout()); len(diags) != 0 {
		t.Errorf("clean layout produced findings: %v", diags)
	}
}

func TestValidateNilAndDegenerate(t *testing.T) {
	if diags := Validate(nil); len(diags) != 1 {
		t.Errorf("nil layout findings = %v", diags)
	}

	l := cleanLayout()
	l.Grid = nil
	if diags := Validate(l); len(diags) == 0 {
		t.Error("missing grid not reported")
	}
}

func TestValidateFindings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Layout)
		want   string
	}{
		{
			"no rooms",
			func(l *Layout) { l.Rooms = nil },
			"no rooms",
		},
		{
			"below minimum room count",
			func(l *Layout) { l.Params.MinRooms = 5 },
			"requested as minimum",
		},
		{
			"dangling start reference",
			func(l *Layout) { l.StartRoom = 9 },
			"start room 9",
		},
		{
			"dangling boss reference",
			func(l *Layout) { l.Rooms[1].Removed = true },
			"boss room 1",
		},
		{
			"undersized room",
			func(l *Layout) { l.Rooms[1].Bounds = grid.NewRect(20, 10, 2, 2) },
			"undersized",
		},
		{
			"unreachable room",
			func(l *Layout) {
				l.Rooms[0].Connected.Remove(1)
				l.Rooms[1].Connected.Remove(0)
			},
			"not reachable",
		},
		{
			"short critical path",
			func(l *Layout) { l.Params.CriticalPathLength = 4 },
			"critical path length",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := cleanLayout()
			tc.mutate(l)
			diags := Validate(l)
			found := false
			for _, d := range diags {
				if strings.Contains(d, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("findings %v do not mention %q", diags, tc.want)
			}
		})
	}
}

func TestValidateIsReadOnly(t *testing.T) {
	l := cleanLayout()
	l.Rooms[0].Connected.Remove(1)
	l.Rooms[1].Connected.Remove(0)

	first := Validate(l)
	second := Validate(l)
	if len(first) != len(second) {
		t.Fatalf("repeated validation diverged: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("finding %d changed between runs: %q vs %q", i, first[i], second[i])
		}
	}
}

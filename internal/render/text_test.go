package render

import (
	"strings"
	"testing"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/generate"
	"dungeonforge/internal/grid"
)

func TestTextDimensions(t *testing.T) {
	params := dungeon.DefaultParams()
	params.Width = 24
	params.Height = 16
	params.Seed = 5
	layout, err := generate.New(params).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := Text(layout)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 16 {
		t.Fatalf("rows = %d, want 16", len(lines))
	}
	for i, line := range lines {
		if len(line) != 24 {
			t.Errorf("row %d width = %d, want 24", i, len(line))
		}
	}
}

func TestTextMarkers(t *testing.T) {
	params := dungeon.DefaultParams()
	params.Seed = 9
	layout, err := generate.New(params).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := Text(layout)
	if strings.Count(out, "S") != 1 {
		t.Errorf("start marker count = %d, want 1", strings.Count(out, "S"))
	}
	if strings.Count(out, "B") != 1 {
		t.Errorf("boss marker count = %d, want 1", strings.Count(out, "B"))
	}
	for _, ch := range out {
		switch ch {
		case '#', '.', '+', 'S', 'B', '\n':
		default:
			t.Fatalf("unexpected character %q in text render", ch)
		}
	}
}

func TestTextGlyphMapping(t *testing.T) {
	g := grid.New(10, 10)
	g.Set(1, 1, grid.CellFloor)
	g.Set(2, 1, grid.CellDoor)
	room := dungeon.NewRoom(0, grid.NewRect(1, 1, 3, 3), dungeon.ShapeRectangle)
	room.Center = grid.Pos{X: 1, Y: 1}
	l := &dungeon.Layout{
		Width: 10, Height: 10,
		Grid:      g,
		Rooms:     []*dungeon.Room{room},
		StartRoom: 0,
		BossRoom:  0,
	}

	out := Text(l)
	lines := strings.Split(out, "\n")
	// Start and boss coincide; the boss marker wins.
	if lines[1][1] != 'B' {
		t.Errorf("cell (1,1) = %q, want boss marker", lines[1][1])
	}
	if lines[1][2] != '+' {
		t.Errorf("cell (2,1) = %q, want door", lines[1][2])
	}
	if lines[0][0] != '#' {
		t.Errorf("cell (0,0) = %q, want wall", lines[0][0])
	}
}

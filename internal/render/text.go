package render

import (
	"strings"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// Text renders a layout as plain ASCII, one row per line: '#' wall,
// '.' floor, '+' door, with 'S' and 'B' at the start and boss room
// centers. Useful for logs, tests, and the HTTP text endpoint.
func Text(l *dungeon.Layout) string {
	var b strings.Builder
	b.Grow((l.Grid.Width + 1) * l.Grid.Height)

	marks := map[grid.Pos]byte{}
	if r := l.Room(l.StartRoom); r != nil {
		marks[r.Center] = 'S'
	}
	if r := l.Room(l.BossRoom); r != nil {
		marks[r.Center] = 'B'
	}

	for y := 0; y < l.Grid.Height; y++ {
		for x := 0; x < l.Grid.Width; x++ {
			if m, ok := marks[grid.Pos{X: x, Y: y}]; ok {
				b.WriteByte(m)
				continue
			}
			switch l.Grid.At(x, y) {
			case grid.CellWall:
				b.WriteByte('#')
			case grid.CellDoor:
				b.WriteByte('+')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

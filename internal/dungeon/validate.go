package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validate runs a read-only structural check over a layout and returns a
// list of human-readable diagnostics. It never fails hard: callers decide
// whether a finding warrants regeneration with a new seed.
func Validate(l *Layout) []string {
	var diags []string

	if l == nil {
		return []string{"layout is nil"}
	}
	if l.Grid == nil || l.Grid.Width <= 0 || l.Grid.Height <= 0 {
		diags = append(diags, "grid is missing or degenerate")
		return diags
	}
	if l.Grid.CountOpen() == 0 {
		diags = append(diags, "grid contains no floor cells")
	}

	live := l.LiveRooms()
	if len(live) == 0 {
		diags = append(diags, "layout contains no rooms")
		return diags
	}
	if len(live) < l.Params.MinRooms {
		diags = append(diags, fmt.Sprintf("only %d rooms generated, %d requested as minimum",
			len(live), l.Params.MinRooms))
	}

	start := l.Room(l.StartRoom)
	if start == nil {
		diags = append(diags, fmt.Sprintf("start room %d does not reference an existing room", l.StartRoom))
	}
	boss := l.Room(l.BossRoom)
	if boss == nil {
		diags = append(diags, fmt.Sprintf("boss room %d does not reference an existing room", l.BossRoom))
	}

	for _, r := range live {
		if r.Bounds.Width() < 3 || r.Bounds.Height() < 3 {
			diags = append(diags, fmt.Sprintf("room %d is undersized (%dx%d)",
				r.ID, r.Bounds.Width(), r.Bounds.Height()))
		}
	}

	if start != nil {
		reached := reachableFrom(l, l.StartRoom)
		for _, r := range live {
			if !reached.Has(r.ID) {
				diags = append(diags, fmt.Sprintf("room %d is not reachable from the start room", r.ID))
			}
		}
		if boss != nil && boss.DistanceFromStart >= 0 &&
			boss.DistanceFromStart < l.Params.CriticalPathLength {
			diags = append(diags, fmt.Sprintf("critical path length %d below requested minimum %d",
				boss.DistanceFromStart, l.Params.CriticalPathLength))
		}
	}

	return diags
}

// reachableFrom collects the set of room IDs reachable from start over the
// room adjacency graph.
func reachableFrom(l *Layout, start int) mapset.Set[int] {
	reached := mapset.New[int]()
	if l.Room(start) == nil {
		return reached
	}
	reached.Put(start)
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		room := l.Room(cur)
		if room == nil {
			continue
		}
		for _, next := range room.ConnectedIDs() {
			if l.Room(next) == nil || reached.Has(next) {
				continue
			}
			reached.Put(next)
			queue = append(queue, next)
		}
	}
	return reached
}

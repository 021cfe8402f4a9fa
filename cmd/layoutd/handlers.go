package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/generate"
	"dungeonforge/internal/grid"
	"dungeonforge/internal/render"
)

// layoutView is the JSON shape returned by /api/layout. Removed room
// slots are omitted; IDs are stable so connections stay resolvable.
type layoutView struct {
	Params    dungeon.Params `json:"params"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	StartRoom int            `json:"start_room"`
	BossRoom  int            `json:"boss_room"`
	Rooms     []roomView     `json:"rooms"`
	Corridors []corridorView `json:"corridors"`
	Grid      []string       `json:"grid"`
	Findings  []string       `json:"findings,omitempty"`
}

type roomView struct {
	ID                int    `json:"id"`
	Type              string `json:"type"`
	Shape             string `json:"shape"`
	X                 int    `json:"x"`
	Y                 int    `json:"y"`
	W                 int    `json:"w"`
	H                 int    `json:"h"`
	CenterX           int    `json:"center_x"`
	CenterY           int    `json:"center_y"`
	Connections       []int  `json:"connections"`
	DistanceFromStart int    `json:"distance_from_start"`
	OnMainPath        bool   `json:"on_main_path"`
}

type corridorView struct {
	ID        int `json:"id"`
	Width     int `json:"width"`
	StartRoom int `json:"start_room"`
	EndRoom   int `json:"end_room"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleLayout(w http.ResponseWriter, r *http.Request) {
	layout, ok := generateFromQuery(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, buildView(layout))
}

func handleLayoutText(w http.ResponseWriter, r *http.Request) {
	layout, ok := generateFromQuery(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(render.Text(layout)))
}

// generateFromQuery parses query parameters, runs the generator, and
// writes the error response itself when either step fails.
func generateFromQuery(w http.ResponseWriter, r *http.Request) (*dungeon.Layout, bool) {
	params, err := paramsFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	layout, err := generate.New(params).Generate()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return layout, true
}

// paramsFromQuery overlays query-string values on the defaults. Absent
// keys keep their default; malformed values are an error, not a fallback.
func paramsFromQuery(r *http.Request) (dungeon.Params, error) {
	p := dungeon.DefaultParams()
	q := r.URL.Query()

	var err error
	intParam := func(key string, dst *int) {
		if err != nil || !q.Has(key) {
			return
		}
		v, parseErr := strconv.Atoi(q.Get(key))
		if parseErr != nil {
			err = &queryError{key, q.Get(key)}
			return
		}
		*dst = v
	}
	floatParam := func(key string, dst *float64) {
		if err != nil || !q.Has(key) {
			return
		}
		v, parseErr := strconv.ParseFloat(q.Get(key), 64)
		if parseErr != nil {
			err = &queryError{key, q.Get(key)}
			return
		}
		*dst = v
	}
	boolParam := func(key string, dst *bool) {
		if err != nil || !q.Has(key) {
			return
		}
		v, parseErr := strconv.ParseBool(q.Get(key))
		if parseErr != nil {
			err = &queryError{key, q.Get(key)}
			return
		}
		*dst = v
	}

	intParam("width", &p.Width)
	intParam("height", &p.Height)
	intParam("min_rooms", &p.MinRooms)
	intParam("max_rooms", &p.MaxRooms)
	intParam("min_room_w", &p.MinRoomW)
	intParam("min_room_h", &p.MinRoomH)
	intParam("max_room_w", &p.MaxRoomW)
	intParam("max_room_h", &p.MaxRoomH)
	intParam("corridor_width", &p.CorridorWidth)
	intParam("critical_path_length", &p.CriticalPathLength)
	floatParam("density", &p.Density)
	floatParam("special_room_ratio", &p.SpecialRoomRatio)
	floatParam("branching", &p.Branching)
	boolParam("loops", &p.AllowLoops)
	boolParam("prune", &p.RemoveDeadEnds)
	if err != nil {
		return p, err
	}

	if q.Has("seed") {
		v, parseErr := strconv.ParseInt(q.Get("seed"), 10, 64)
		if parseErr != nil {
			return p, &queryError{"seed", q.Get("seed")}
		}
		p.Seed = v
	}
	if q.Has("algorithm") {
		a, parseErr := dungeon.ParseAlgorithm(q.Get("algorithm"))
		if parseErr != nil {
			return p, parseErr
		}
		p.Algorithm = a
	}

	if err := p.Check(); err != nil {
		return p, err
	}
	return p, nil
}

type queryError struct {
	key   string
	value string
}

func (e *queryError) Error() string {
	return "invalid value " + strconv.Quote(e.value) + " for query parameter " + strconv.Quote(e.key)
}

// buildView flattens a layout into its JSON shape, running the advisory
// validator so clients see findings without a second call.
func buildView(l *dungeon.Layout) layoutView {
	view := layoutView{
		Params:    l.Params,
		Width:     l.Width,
		Height:    l.Height,
		StartRoom: l.StartRoom,
		BossRoom:  l.BossRoom,
		Findings:  dungeon.Validate(l),
	}
	for _, room := range l.LiveRooms() {
		view.Rooms = append(view.Rooms, roomView{
			ID:                room.ID,
			Type:              room.Type.String(),
			Shape:             room.Shape.String(),
			X:                 room.Bounds.X1,
			Y:                 room.Bounds.Y1,
			W:                 room.Bounds.Width(),
			H:                 room.Bounds.Height(),
			CenterX:           room.Center.X,
			CenterY:           room.Center.Y,
			Connections:       room.ConnectedIDs(),
			DistanceFromStart: room.DistanceFromStart,
			OnMainPath:        room.OnMainPath,
		})
	}
	for _, c := range l.Corridors {
		view.Corridors = append(view.Corridors, corridorView{
			ID:        c.ID,
			Width:     c.Width,
			StartRoom: c.StartRoom,
			EndRoom:   c.EndRoom,
		})
	}
	view.Grid = gridLines(l)
	return view
}

// gridLines renders the grid one row per string, '#' wall, '.' floor,
// '+' door.
func gridLines(l *dungeon.Layout) []string {
	lines := make([]string, 0, l.Grid.Height)
	row := make([]byte, l.Grid.Width)
	for y := 0; y < l.Grid.Height; y++ {
		for x := 0; x < l.Grid.Width; x++ {
			switch l.Grid.At(x, y) {
			case grid.CellWall:
				row[x] = '#'
			case grid.CellDoor:
				row[x] = '+'
			default:
				row[x] = '.'
			}
		}
		lines = append(lines, string(row))
	}
	return lines
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

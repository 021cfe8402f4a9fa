// Package render draws generated layouts, either onto a tcell screen for
// the interactive browser or as plain text for logs and HTTP responses.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// hudRows is the number of bottom screen rows reserved for status text.
const hudRows = 6

// Renderer draws a dungeon layout onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
	}
}

// Resize refits the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudRows
}

// CenterOn recenters the camera on grid position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Pan shifts the viewport by (dx, dy) grid cells.
func (r *Renderer) Pan(dx, dy int) { r.camera.Pan(dx, dy) }

// DrawLayout renders the grid, the room markers, and the HUD.
func (r *Renderer) DrawLayout(l *dungeon.Layout, diags []string) {
	r.screen.Clear()
	r.drawGrid(l)
	r.drawRoomMarkers(l)
	r.drawHUD(l, diags)
	r.screen.Show()
}

func (r *Renderer) drawGrid(l *dungeon.Layout) {
	theme := themeFor(l.Params.Theme)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < l.Grid.Height; y++ {
		for x := 0; x < l.Grid.Width; x++ {
			sx, sy, onScreen := r.camera.GridToScreen(x, y)
			if !onScreen {
				continue
			}
			var glyph string
			switch l.Grid.At(x, y) {
			case grid.CellWall:
				glyph = theme.Wall
			case grid.CellDoor:
				glyph = theme.Door
			default:
				glyph = theme.Floor
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// drawRoomMarkers overlays start, boss, and critical-path markers on the
// room centers.
func (r *Renderer) drawRoomMarkers(l *dungeon.Layout) {
	theme := themeFor(l.Params.Theme)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	for _, room := range l.LiveRooms() {
		var glyph string
		switch {
		case room.ID == l.StartRoom:
			glyph = theme.Start
		case room.ID == l.BossRoom:
			glyph = theme.Boss
		case room.OnMainPath:
			glyph = theme.Path
		default:
			continue
		}
		sx, sy, onScreen := r.camera.GridToScreen(room.Center.X, room.Center.Y)
		if onScreen {
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// drawHUD renders the parameter summary and validator diagnostics in the
// reserved bottom rows.
func (r *Renderer) drawHUD(l *dungeon.Layout, diags []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	p := l.Params
	line1 := fmt.Sprintf("seed %d  algo %s  theme %s  %dx%d", p.Seed, p.Algorithm, p.Theme, p.Width, p.Height)
	line2 := fmt.Sprintf("rooms %d/%d  corridors %d  loops=%v deadends=%v",
		l.LiveRoomCount(), l.RoomsRequested, len(l.Corridors), p.AllowLoops, p.RemoveDeadEnds)
	r.drawText(0, hudY+1, line1, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, line2, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if len(diags) == 0 {
		r.drawText(0, hudY+3, "validator: ok", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	} else {
		// Last two diagnostics fit the remaining rows.
		start := len(diags) - 2
		if start < 0 {
			start = 0
		}
		r.drawText(0, hudY+3, fmt.Sprintf("validator: %d finding(s)", len(diags)),
			tcell.StyleDefault.Foreground(tcell.ColorYellow))
		for i, d := range diags[start:] {
			r.drawText(0, hudY+4+i, d, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
		}
	}

	help := "[1-5] algorithm  [n]ew seed  [t]heme  [l]oops  [d]eadends  arrows pan  [q]uit"
	r.drawText(0, screenH-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), filling the second column for double-width glyphs.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// Package viewer implements the interactive terminal browser for
// generated layouts: regenerate with new seeds, switch algorithms and
// themes, toggle topology knobs, and inspect validator findings.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/generate"
	"dungeonforge/internal/render"
)

// Viewer owns one screen and the parameter set being browsed.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	params   dungeon.Params
	layout   *dungeon.Layout
	diags    []string
	genErr   error
}

// New creates a Viewer over an initialized screen.
func New(screen tcell.Screen, params dungeon.Params) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		params:   params,
	}
}

// Run regenerates and redraws until the user quits. It blocks for the
// lifetime of the screen.
func (v *Viewer) Run() {
	defer v.screen.Fini()

	v.regenerate()
	for {
		v.draw()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event; false means quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.renderer.Pan(0, -2)
		return true
	case tcell.KeyDown:
		v.renderer.Pan(0, 2)
		return true
	case tcell.KeyLeft:
		v.renderer.Pan(-2, 0)
		return true
	case tcell.KeyRight:
		v.renderer.Pan(2, 0)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'n', 'N':
		v.params.Seed++
		v.regenerate()
	case 'r', 'R':
		v.regenerate()
	case '1':
		v.setAlgorithm(dungeon.AlgorithmBSP)
	case '2':
		v.setAlgorithm(dungeon.AlgorithmCellular)
	case '3':
		v.setAlgorithm(dungeon.AlgorithmRoomFirst)
	case '4':
		v.setAlgorithm(dungeon.AlgorithmMaze)
	case '5':
		v.setAlgorithm(dungeon.AlgorithmHybrid)
	case 't', 'T':
		v.params.Theme = (v.params.Theme + 1) % 4
		v.regenerate()
	case 'l', 'L':
		v.params.AllowLoops = !v.params.AllowLoops
		v.regenerate()
	case 'd', 'D':
		v.params.RemoveDeadEnds = !v.params.RemoveDeadEnds
		v.regenerate()
	}
	return true
}

func (v *Viewer) setAlgorithm(a dungeon.Algorithm) {
	v.params.Algorithm = a
	v.regenerate()
}

// regenerate runs one full generation pass and validates the result.
func (v *Viewer) regenerate() {
	layout, err := generate.New(v.params).Generate()
	if err != nil {
		v.genErr = err
		return
	}
	v.genErr = nil
	v.layout = layout
	v.diags = dungeon.Validate(layout)
	v.renderer.CenterOn(layout.Width/2, layout.Height/2)
}

func (v *Viewer) draw() {
	if v.genErr != nil {
		v.screen.Clear()
		msg := fmt.Sprintf("generation failed: %v (press n for a new seed, q to quit)", v.genErr)
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		for i, r := range msg {
			v.screen.SetContent(i, 0, r, nil, style)
		}
		v.screen.Show()
		return
	}
	v.renderer.DrawLayout(v.layout, v.diags)
}

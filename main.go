// dungeonforge generates procedural dungeon layouts and browses them in
// the terminal. Build:
//
//	go build -o dungeonforge .
//
// Usage:
//
//	./dungeonforge [--seed 1] [--algo bsp] [--width 60] [--height 40]
//	./dungeonforge --text            # print ASCII to stdout and exit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/generate"
	"dungeonforge/internal/render"
	"dungeonforge/internal/viewer"
)

func main() {
	params := dungeon.DefaultParams()
	algo := flag.String("algo", params.Algorithm.String(), "generation algorithm: bsp, cellular, roomfirst, maze, hybrid")
	flag.IntVar(&params.Width, "width", params.Width, "grid width in cells")
	flag.IntVar(&params.Height, "height", params.Height, "grid height in cells")
	flag.Int64Var(&params.Seed, "seed", params.Seed, "random seed; same seed and parameters give the same layout")
	flag.IntVar(&params.MinRooms, "min-rooms", params.MinRooms, "minimum room count")
	flag.IntVar(&params.MaxRooms, "max-rooms", params.MaxRooms, "maximum room count")
	flag.Float64Var(&params.Density, "density", params.Density, "fill density for cave and maze styles")
	flag.Float64Var(&params.Branching, "branching", params.Branching, "loop injection factor")
	flag.BoolVar(&params.AllowLoops, "loops", params.AllowLoops, "inject extra loop connections")
	flag.BoolVar(&params.RemoveDeadEnds, "prune", params.RemoveDeadEnds, "remove dead-end rooms")
	textOnly := flag.Bool("text", false, "print the layout as ASCII and exit")
	flag.Parse()

	a, err := dungeon.ParseAlgorithm(*algo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	params.Algorithm = a

	if err := params.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *textOnly {
		layout, err := generate.New(params).Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(render.Text(layout))
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	viewer.New(screen, params).Run()
}

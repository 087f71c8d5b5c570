// planterm renders a route search in the terminal. It loads a YAML
// scenario, draws the occupancy grid and either steps the search one
// expansion per keypress or runs it to completion.
//
// Keys: space = one expansion, enter = run to the end, r = restart,
// q or Esc = quit.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/gridplan"
	"github.com/pdrpinto/gridplan/scenario"
)

var (
	styleDefault  = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleOpen     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleClosed   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type app struct {
	screen tcell.Screen
	scn    *scenario.Scenario
	grid   *gridplan.OccupancyGrid

	stepper *gridplan.Stepper
	last    gridplan.StepSnapshot

	startCell  gridplan.CellIndex
	targetCell gridplan.CellIndex
}

func newApp(screen tcell.Screen, scn *scenario.Scenario) (*app, error) {
	grid, err := scn.Grid()
	if err != nil {
		return nil, err
	}
	a := &app{screen: screen, scn: scn, grid: grid}
	a.startCell, err = grid.WorldToCell(scn.StartPoint())
	if err != nil {
		return nil, err
	}
	a.targetCell, err = grid.WorldToCell(scn.TargetPoint())
	if err != nil {
		return nil, err
	}
	return a, a.restart()
}

func (a *app) restart() error {
	stepper, err := gridplan.NewStepper(a.grid, a.scn.StartPoint(), a.scn.TargetPoint())
	if err != nil {
		return err
	}
	a.stepper = stepper
	a.last = gridplan.StepSnapshot{}
	return nil
}

func (a *app) step() {
	if !a.last.Done {
		a.last = a.stepper.Step()
	}
}

func (a *app) runToEnd() {
	for !a.last.Done {
		a.last = a.stepper.Step()
		a.draw()
		a.screen.Show()
		time.Sleep(10 * time.Millisecond)
	}
}

// draw paints the grid with row 0 at the bottom, matching workspace
// coordinates rather than screen coordinates.
func (a *app) draw() {
	a.screen.Clear()
	height := a.grid.Height()

	put := func(c gridplan.CellIndex, r rune, style tcell.Style) {
		a.screen.SetContent(c.Column, height-1-c.Row, r, nil, style)
	}

	for cell := range a.last.Closed {
		put(cell, '.', styleClosed)
	}
	for cell := range a.last.Open {
		put(cell, 'o', styleOpen)
	}
	for _, cell := range a.grid.OccupiedCells() {
		put(cell, '#', styleObstacle)
	}
	for _, cell := range a.last.Path {
		put(cell, '*', stylePath)
	}
	put(a.startCell, 'S', styleEndpoint)
	put(a.targetCell, 'T', styleEndpoint)

	status := fmt.Sprintf("%s | step %d", a.scn.Name, a.last.StepIndex)
	if a.last.Done {
		if a.last.Found {
			status += fmt.Sprintf(" | found, %d waypoints", len(a.last.Waypoints))
		} else {
			status += " | no path"
		}
	}
	if len(a.scn.WaypointNames) > 0 {
		status += " |"
		for _, name := range a.scn.WaypointNames {
			status += " " + name
		}
	}
	status += " | space=step enter=run r=restart q=quit"
	for i, r := range status {
		a.screen.SetContent(i, height+1, r, nil, styleStatus)
	}
}

func (a *app) loop() error {
	for {
		a.draw()
		a.screen.Show()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Rune() == ' ':
				a.step()
			case ev.Key() == tcell.KeyEnter:
				a.runToEnd()
			case ev.Rune() == 'r':
				if err := a.restart(); err != nil {
					return err
				}
			}
		}
	}
}

func main() {
	scenarioPath := flagScenario()
	scn, err := scenario.Load(scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.SetStyle(styleDefault)
	defer screen.Fini()

	a, err := newApp(screen, scn)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	if err := a.loop(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

func flagScenario() string {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: planterm <scenario.yaml>")
		os.Exit(2)
	}
	return os.Args[1]
}

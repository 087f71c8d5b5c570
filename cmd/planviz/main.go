// planviz serves a step-by-step view of a route search over HTTP: a small
// embedded page polls /next and draws the frontier, the closed set and the
// final path on a canvas. The scenario comes from a YAML file or, when none
// is given, from randomly scattered rectangular obstacles.
package main

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/pdrpinto/gridplan"
	"github.com/pdrpinto/gridplan/scenario"
)

//go:embed static/index.html
var static embed.FS

type snapshot struct {
	Step          int          `json:"step"`
	Width         int          `json:"w"`
	Height        int          `json:"h"`
	Obstacles     [][2]int     `json:"obstacles"`
	Open          [][2]int     `json:"open,omitempty"`
	Closed        [][2]int     `json:"closed,omitempty"`
	Current       [2]int       `json:"current"`
	Start         [2]int       `json:"start"`
	Target        [2]int       `json:"target"`
	Done          bool         `json:"done"`
	Found         bool         `json:"found"`
	Path          [][2]int     `json:"path,omitempty"`
	Waypoints     [][2]float64 `json:"waypoints,omitempty"`
	WaypointNames []string     `json:"waypoint_names,omitempty"`
}

type server struct {
	mu sync.Mutex

	scenarioPath string
	scn          *scenario.Scenario
	grid         *gridplan.OccupancyGrid
	start        gridplan.Point
	target       gridplan.Point
	stepper      *gridplan.Stepper
}

// randomScenario scatters rectangular obstacles over a unit-cell workspace,
// keeping the corners clear so start and target stay reachable endpoints.
func randomScenario(width, height, count int, r *rand.Rand) *scenario.Scenario {
	s := &scenario.Scenario{
		Name: "random",
		Workspace: scenario.Workspace{
			Width: float64(width), Height: float64(height), Footprint: 1,
		},
		Start:  scenario.Point{X: 0.5, Y: 0.5},
		Target: scenario.Point{X: float64(width) - 0.5, Y: float64(height) - 0.5},
	}
	// Obstacles stay at least a cell away from every edge, so the corner
	// endpoints always resolve to free cells.
	for i := 0; i < count; i++ {
		x := 1 + r.Float64()*float64(width-5)
		y := 1 + r.Float64()*float64(height-5)
		w := 0.5 + r.Float64()*2
		h := 0.5 + r.Float64()*2
		s.Obstacles = append(s.Obstacles, scenario.Rectangle{Vertices: []scenario.Point{
			{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
		}})
	}
	return s
}

func (sv *server) reset(width, height, count int) error {
	var scn *scenario.Scenario
	if sv.scenarioPath != "" {
		loaded, err := scenario.Load(sv.scenarioPath)
		if err != nil {
			return err
		}
		scn = loaded
	} else {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		scn = randomScenario(width, height, count, r)
	}

	grid, err := scn.Grid()
	if err != nil {
		return err
	}
	stepper, err := gridplan.NewStepper(grid, scn.StartPoint(), scn.TargetPoint())
	if err != nil {
		return err
	}
	sv.scn = scn
	sv.grid = grid
	sv.start = scn.StartPoint()
	sv.target = scn.TargetPoint()
	sv.stepper = stepper
	return nil
}

func (sv *server) handleInit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	width, height, count := 40, 24, 20
	if v, err := strconv.Atoi(q.Get("w")); err == nil && v > 5 {
		width = v
	}
	if v, err := strconv.Atoi(q.Get("h")); err == nil && v > 5 {
		height = v
	}
	if v, err := strconv.Atoi(q.Get("obstacles")); err == nil && v >= 0 {
		count = v
	}

	sv.mu.Lock()
	defer sv.mu.Unlock()
	if err := sv.reset(width, height, count); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok": true, "name": sv.scn.Name, "w": sv.grid.Width(), "h": sv.grid.Height(),
	})
}

func (sv *server) handleNext(w http.ResponseWriter, r *http.Request) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.stepper == nil {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}

	st := sv.stepper.Step()
	startCell, _ := sv.grid.WorldToCell(sv.start)
	targetCell, _ := sv.grid.WorldToCell(sv.target)

	s := snapshot{
		Step:          st.StepIndex,
		Width:         sv.grid.Width(),
		Height:        sv.grid.Height(),
		Obstacles:     cellsToList(sv.grid.OccupiedCells()),
		Open:          setToList(st.Open),
		Closed:        setToList(st.Closed),
		Current:       [2]int{st.Current.Column, st.Current.Row},
		Start:         [2]int{startCell.Column, startCell.Row},
		Target:        [2]int{targetCell.Column, targetCell.Row},
		Done:          st.Done,
		Found:         st.Found,
		WaypointNames: sv.scn.WaypointNames,
	}
	if st.Found {
		s.Path = cellsToList(st.Path)
		for _, p := range st.Waypoints {
			s.Waypoints = append(s.Waypoints, [2]float64{p.X, p.Y})
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

func cellsToList(cells []gridplan.CellIndex) [][2]int {
	res := make([][2]int, 0, len(cells))
	for _, c := range cells {
		res = append(res, [2]int{c.Column, c.Row})
	}
	return res
}

func setToList(m map[gridplan.CellIndex]bool) [][2]int {
	res := make([][2]int, 0, len(m))
	for c, ok := range m {
		if ok {
			res = append(res, [2]int{c.Column, c.Row})
		}
	}
	return res
}

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file; omit for random obstacles")
	flag.Parse()

	sv := &server{scenarioPath: *scenarioPath}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/init", sv.handleInit)
	mux.HandleFunc("/next", sv.handleNext)
	srv := &http.Server{Handler: mux}

	// Try 8080 first, then fall back to a random free port
	ln, err := net.Listen("tcp", ":8080")
	if err != nil {
		ln, err = net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			log.Fatal(err)
		}
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	fmt.Printf("planviz: http://localhost:%s/static/index.html\n", port)
	if err := srv.Serve(ln); err != nil {
		log.Fatal(err)
	}
}

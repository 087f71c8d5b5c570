package gridplan

// StepSnapshot exposes the per-iteration state of the search. All maps and
// slices are copies; visualizers may hold or mutate them freely.
type StepSnapshot struct {
	Current   CellIndex
	Open      map[CellIndex]bool
	Closed    map[CellIndex]bool
	CameFrom  map[CellIndex]CellIndex
	Done      bool
	Found     bool
	Path      []CellIndex
	Waypoints []Point
	StepIndex int
}

// Stepper drives the same search as FindPath one expansion at a time, for
// UIs and debugging tools that want to watch the frontier move.
type Stepper struct {
	search *search
}

// NewStepper validates the endpoints and prepares a step-by-step search.
// It fails the same way FindPath does: OutOfBoundsError for endpoints
// outside the workspace, InvalidEndpointError for endpoints inside an
// obstacle.
func NewStepper(grid *OccupancyGrid, start, target Point, options ...Option) (*Stepper, error) {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	s, err := newSearch(grid, start, target, searchOptions)
	if err != nil {
		return nil, err
	}
	return &Stepper{search: s}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is terminal, further calls keep returning the terminal
// snapshot.
func (st *Stepper) Step() StepSnapshot {
	s := st.search
	s.step()

	snapshot := StepSnapshot{
		Current:   s.current,
		Open:      copySet(s.openItems),
		Closed:    copyBoolMap(s.closed),
		CameFrom:  copyCameFrom(s.cameFrom),
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.expanded,
	}
	if s.found {
		r := s.result()
		snapshot.Path = r.Path
		snapshot.Waypoints = r.Waypoints
	}
	return snapshot
}

// Result returns the terminal outcome; valid once a Step snapshot reports
// Done.
func (st *Stepper) Result() Result {
	return st.search.result()
}

func copySet(m map[CellIndex]*queueItem) map[CellIndex]bool {
	c := make(map[CellIndex]bool, len(m))
	for k := range m {
		c[k] = true
	}
	return c
}

func copyBoolMap(m map[CellIndex]bool) map[CellIndex]bool {
	c := make(map[CellIndex]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCameFrom(m map[CellIndex]CellIndex) map[CellIndex]CellIndex {
	c := make(map[CellIndex]CellIndex, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

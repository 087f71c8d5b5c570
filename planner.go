package gridplan

import (
	"container/heap"
	"context"
	"math"

	"github.com/pdrpinto/gridplan/internal"
)

// Result contains the outcome of a route query. An exhausted search is not
// an error: Found is false and Path is nil, with a nil error from FindPath,
// so callers must handle "provably no route" explicitly.
type Result struct {
	Path           []CellIndex
	Waypoints      []Point
	TotalCost      float64
	ExpandedNodes  int
	Found          bool
	BudgetExceeded bool
}

// Options defines parameters for the search.
type Options struct {
	// ExpansionBudget caps the number of node expansions; zero means
	// unlimited. An exceeded budget terminates the search as exhausted
	// with Result.BudgetExceeded set.
	ExpansionBudget int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithExpansionBudget caps how many cells the search may expand.
func WithExpansionBudget(n int) Option {
	return func(options *Options) { options.ExpansionBudget = n }
}

// FindPath runs A* over the grid from start to target, both given as
// continuous workspace positions.
//
// Endpoints that fall outside the workspace fail with OutOfBoundsError, and
// endpoints inside an obstacle with InvalidEndpointError, in both cases
// before any cell is expanded. Result.Waypoints holds the cell-center route
// start to target inclusive; it is never a partial path.
func FindPath(ctx context.Context, grid *OccupancyGrid, start, target Point, options ...Option) (Result, error) {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}

	s, err := newSearch(grid, start, target, searchOptions)
	if err != nil {
		return Result{}, err
	}

	for !s.done {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		s.step()
	}
	return s.result(), nil
}

// search owns the per-query mutable state: the frontier, the closed set and
// the cost/predecessor maps keyed by cell index. The grid itself is never
// written, which is what makes concurrent queries over one grid safe.
type search struct {
	grid   *OccupancyGrid
	start  CellIndex
	target CellIndex
	budget int

	open      priorityQueue
	openItems map[CellIndex]*queueItem
	closed    map[CellIndex]bool
	gScore    map[CellIndex]float64
	cameFrom  map[CellIndex]CellIndex

	expanded  int
	current   CellIndex
	totalCost float64
	done      bool
	found     bool
	budgetHit bool
}

func newSearch(grid *OccupancyGrid, start, target Point, options Options) (*search, error) {
	startIndex, err := grid.WorldToCell(start)
	if err != nil {
		return nil, err
	}
	targetIndex, err := grid.WorldToCell(target)
	if err != nil {
		return nil, err
	}
	if grid.Occupied(startIndex) {
		return nil, &InvalidEndpointError{Endpoint: "start", Position: start, Index: startIndex}
	}
	if grid.Occupied(targetIndex) {
		return nil, &InvalidEndpointError{Endpoint: "target", Position: target, Index: targetIndex}
	}

	s := &search{
		grid:      grid,
		start:     startIndex,
		target:    targetIndex,
		budget:    options.ExpansionBudget,
		open:      make(priorityQueue, 0),
		openItems: make(map[CellIndex]*queueItem),
		closed:    make(map[CellIndex]bool),
		gScore:    map[CellIndex]float64{startIndex: 0},
		cameFrom:  make(map[CellIndex]CellIndex),
	}
	heap.Init(&s.open)

	startItem := &queueItem{
		index:  startIndex,
		gScore: 0,
		hScore: s.heuristic(startIndex),
		fCost:  s.heuristic(startIndex),
	}
	heap.Push(&s.open, startItem)
	s.openItems[startIndex] = startItem
	return s, nil
}

// heuristic is the straight-line distance from a cell to the target in
// continuous units. For unit steps of one footprint per orthogonal move it
// never overestimates the true remaining cost, which is what makes the
// returned routes optimal.
func (s *search) heuristic(from CellIndex) float64 {
	dc := float64(from.Column - s.target.Column)
	dr := float64(from.Row - s.target.Row)
	return s.grid.footprint * math.Hypot(dc, dr)
}

// step advances the search by one node expansion.
func (s *search) step() {
	if s.done {
		return
	}
	if s.budget > 0 && s.expanded >= s.budget {
		s.done = true
		s.budgetHit = true
		return
	}

	var item *queueItem
	for {
		if s.open.Len() == 0 {
			s.done = true
			return
		}
		item = heap.Pop(&s.open).(*queueItem)
		delete(s.openItems, item.index)
		if !s.closed[item.index] {
			break
		}
	}

	current := item.index
	s.closed[current] = true
	s.current = current
	s.expanded++

	if current == s.target {
		s.done = true
		s.found = true
		s.totalCost = item.gScore
		return
	}

	for _, neighbor := range s.grid.Neighbors(current) {
		tentativeG := item.gScore + s.grid.footprint
		if previousG, seen := s.gScore[neighbor]; seen && tentativeG >= previousG {
			continue
		}
		// A strictly better route to an already finalized cell re-opens it.
		delete(s.closed, neighbor)

		s.gScore[neighbor] = tentativeG
		s.cameFrom[neighbor] = current

		h := s.heuristic(neighbor)
		if existing, inOpen := s.openItems[neighbor]; inOpen {
			existing.gScore = tentativeG
			existing.hScore = h
			existing.fCost = tentativeG + h
			heap.Fix(&s.open, existing.indexInQueue)
		} else {
			entry := &queueItem{index: neighbor, gScore: tentativeG, hScore: h, fCost: tentativeG + h}
			heap.Push(&s.open, entry)
			s.openItems[neighbor] = entry
		}
	}
}

func (s *search) result() Result {
	r := Result{
		ExpandedNodes:  s.expanded,
		Found:          s.found,
		BudgetExceeded: s.budgetHit,
	}
	if s.found {
		r.Path = internal.ReconstructPath(s.cameFrom, s.target, s.start)
		r.Waypoints = s.grid.Waypoints(r.Path)
		r.TotalCost = s.totalCost
	}
	return r
}

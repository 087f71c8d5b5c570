package gridplan

import "math"

// CellIndex identifies a grid cell by its integer column and row. It is the
// node identity used by the search's bookkeeping maps; two cells are the
// same cell iff their indices are equal.
type CellIndex struct {
	Column, Row int
}

// Cell is one discrete square of the occupancy grid, sized to the vehicle
// footprint. Cells carry static occupancy only; per-search cost and
// predecessor state lives outside the grid.
type Cell struct {
	Index    CellIndex
	Occupied bool
}

// OccupancyGrid is the 2-D array of cells marking which cells are blocked by
// obstacles. It is built once and is safe for concurrent reads afterwards.
type OccupancyGrid struct {
	origin    Point
	footprint float64
	width     int // columns
	height    int // rows

	cells [][]Cell // [row][column]
}

// NewOccupancyGrid builds the grid for a workspace of the given continuous
// extent, rasterizing the obstacles into occupied cells. The footprint is
// the vehicle's effective size and becomes the cell edge length. Dimensions
// are rounded up so the grid covers the whole workspace.
func NewOccupancyGrid(origin Point, width, height, footprint float64, obstacles []Obstacle) (*OccupancyGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigurationError{Reason: "workspace dimensions must be positive"}
	}
	if footprint <= 0 {
		return nil, &ConfigurationError{Reason: "vehicle footprint must be positive"}
	}

	g := &OccupancyGrid{
		origin:    origin,
		footprint: footprint,
		width:     int(math.Ceil(width / footprint)),
		height:    int(math.Ceil(height / footprint)),
	}
	g.cells = make([][]Cell, g.height)
	for row := range g.cells {
		g.cells[row] = make([]Cell, g.width)
		for col := range g.cells[row] {
			g.cells[row][col].Index = CellIndex{Column: col, Row: row}
		}
	}

	g.MarkObstacles(obstacles)
	return g, nil
}

// Width returns the grid width in cells.
func (g *OccupancyGrid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *OccupancyGrid) Height() int { return g.height }

// Footprint returns the cell edge length in continuous units.
func (g *OccupancyGrid) Footprint() float64 { return g.footprint }

// MarkObstacles sets occupancy for every cell covered by the obstacles.
// Rasterization is inclusive: any cell the obstacle's bounding box touches
// is marked, erring toward collision safety. Obstacles lying fully or
// partially outside the grid are clipped to the valid index range.
func (g *OccupancyGrid) MarkObstacles(obstacles []Obstacle) {
	for _, o := range obstacles {
		left := int(math.Floor((o.Left + g.origin.X) / g.footprint))
		right := int(math.Floor((o.Right + g.origin.X) / g.footprint))
		bottom := int(math.Floor((o.Bottom + g.origin.Y) / g.footprint))
		top := int(math.Floor((o.Top + g.origin.Y) / g.footprint))

		left = max(left, 0)
		bottom = max(bottom, 0)
		right = min(right, g.width-1)
		top = min(top, g.height-1)

		for row := bottom; row <= top; row++ {
			for col := left; col <= right; col++ {
				g.cells[row][col].Occupied = true
			}
		}
	}
}

func (g *OccupancyGrid) inBounds(index CellIndex) bool {
	return index.Column >= 0 && index.Column < g.width &&
		index.Row >= 0 && index.Row < g.height
}

// CellAt returns the cell at the given index, or OutOfBoundsError if the
// index falls outside the grid.
func (g *OccupancyGrid) CellAt(index CellIndex) (Cell, error) {
	if !g.inBounds(index) {
		return Cell{}, &OutOfBoundsError{Index: index, Width: g.width, Height: g.height}
	}
	return g.cells[index.Row][index.Column], nil
}

// Occupied reports whether the cell at index is blocked. Out-of-bounds
// indices report true so callers treat the workspace edge as impassable.
func (g *OccupancyGrid) Occupied(index CellIndex) bool {
	if !g.inBounds(index) {
		return true
	}
	return g.cells[index.Row][index.Column].Occupied
}

// Neighbors returns the unoccupied axis-aligned neighbors of index that
// exist within grid bounds, always in the order up, down, left, right so
// expansion order is reproducible across runs.
func (g *OccupancyGrid) Neighbors(index CellIndex) []CellIndex {
	candidates := [4]CellIndex{
		{Column: index.Column, Row: index.Row + 1},
		{Column: index.Column, Row: index.Row - 1},
		{Column: index.Column - 1, Row: index.Row},
		{Column: index.Column + 1, Row: index.Row},
	}
	neighbors := make([]CellIndex, 0, 4)
	for _, c := range candidates {
		if g.inBounds(c) && !g.cells[c.Row][c.Column].Occupied {
			neighbors = append(neighbors, c)
		}
	}
	return neighbors
}

// OccupiedCells returns a snapshot of every occupied cell index, row-major.
// Visualizers consume this to render obstacles; mutating the result has no
// effect on the grid.
func (g *OccupancyGrid) OccupiedCells() []CellIndex {
	var occupied []CellIndex
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].Occupied {
				occupied = append(occupied, CellIndex{Column: col, Row: row})
			}
		}
	}
	return occupied
}

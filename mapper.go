package gridplan

import "math"

// Coordinate mapping between continuous workspace positions and grid cell
// indices. Conversions are total over in-bounds inputs and error rather
// than clamp on out-of-bounds ones, so callers can tell "off the edge of
// the known world" apart from "blocked".

// WorldToCell maps a continuous position to the index of the cell that
// contains it. Positions outside the workspace fail with OutOfBoundsError.
func (g *OccupancyGrid) WorldToCell(p Point) (CellIndex, error) {
	index := CellIndex{
		Column: int(math.Floor((p.X + g.origin.X) / g.footprint)),
		Row:    int(math.Floor((p.Y + g.origin.Y) / g.footprint)),
	}
	if !g.inBounds(index) {
		return CellIndex{}, &OutOfBoundsError{Index: index, Width: g.width, Height: g.height}
	}
	return index, nil
}

// CellCenter maps a cell index back to the continuous coordinate of the
// cell's center. Indices outside the grid fail with OutOfBoundsError.
func (g *OccupancyGrid) CellCenter(index CellIndex) (Point, error) {
	if !g.inBounds(index) {
		return Point{}, &OutOfBoundsError{Index: index, Width: g.width, Height: g.height}
	}
	return g.centerOf(index), nil
}

func (g *OccupancyGrid) centerOf(index CellIndex) Point {
	return Point{
		X: float64(index.Column)*g.footprint + g.footprint/2 - g.origin.X,
		Y: float64(index.Row)*g.footprint + g.footprint/2 - g.origin.Y,
	}
}

// Waypoints converts a cell path into the continuous waypoint list handed
// to flight control or rendering: one cell-center per path cell, start to
// target inclusive. Indices are assumed in-bounds, as produced by a search
// over this grid.
func (g *OccupancyGrid) Waypoints(path []CellIndex) []Point {
	if path == nil {
		return nil
	}
	waypoints := make([]Point, 0, len(path))
	for _, index := range path {
		waypoints = append(waypoints, g.centerOf(index))
	}
	return waypoints
}

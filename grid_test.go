package gridplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridplan"
)

func emptyGrid(t *testing.T, width, height, footprint float64) *gridplan.OccupancyGrid {
	t.Helper()
	g, err := gridplan.NewOccupancyGrid(gridplan.Point{}, width, height, footprint, nil)
	require.NoError(t, err)
	return g
}

func TestNewOccupancyGridDimensions(t *testing.T) {
	g := emptyGrid(t, 10, 10, 1)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())

	// Partial cells round up so the grid covers the whole workspace.
	g = emptyGrid(t, 9.5, 4.2, 1)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 5, g.Height())

	g = emptyGrid(t, 2, 1, 0.25)
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 4, g.Height())
}

func TestNewOccupancyGridRejectsBadParameters(t *testing.T) {
	cases := map[string][3]float64{
		"zero width":         {0, 10, 1},
		"negative height":    {10, -1, 1},
		"zero footprint":     {10, 10, 0},
		"negative footprint": {10, 10, -0.5},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gridplan.NewOccupancyGrid(gridplan.Point{}, c[0], c[1], c[2], nil)
			var configErr *gridplan.ConfigurationError
			require.ErrorAs(t, err, &configErr)
		})
	}
}

func TestMarkObstaclesInclusiveRasterization(t *testing.T) {
	g, err := gridplan.NewOccupancyGrid(gridplan.Point{}, 10, 10, 1, []gridplan.Obstacle{
		rect(2.1, 3.1, 4.9, 5.9),
	})
	require.NoError(t, err)

	for col := 2; col <= 4; col++ {
		for row := 3; row <= 5; row++ {
			assert.True(t, g.Occupied(gridplan.CellIndex{Column: col, Row: row}),
				"cell (%d,%d) overlaps the obstacle", col, row)
		}
	}
	assert.False(t, g.Occupied(gridplan.CellIndex{Column: 1, Row: 3}))
	assert.False(t, g.Occupied(gridplan.CellIndex{Column: 5, Row: 3}))
	assert.False(t, g.Occupied(gridplan.CellIndex{Column: 2, Row: 6}))
	assert.Len(t, g.OccupiedCells(), 9)
}

func TestMarkObstaclesClipsToGridBounds(t *testing.T) {
	g, err := gridplan.NewOccupancyGrid(gridplan.Point{}, 10, 10, 1, []gridplan.Obstacle{
		rect(-5, -5, 20, 2.5),
	})
	require.NoError(t, err)

	// Rows 0..2 fully occupied, nothing above.
	assert.Len(t, g.OccupiedCells(), 30)
	assert.True(t, g.Occupied(gridplan.CellIndex{Column: 0, Row: 0}))
	assert.True(t, g.Occupied(gridplan.CellIndex{Column: 9, Row: 2}))
	assert.False(t, g.Occupied(gridplan.CellIndex{Column: 0, Row: 3}))
}

func TestCellAt(t *testing.T) {
	g := emptyGrid(t, 10, 10, 1)

	cell, err := g.CellAt(gridplan.CellIndex{Column: 3, Row: 4})
	require.NoError(t, err)
	assert.Equal(t, gridplan.CellIndex{Column: 3, Row: 4}, cell.Index)
	assert.False(t, cell.Occupied)

	var oob *gridplan.OutOfBoundsError
	_, err = g.CellAt(gridplan.CellIndex{Column: 10, Row: 0})
	require.ErrorAs(t, err, &oob)
	_, err = g.CellAt(gridplan.CellIndex{Column: 0, Row: -1})
	require.ErrorAs(t, err, &oob)
}

func TestNeighborsOrderAndFiltering(t *testing.T) {
	g, err := gridplan.NewOccupancyGrid(gridplan.Point{}, 10, 10, 1, []gridplan.Obstacle{
		rect(5.1, 6.1, 5.9, 6.9), // occupies cell (5,6), above the probe
	})
	require.NoError(t, err)

	// Interior cell: fixed order up, down, left, right.
	assert.Equal(t, []gridplan.CellIndex{
		{Column: 4, Row: 5}, {Column: 4, Row: 3}, {Column: 3, Row: 4}, {Column: 5, Row: 4},
	}, g.Neighbors(gridplan.CellIndex{Column: 4, Row: 4}))

	// Corner cell: out-of-bounds candidates dropped.
	assert.Equal(t, []gridplan.CellIndex{
		{Column: 0, Row: 1}, {Column: 1, Row: 0},
	}, g.Neighbors(gridplan.CellIndex{Column: 0, Row: 0}))

	// Occupied neighbor dropped.
	assert.Equal(t, []gridplan.CellIndex{
		{Column: 5, Row: 4}, {Column: 4, Row: 5}, {Column: 6, Row: 5},
	}, g.Neighbors(gridplan.CellIndex{Column: 5, Row: 5}))
}

func TestWorldToCellAndBack(t *testing.T) {
	g, err := gridplan.NewOccupancyGrid(gridplan.Point{X: 1.5, Y: 0.5}, 4, 3, 0.25, nil)
	require.NoError(t, err)

	// Round-trip: every cell center maps back to the same cell.
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height(); row++ {
			index := gridplan.CellIndex{Column: col, Row: row}
			center, err := g.CellCenter(index)
			require.NoError(t, err)
			back, err := g.WorldToCell(center)
			require.NoError(t, err)
			assert.Equal(t, index, back)
		}
	}
}

func TestWorldToCellErrorsInsteadOfClamping(t *testing.T) {
	g := emptyGrid(t, 10, 10, 1)

	var oob *gridplan.OutOfBoundsError
	_, err := g.WorldToCell(gridplan.Point{X: -0.5, Y: 5})
	require.ErrorAs(t, err, &oob)
	_, err = g.WorldToCell(gridplan.Point{X: 5, Y: 10.5})
	require.ErrorAs(t, err, &oob)

	_, err = g.CellCenter(gridplan.CellIndex{Column: -1, Row: 0})
	require.ErrorAs(t, err, &oob)
}

func TestWaypointsAreCellCenters(t *testing.T) {
	g := emptyGrid(t, 10, 10, 1)

	waypoints := g.Waypoints([]gridplan.CellIndex{
		{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 1, Row: 1},
	})
	assert.Equal(t, []gridplan.Point{
		{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5},
	}, waypoints)

	assert.Nil(t, g.Waypoints(nil))
}

package gridplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridplan"
)

func rect(left, bottom, right, top float64) gridplan.Obstacle {
	o, err := gridplan.NewObstacle([4]gridplan.Point{
		{X: left, Y: bottom},
		{X: right, Y: bottom},
		{X: right, Y: top},
		{X: left, Y: top},
	})
	if err != nil {
		panic(err)
	}
	return o
}

func TestNewObstacleDerivesBounds(t *testing.T) {
	// Vertex order must not matter.
	o, err := gridplan.NewObstacle([4]gridplan.Point{
		{X: 3, Y: 7},
		{X: 1, Y: 2},
		{X: 3, Y: 2},
		{X: 1, Y: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, o.Left)
	assert.Equal(t, 3.0, o.Right)
	assert.Equal(t, 2.0, o.Bottom)
	assert.Equal(t, 7.0, o.Top)
}

func TestNewObstacleRejectsMalformedGeometry(t *testing.T) {
	cases := map[string][4]gridplan.Point{
		"degenerate line": {
			{X: 1, Y: 1}, {X: 1, Y: 5}, {X: 1, Y: 1}, {X: 1, Y: 5},
		},
		"single point": {
			{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2},
		},
		"diamond": {
			{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1},
		},
		"repeated corner": {
			{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	for name, vertices := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gridplan.NewObstacle(vertices)
			var configErr *gridplan.ConfigurationError
			require.ErrorAs(t, err, &configErr)
		})
	}
}

// Package scenario loads planning scenarios from YAML files: the workspace
// extent, the obstacle set and the start/target endpoints a driver program
// feeds to the planner.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridplan"
)

// Point is a continuous workspace coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Workspace describes the planning area and the vehicle footprint used as
// the grid cell size.
type Workspace struct {
	Origin    Point   `yaml:"origin"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Footprint float64 `yaml:"footprint"`
}

// Rectangle is one obstacle, given by its four corner vertices.
type Rectangle struct {
	Vertices []Point `yaml:"vertices"`
}

// Scenario is a complete planning request.
type Scenario struct {
	Name      string      `yaml:"name"`
	Workspace Workspace   `yaml:"workspace"`
	Obstacles []Rectangle `yaml:"obstacles"`
	Start     Point       `yaml:"start"`
	Target    Point       `yaml:"target"`

	// WaypointNames optionally labels waypoints of interest for display,
	// e.g. takeoff, hover and drop locations.
	WaypointNames []string `yaml:"waypoint_names,omitempty"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	for i, r := range s.Obstacles {
		if len(r.Vertices) != 4 {
			return nil, fmt.Errorf("obstacle %d: want 4 vertices, got %d", i, len(r.Vertices))
		}
	}
	return &s, nil
}

// Grid builds the occupancy grid described by the scenario, validating the
// obstacle geometry along the way.
func (s *Scenario) Grid() (*gridplan.OccupancyGrid, error) {
	obstacles := make([]gridplan.Obstacle, 0, len(s.Obstacles))
	for i, r := range s.Obstacles {
		var corners [4]gridplan.Point
		for j, v := range r.Vertices {
			corners[j] = gridplan.Point{X: v.X, Y: v.Y}
		}
		o, err := gridplan.NewObstacle(corners)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		obstacles = append(obstacles, o)
	}
	return gridplan.NewOccupancyGrid(
		gridplan.Point{X: s.Workspace.Origin.X, Y: s.Workspace.Origin.Y},
		s.Workspace.Width, s.Workspace.Height, s.Workspace.Footprint,
		obstacles,
	)
}

// StartPoint returns the start position in planner coordinates.
func (s *Scenario) StartPoint() gridplan.Point {
	return gridplan.Point{X: s.Start.X, Y: s.Start.Y}
}

// TargetPoint returns the target position in planner coordinates.
func (s *Scenario) TargetPoint() gridplan.Point {
	return gridplan.Point{X: s.Target.X, Y: s.Target.Y}
}

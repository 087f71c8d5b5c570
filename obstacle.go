package gridplan

// Point is a continuous position in workspace coordinates.
type Point struct {
	X, Y float64
}

// Obstacle is an axis-aligned rectangle given by its four corner vertices.
// It is immutable once constructed and consumed only during grid building.
type Obstacle struct {
	Vertices [4]Point

	// Derived bounds in continuous coordinates.
	Top, Bottom, Left, Right float64
}

// NewObstacle validates the vertex set and derives the rectangle bounds.
// Vertex order does not matter. Vertex sets that do not describe an
// axis-aligned, non-degenerate rectangle fail with ConfigurationError.
func NewObstacle(vertices [4]Point) (Obstacle, error) {
	o := Obstacle{
		Vertices: vertices,
		Top:      vertices[0].Y,
		Bottom:   vertices[0].Y,
		Left:     vertices[0].X,
		Right:    vertices[0].X,
	}
	for _, v := range vertices[1:] {
		o.Top = max(o.Top, v.Y)
		o.Bottom = min(o.Bottom, v.Y)
		o.Left = min(o.Left, v.X)
		o.Right = max(o.Right, v.X)
	}

	if o.Left == o.Right || o.Bottom == o.Top {
		return Obstacle{}, &ConfigurationError{Reason: "degenerate obstacle rectangle"}
	}

	// Every vertex must sit on a corner, and all four corners must be used
	// exactly once, otherwise the shape is not an axis-aligned rectangle.
	corners := map[Point]int{}
	for _, v := range vertices {
		if (v.X != o.Left && v.X != o.Right) || (v.Y != o.Bottom && v.Y != o.Top) {
			return Obstacle{}, &ConfigurationError{Reason: "obstacle vertices are not axis-aligned rectangle corners"}
		}
		corners[v]++
	}
	if len(corners) != 4 {
		return Obstacle{}, &ConfigurationError{Reason: "obstacle vertices repeat a rectangle corner"}
	}

	return o, nil
}

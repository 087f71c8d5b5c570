package gridplan

import "fmt"

// ConfigurationError reports invalid grid parameters or malformed obstacle
// geometry. The caller must fix the input before retrying.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "gridplan: invalid configuration: " + e.Reason
}

// OutOfBoundsError reports a coordinate or cell index outside the grid's
// valid range. It is surfaced to the caller and never retried internally.
type OutOfBoundsError struct {
	Index         CellIndex
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("gridplan: cell (%d,%d) outside grid bounds %dx%d",
		e.Index.Column, e.Index.Row, e.Width, e.Height)
}

// InvalidEndpointError reports a start or target position that resolves to
// an occupied cell. It is returned before any search work begins.
type InvalidEndpointError struct {
	Endpoint string // "start" or "target"
	Position Point
	Index    CellIndex
}

func (e *InvalidEndpointError) Error() string {
	return fmt.Sprintf("gridplan: %s position (%g,%g) maps to occupied cell (%d,%d)",
		e.Endpoint, e.Position.X, e.Position.Y, e.Index.Column, e.Index.Row)
}

// Package gridplan plans collision-free routes for a point-sized vehicle
// across a 2-D workspace with axis-aligned rectangular obstacles.
//
// It exposes three main entry points:
//
//   - NewOccupancyGrid: rasterize continuous obstacles into a cell grid.
//   - FindPath: run the A* search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or
//     debugging tools.
//
// The grid stores static occupancy only; every search keeps its own cost and
// predecessor bookkeeping, so a single grid can serve concurrent route
// queries.
package gridplan

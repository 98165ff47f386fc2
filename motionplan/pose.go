package motionplan

import "fmt"

// Pose is a robot state on the grid: a cell plus a heading. Pose is comparable and is used
// directly as a map key by motionplan/gridplanning's pairwise cost/path memoization tables.
type Pose struct {
	X, Y    int
	Heading Heading
}

// String implements fmt.Stringer.
func (p Pose) String() string {
	return fmt.Sprintf("(%d,%d,%s)", p.X, p.Y, p.Heading)
}

// CellState is a Pose optionally tagged with the ID of the obstacle photographed upon arrival.
// A Screenshot of 0 with Tagged false means the cell is a plain waypoint on the way to a
// snapshot, not a snapshot pose itself.
type CellState struct {
	Pose
	Screenshot int
	Tagged     bool
}

// Untagged wraps a bare Pose as a CellState with no snapshot tag.
func Untagged(p Pose) CellState {
	return CellState{Pose: p}
}

// Tag wraps a Pose as a CellState tagged with the given obstacle/screenshot ID.
func Tag(p Pose, screenshotID int) CellState {
	return CellState{Pose: p, Screenshot: screenshotID, Tagged: true}
}

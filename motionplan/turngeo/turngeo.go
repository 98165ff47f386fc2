// Package turngeo classifies 90-degree turns into quadrants and validates the quarter-circle
// footprint they sweep, including the green-area exemption. It sits alongside the motionplan
// package the way the teacher's motionplan/tpspace sits alongside its motionplan root package:
// a self-contained geometry layer consulted by the motion expander (motionplan/gridplanning)
// before it will emit a turn transition.
package turngeo

import "github.com/malcolmfong01/SC2079-Algo/motionplan"

// Quadrant numbers a 90-degree turn by its (from, to) heading pair, per the table in the turn
// geometry design: 1 = down-right, 2 = down-left, 3 = up-left, 4 = up-right. Quadrant returns 0
// for any pair that is not a valid 90-degree turn (same heading, or 180 degrees apart).
func Quadrant(from, to motionplan.Heading) int {
	switch {
	case (from == motionplan.North && to == motionplan.East) || (from == motionplan.West && to == motionplan.South):
		return 1
	case (from == motionplan.North && to == motionplan.West) || (from == motionplan.East && to == motionplan.South):
		return 2
	case (from == motionplan.South && to == motionplan.West) || (from == motionplan.East && to == motionplan.North):
		return 3
	case (from == motionplan.South && to == motionplan.East) || (from == motionplan.West && to == motionplan.North):
		return 4
	default:
		return 0
	}
}

// turnSign gives the (signX, signY) multiplier on the turn radius for each (from, to) pair that
// Quadrant recognizes, reproducing the source system's per-quadrant, per-heading landing-cell
// table.
var turnSign = map[[2]motionplan.Heading][2]int{
	{motionplan.North, motionplan.East}: {1, 1},
	{motionplan.West, motionplan.South}: {-1, -1},
	{motionplan.North, motionplan.West}: {-1, 1},
	{motionplan.East, motionplan.South}: {1, -1},
	{motionplan.South, motionplan.West}: {-1, -1},
	{motionplan.East, motionplan.North}: {1, 1},
	{motionplan.South, motionplan.East}: {1, -1},
	{motionplan.West, motionplan.North}: {-1, 1},
}

// Landing computes the cell a quarter-circle turn of radius r lands on, starting at (x, y) with
// heading `from` and ending with heading `to`. The second return value is false if (from, to) is
// not a valid 90-degree turn.
func Landing(x, y, r int, from, to motionplan.Heading) (lx, ly int, ok bool) {
	sign, found := turnSign[[2]motionplan.Heading{from, to}]
	if !found {
		return 0, 0, false
	}
	return x + sign[0]*r, y + sign[1]*r, true
}

// Footprint is the axis-aligned rectangle (inclusive bounds) swept by a turn from (x, y) to
// (lx, ly), padded by one cell on every side.
type Footprint struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether (x, y) lies within the footprint.
func (f Footprint) Contains(x, y int) bool {
	return x >= f.MinX && x <= f.MaxX && y >= f.MinY && y <= f.MaxY
}

// ComputeFootprint builds the footprint rectangle for a turn between (x, y) and its landing cell
// (lx, ly).
func ComputeFootprint(x, y, lx, ly int) Footprint {
	return Footprint{
		MinX: min(x, lx) - 1,
		MinY: min(y, ly) - 1,
		MaxX: max(x, lx) + 1,
		MaxY: max(y, ly) + 1,
	}
}

// greenAnchor returns the quadrant-specific corner of the footprint that anchors the 3x3
// green-area exemption, per the turn geometry design's anchor table.
func greenAnchor(quadrant, x, y, lx, ly int) (gx, gy int, ok bool) {
	switch quadrant {
	case 1:
		return max(x, lx), min(y, ly), true
	case 2:
		return min(x, lx), min(y, ly), true
	case 3:
		return min(x, lx), max(y, ly), true
	case 4:
		return max(x, lx), max(y, ly), true
	default:
		return 0, 0, false
	}
}

// InGreenArea reports whether (px, py) falls within the 3x3 green-area exemption for a turn of
// radius r between (x, y) and (lx, ly) in the given quadrant. The exemption only exists when
// r >= 4; for smaller radii this always returns false, per the turn geometry design.
func InGreenArea(quadrant, r, x, y, lx, ly, px, py int) bool {
	if r < 4 {
		return false
	}
	gx, gy, ok := greenAnchor(quadrant, x, y, lx, ly)
	if !ok {
		return false
	}
	return px >= gx-1 && px <= gx+1 && py >= gy-1 && py <= gy+1
}

// Valid reports whether a turn of radius r from pose (x, y, from) to heading `to` is
// geometrically valid against the given arena: the landing cell must be reachable, and every
// obstacle inside the turn's footprint must fall within the green-area exemption.
func Valid(arena *motionplan.Arena, r, x, y int, from, to motionplan.Heading) bool {
	lx, ly, ok := Landing(x, y, r, from, to)
	if !ok {
		return false
	}
	if !arena.Reachable(lx, ly, true) {
		return false
	}
	quadrant := Quadrant(from, to)
	footprint := ComputeFootprint(x, y, lx, ly)
	for _, ob := range arena.Obstacles {
		if !footprint.Contains(ob.X, ob.Y) {
			continue
		}
		if !InGreenArea(quadrant, r, x, y, lx, ly, ob.X, ob.Y) {
			return false
		}
	}
	return true
}

// LandingCell is a small helper exposing the landing cell computed by Valid's internals, used by
// the motion expander to locate and check the landing cell before it asks Valid about the turn.
func LandingCell(x, y, r int, from, to motionplan.Heading) (lx, ly int, ok bool) {
	return Landing(x, y, r, from, to)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

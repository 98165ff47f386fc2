package gridplanning

import (
	"github.com/malcolmfong01/SC2079-Algo/motionplan"
	"github.com/malcolmfong01/SC2079-Algo/motionplan/turngeo"
)

// TurnPenalty is the fixed additive cost of any turn transition, so the A* oracle prefers
// straight motion whenever it is equivalent in distance.
const TurnPenalty = 10.0

// TurnFactor scales rotational distance within the edge weight formula, rot_cost * TurnFactor.
const TurnFactor = 2.0

// transition is one outgoing edge from a state, as yielded by neighbors.
type transition struct {
	to   motionplan.Pose
	cost float64
}

// safeCost adds a small positive constant when (x, y) is close to, but not touching, an
// obstacle's forbidden proximity: Chebyshev offsets of (1,2), (2,1), or (2,2) from any obstacle
// cell. It is a soft preference for extra clearance, not a hard constraint.
func safeCost(arena *motionplan.Arena, x, y int) float64 {
	for _, ob := range arena.Obstacles {
		dx := x - ob.X
		if dx < 0 {
			dx = -dx
		}
		dy := y - ob.Y
		if dy < 0 {
			dy = -dy
		}
		switch {
		case dx == 1 && dy == 2, dx == 2 && dy == 1, dx == 2 && dy == 2:
			return SafeCostValue
		}
	}
	return 0
}

// neighbors yields every legal transition out of state (x, y, h): the two straight moves along
// heading h (forward and backward), and every valid quarter-circle turn.
func neighbors(arena *motionplan.Arena, turnRadius int, x, y int, h motionplan.Heading) []transition {
	var out []transition

	dx, dy := h.Unit()
	if fx, fy := x+dx, y+dy; arena.Reachable(fx, fy, false) {
		out = append(out, transition{motionplan.Pose{X: fx, Y: fy, Heading: h}, 1 + safeCost(arena, fx, fy)})
	}
	if bx, by := x-dx, y-dy; arena.Reachable(bx, by, false) {
		out = append(out, transition{motionplan.Pose{X: bx, Y: by, Heading: h}, 1 + safeCost(arena, bx, by)})
	}

	for _, to := range motionplan.Headings() {
		if turngeo.Quadrant(h, to) == 0 {
			continue
		}
		lx, ly, ok := turngeo.LandingCell(x, y, turnRadius, h, to)
		if !ok || !arena.Reachable(lx, ly, true) {
			continue
		}
		if !turngeo.Valid(arena, turnRadius, x, y, h, to) {
			continue
		}
		cost := float64(motionplan.RotationCost(h, to))*TurnFactor + 1 + safeCost(arena, lx, ly) + TurnPenalty
		out = append(out, transition{motionplan.Pose{X: lx, Y: ly, Heading: to}, cost})
	}
	return out
}

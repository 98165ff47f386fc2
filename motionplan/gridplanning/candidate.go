package gridplanning

import "github.com/malcolmfong01/SC2079-Algo/motionplan"

// Candidate is a snapshot pose in front of an obstacle's picture face, carrying the penalty the
// order optimizer adds to any tour that chooses it.
type Candidate struct {
	Pose       motionplan.Pose
	Penalty    float64
	ObstacleID int
}

// offset describes one candidate slot relative to an obstacle face: `distance` cells along the
// face direction, `lateral` cells along the perpendicular axis.
type offset struct {
	distance, lateral int
}

// baseOffsets is always admitted: the primary candidate (distance 1, on-axis) plus the secondary
// schedule from the candidate generation design (distance 2 on-axis, and the two lateral
// offsets at distance 1 and 2).
var baseOffsets = []offset{
	{1, 0},
	{2, 0},
	{1, 1}, {1, -1},
	{2, 1}, {2, -1},
}

// relaxedOffsets is additionally admitted during retry planning, trading pose quality (higher
// penalty) for a better chance some candidate is reachable.
var relaxedOffsets = []offset{
	{3, 0},
	{1, 2}, {1, -2},
	{2, 2}, {2, -2},
	{3, 1}, {3, -1},
	{3, 2}, {3, -2},
}

// penalty is proportional to (distance - 1) plus the magnitude of the lateral offset, per the
// candidate generation design: the primary candidate (distance 1, lateral 0) scores 0.
func (o offset) penalty() float64 {
	lateral := o.lateral
	if lateral < 0 {
		lateral = -lateral
	}
	return float64(o.distance-1) + float64(lateral)
}

// Generate produces, for every obstacle in arena, an ordered list of snapshot candidates. The
// outer slice preserves obstacle order; an obstacle with no in-bounds, unobstructed candidate
// yields an empty inner slice (the caller treats this as the "infeasible obstacle" case and
// continues planning around it). When retrying is true, the relaxed offset schedule is admitted
// in addition to the base schedule, increasing the chance some candidate survives at the cost of
// higher average penalty.
func Generate(arena *motionplan.Arena, retrying bool) [][]Candidate {
	groups := make([][]Candidate, 0, len(arena.Obstacles))
	offsets := baseOffsets
	if retrying {
		offsets = append(append([]offset{}, baseOffsets...), relaxedOffsets...)
	}
	for _, ob := range arena.Obstacles {
		groups = append(groups, generateForObstacle(arena, ob, offsets))
	}
	return groups
}

func generateForObstacle(arena *motionplan.Arena, ob motionplan.Obstacle, offsets []offset) []Candidate {
	dx, dy := ob.Face.Unit()
	pdx, pdy := ob.Face.Perpendicular().Unit()
	heading := ob.Face.Opposite()

	out := make([]Candidate, 0, len(offsets))
	for _, o := range offsets {
		x := ob.X + dx*o.distance + pdx*o.lateral
		y := ob.Y + dy*o.distance + pdy*o.lateral
		if !arena.InBounds(x, y) {
			continue
		}
		if arena.OccupiedBy(x, y) {
			continue
		}
		out = append(out, Candidate{
			Pose:       motionplan.Pose{X: x, Y: y, Heading: heading},
			Penalty:    o.penalty(),
			ObstacleID: ob.ID,
		})
	}
	return out
}

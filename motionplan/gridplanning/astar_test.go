package gridplanning

import (
	"testing"

	"go.viam.com/test"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

func newTestPlanner(arena *motionplan.Arena) *Planner {
	return NewPlanner(arena, Options{})
}

func TestPathCostSamePoseIsZero(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	p := newTestPlanner(arena)
	start := motionplan.Pose{X: 5, Y: 5, Heading: motionplan.North}
	cost, path, ok := p.PathCost(start, start)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cost, test.ShouldEqual, 0)
	test.That(t, len(path), test.ShouldEqual, 1)
}

func TestPathCostSymmetric(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	p := newTestPlanner(arena)
	start := motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}
	goal := motionplan.Pose{X: 5, Y: 5, Heading: motionplan.East}

	costFwd, pathFwd, ok := p.PathCost(start, goal)
	test.That(t, ok, test.ShouldBeTrue)

	costBack, pathBack, ok := p.PathCost(goal, start)
	test.That(t, ok, test.ShouldBeTrue)

	test.That(t, costFwd, test.ShouldEqual, costBack)
	test.That(t, len(pathFwd), test.ShouldEqual, len(pathBack))
	test.That(t, pathFwd[0], test.ShouldEqual, pathBack[len(pathBack)-1])
	test.That(t, pathFwd[len(pathFwd)-1], test.ShouldEqual, pathBack[0])
}

func TestPathCostStraightLine(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	p := newTestPlanner(arena)
	start := motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}
	goal := motionplan.Pose{X: 1, Y: 5, Heading: motionplan.North}

	cost, path, ok := p.PathCost(start, goal)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, path[0], test.ShouldEqual, start)
	test.That(t, path[len(path)-1], test.ShouldEqual, goal)
	test.That(t, cost, test.ShouldEqual, 4) // four unit steps, no turns, no safe-cost proximity
}

func TestPathCostEveryStepIsLegal(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.North})
	p := newTestPlanner(arena)
	start := motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}
	goal := motionplan.Pose{X: 10, Y: 11, Heading: motionplan.South}

	_, path, ok := p.PathCost(start, goal)
	test.That(t, ok, test.ShouldBeTrue)
	for _, pose := range path {
		test.That(t, arena.InBounds(pose.X, pose.Y), test.ShouldBeTrue)
	}
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		// Either a unit straight step (on the same heading axis) or a turn landing displaced by
		// the turn radius along both axes.
		test.That(t, dx <= DefaultTurnRadius && dy <= DefaultTurnRadius, test.ShouldBeTrue)
	}
}

func TestNoPathWhenGoalUnreachable(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	p := newTestPlanner(arena)
	start := motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}
	goal := motionplan.Pose{X: 100, Y: 100, Heading: motionplan.North} // out of bounds, unreachable
	_, _, ok := p.PathCost(start, goal)
	test.That(t, ok, test.ShouldBeFalse)
}

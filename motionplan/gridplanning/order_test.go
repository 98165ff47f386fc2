package gridplanning

import (
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

func TestOptimizeSingleObstacleClearField(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.North})

	p := NewPlanner(arena, Options{})
	groups := Generate(arena, false)
	tour, err := p.Optimize(motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}, groups)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(tour.Path) > 0, test.ShouldBeTrue)
	test.That(t, tour.Distance > 0, test.ShouldBeTrue)
	test.That(t, tour.VisitedIDs, test.ShouldResemble, []int{1})

	final := tour.Path[len(tour.Path)-1]
	test.That(t, final.Pose, test.ShouldEqual, motionplan.Pose{X: 10, Y: 11, Heading: motionplan.South})

	commands := Compile(tour.Path)
	snapCount := 0
	for _, cmd := range commands {
		if cmd == "SNAP1" {
			snapCount++
		}
	}
	test.That(t, snapCount, test.ShouldEqual, 1)
	test.That(t, commands[len(commands)-1], test.ShouldEqual, "FIN")
}

func TestOptimizeTwoObstaclesVisitsBoth(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 5, Y: 10, Face: motionplan.North})
	arena.AddObstacle(motionplan.Obstacle{ID: 2, X: 15, Y: 10, Face: motionplan.North})

	p := NewPlanner(arena, Options{})
	groups := Generate(arena, false)
	tour, err := p.Optimize(motionplan.Pose{X: 1, Y: 10, Heading: motionplan.East}, groups)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(tour.VisitedIDs), test.ShouldEqual, 2)

	commands := Compile(tour.Path)
	var snap1Idx, snap2Idx int
	for i, cmd := range commands {
		if cmd == "SNAP1" {
			snap1Idx = i
		}
		if cmd == "SNAP2" {
			snap2Idx = i
		}
	}
	test.That(t, snap1Idx < snap2Idx, test.ShouldBeTrue)
	test.That(t, strings.HasPrefix(commands[len(commands)-1], "FIN"), test.ShouldBeTrue)
}

func TestOptimizeHiddenFaceExpandsToFourGroups(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.North})
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.East})
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.South})
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.West})
	test.That(t, len(arena.Obstacles), test.ShouldEqual, 4)

	groups := Generate(arena, false)
	test.That(t, len(groups), test.ShouldEqual, 4)
	for _, g := range groups {
		test.That(t, len(g) > 0, test.ShouldBeTrue)
	}
}

func TestOptimizeNoObstaclesReturnsEmptyTour(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	p := NewPlanner(arena, Options{})
	tour, err := p.Optimize(motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(tour.Path), test.ShouldEqual, 0)
	test.That(t, tour.Warnings, test.ShouldBeNil)
}

func TestOptimizeDropsInfeasibleObstacleAndContinues(t *testing.T) {
	arena := motionplan.NewArena(20, 20)
	arena.AddObstacle(motionplan.Obstacle{ID: 1, X: 10, Y: 10, Face: motionplan.North})
	groups := Generate(arena, false)
	groups = append(groups, nil) // an obstacle group with no surviving candidates

	p := NewPlanner(arena, Options{})
	tour, err := p.Optimize(motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}, groups)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tour.Warnings, test.ShouldNotBeNil)
	test.That(t, tour.VisitedIDs, test.ShouldResemble, []int{1})
}

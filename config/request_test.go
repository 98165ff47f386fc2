package config

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestValidateRejectsBadRobotDir(t *testing.T) {
	req := &Request{RobotDir: 1}
	err := req.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	var verr *ValidationError
	test.That(t, errors.As(err, &verr), test.ShouldBeTrue)
	test.That(t, verr.Field, test.ShouldEqual, "robot_dir")
}

func TestValidateRejectsDuplicateObstacleID(t *testing.T) {
	req := &Request{
		Obstacles: []ObstacleRequest{
			{ID: 1, X: 2, Y: 2, D: 0},
			{ID: 1, X: 3, Y: 3, D: 2},
		},
	}
	err := req.Validate()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestValidateRejectsOverlappingObstacles(t *testing.T) {
	req := &Request{
		Obstacles: []ObstacleRequest{
			{ID: 1, X: 2, Y: 2, D: 0},
			{ID: 2, X: 2, Y: 2, D: 2},
		},
	}
	err := req.Validate()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestValidateAcceptsHiddenFace(t *testing.T) {
	req := &Request{
		Obstacles: []ObstacleRequest{{ID: 1, X: 2, Y: 2, D: -1}},
	}
	test.That(t, req.Validate(), test.ShouldBeNil)
}

func TestToArenaExpandsHidden(t *testing.T) {
	req := &Request{
		RobotX: 1, RobotY: 1, RobotDir: 0,
		Obstacles: []ObstacleRequest{{ID: 1, X: 10, Y: 10, D: -1}},
	}
	arena := req.ToArena(20, 20)
	test.That(t, len(arena.Obstacles), test.ShouldEqual, 4)
}

func TestFromTourCopiesDistanceWithEmptyPath(t *testing.T) {
	resp := FromTour([]string{"FIN"}, 12.5, nil)
	test.That(t, resp.Distance, test.ShouldEqual, 12.5)
	test.That(t, len(resp.Path), test.ShouldEqual, 0)
}

func TestFromTourNormalizesNilCommandsToEmptyList(t *testing.T) {
	resp := FromTour(nil, 0, nil)
	test.That(t, resp.Commands, test.ShouldNotBeNil)
	test.That(t, len(resp.Commands), test.ShouldEqual, 0)
}

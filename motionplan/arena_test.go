package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestArenaInBounds(t *testing.T) {
	a := NewArena(20, 20)
	test.That(t, a.InBounds(1, 1), test.ShouldBeTrue)
	test.That(t, a.InBounds(18, 18), test.ShouldBeTrue)
	test.That(t, a.InBounds(0, 5), test.ShouldBeFalse)
	test.That(t, a.InBounds(19, 5), test.ShouldBeFalse)
}

func TestArenaReachableClearance(t *testing.T) {
	a := NewArena(20, 20)
	a.AddObstacle(Obstacle{ID: 1, X: 10, Y: 10, Face: North})

	test.That(t, a.Reachable(10, 10, false), test.ShouldBeFalse) // the obstacle's own cell
	test.That(t, a.Reachable(10, 11, false), test.ShouldBeTrue)  // adjacent: a snapshot candidate stands here
	test.That(t, a.Reachable(12, 12, false), test.ShouldBeTrue)
}

func TestExpandHiddenFaceDropsOffArenaFaces(t *testing.T) {
	// A cell on the west edge: at (0, 5), West points off the raw grid and must be dropped, while
	// North, East, and South each still have a cell in front of them.
	faces := ExpandHiddenFace(20, 20, 1, 0, 5, HiddenFace)
	for _, ob := range faces {
		test.That(t, ob.Face, test.ShouldNotEqual, West)
	}
}

func TestExpandHiddenFaceConcrete(t *testing.T) {
	faces := ExpandHiddenFace(20, 20, 1, 10, 10, North)
	test.That(t, len(faces), test.ShouldEqual, 1)
	test.That(t, faces[0].Face, test.ShouldEqual, North)
}

func TestExpandHiddenFaceInterior(t *testing.T) {
	faces := ExpandHiddenFace(20, 20, 1, 10, 10, HiddenFace)
	test.That(t, len(faces), test.ShouldEqual, 4)
}

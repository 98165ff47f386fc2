package gridplanning

import (
	"testing"

	"go.viam.com/test"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

func TestCompileStraightLineThenSnap(t *testing.T) {
	path := []motionplan.CellState{
		motionplan.Untagged(motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}),
		motionplan.Untagged(motionplan.Pose{X: 1, Y: 2, Heading: motionplan.North}),
		motionplan.Untagged(motionplan.Pose{X: 1, Y: 3, Heading: motionplan.North}),
		motionplan.Tag(motionplan.Pose{X: 1, Y: 4, Heading: motionplan.North}, 7),
	}
	commands := Compile(path)
	test.That(t, commands[0], test.ShouldEqual, "SF030")
	test.That(t, commands[1], test.ShouldEqual, "SNAP7")
	test.That(t, commands[len(commands)-1], test.ShouldEqual, "FIN")
}

func TestCompileEmptyPathYieldsNoCommands(t *testing.T) {
	commands := Compile(nil)
	test.That(t, len(commands), test.ShouldEqual, 0)
}

func TestCompileClockwiseForwardTurn(t *testing.T) {
	// N -> E landing at (4,4) from (1,1): dx > 0 while heading was North => clockwise + forward => RF090.
	path := []motionplan.CellState{
		motionplan.Untagged(motionplan.Pose{X: 1, Y: 1, Heading: motionplan.North}),
		motionplan.Untagged(motionplan.Pose{X: 4, Y: 4, Heading: motionplan.East}),
	}
	commands := Compile(path)
	test.That(t, commands[0], test.ShouldEqual, "RF090")
}

func TestRunLengthMergeSumsAdjacentSamePrefix(t *testing.T) {
	merged := runLengthMerge([]string{"SF010", "SF020", "SNAP1", "FIN"})
	test.That(t, merged[0], test.ShouldEqual, "SF030")
	test.That(t, merged[1], test.ShouldEqual, "SNAP1")
	test.That(t, merged[2], test.ShouldEqual, "FIN")
}

func TestFilterStatesCollapsesStraightRuns(t *testing.T) {
	path := []record{
		{x: 1, y: 1, d: motionplan.North, screenshot: -1},
		{x: 1, y: 2, d: motionplan.North, screenshot: -1},
		{x: 1, y: 3, d: motionplan.North, screenshot: -1},
	}
	filtered := filterStates(path)
	test.That(t, len(filtered), test.ShouldEqual, 2)
	test.That(t, filtered[1], test.ShouldEqual, path[2])
}

func TestFilterStatesAlwaysKeepsSnapshots(t *testing.T) {
	path := []record{
		{x: 1, y: 1, d: motionplan.North, screenshot: -1},
		{x: 1, y: 2, d: motionplan.North, screenshot: 9},
		{x: 1, y: 3, d: motionplan.North, screenshot: -1},
	}
	filtered := filterStates(path)
	test.That(t, len(filtered), test.ShouldEqual, 3)
	test.That(t, filtered[1].screenshot, test.ShouldEqual, 9)
}

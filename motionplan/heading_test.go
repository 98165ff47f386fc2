package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestRotationCost(t *testing.T) {
	test.That(t, RotationCost(North, North), test.ShouldEqual, 0)
	test.That(t, RotationCost(North, South), test.ShouldEqual, 4)
	test.That(t, RotationCost(North, East), test.ShouldEqual, 2)
	test.That(t, RotationCost(North, West), test.ShouldEqual, 2)
	test.That(t, RotationCost(East, West), test.ShouldEqual, 4)
	test.That(t, RotationCost(South, East), test.ShouldEqual, RotationCost(East, South))
}

func TestHeadingOpposite(t *testing.T) {
	test.That(t, North.Opposite(), test.ShouldEqual, South)
	test.That(t, East.Opposite(), test.ShouldEqual, West)
	test.That(t, South.Opposite(), test.ShouldEqual, North)
	test.That(t, West.Opposite(), test.ShouldEqual, East)
}

func TestHeadingIndex(t *testing.T) {
	test.That(t, North.Index(), test.ShouldEqual, 0)
	test.That(t, East.Index(), test.ShouldEqual, 1)
	test.That(t, South.Index(), test.ShouldEqual, 2)
	test.That(t, West.Index(), test.ShouldEqual, 3)
}

func TestHeadingValid(t *testing.T) {
	test.That(t, North.Valid(), test.ShouldBeTrue)
	test.That(t, HiddenFace.Valid(), test.ShouldBeFalse)
	test.That(t, Heading(3).Valid(), test.ShouldBeFalse)
}

func TestHeadingUnit(t *testing.T) {
	dx, dy := North.Unit()
	test.That(t, dx, test.ShouldEqual, 0)
	test.That(t, dy, test.ShouldEqual, 1)

	dx, dy = East.Unit()
	test.That(t, dx, test.ShouldEqual, 1)
	test.That(t, dy, test.ShouldEqual, 0)
}

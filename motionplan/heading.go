// Package motionplan holds the core value types shared by the grid snapshot-tour planner:
// headings, poses, obstacles, and the arena they live on. Planning algorithms themselves
// (candidate generation, A*, order optimization, command compilation) live in the sibling
// motionplan/gridplanning package; turn geometry lives in motionplan/turngeo. The split mirrors
// how the teacher repo keeps shared frame/pose types in its own `motionplan` root package while
// putting algorithm-specific code in subpackages like `motionplan/armplanning`.
package motionplan

import "fmt"

// Heading is a compass direction encoded as an even integer in {0, 2, 4, 6} so that the minimum
// wrapped difference between two headings gives their rotational distance. Diagonal headings do
// not exist; do not construct a Heading from an arbitrary int outside this set.
type Heading int

// The four cardinal headings, plus HiddenFace, a sentinel used only on an Obstacle whose picture
// side has not yet been determined. HiddenFace is never a valid heading for a Pose.
const (
	North      Heading = 0
	East       Heading = 2
	South      Heading = 4
	West       Heading = 6
	HiddenFace Heading = -1
)

// compass lists the four concrete headings in a fixed, reused order.
var compass = [4]Heading{North, East, South, West}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	switch h {
	case North, East, South, West:
		return true
	default:
		return false
	}
}

// Index returns h's position in {North, East, South, West}, for use as a dense array index.
// Panics if h is not a valid heading; callers must check Valid first.
func (h Heading) Index() int {
	if !h.Valid() {
		panic(fmt.Sprintf("motionplan: %d is not a valid heading", int(h)))
	}
	return int(h) / 2
}

// Opposite returns the heading 180 degrees from h.
func (h Heading) Opposite() Heading {
	return Heading((int(h) + 4) % 8)
}

// Unit returns the (dx, dy) unit vector of a one-cell step in direction h. North is +y, East is
// +x, matching the grid convention the spec and its Python original both use.
func (h Heading) Unit() (int, int) {
	switch h {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		panic(fmt.Sprintf("motionplan: %d is not a valid heading", int(h)))
	}
}

// Perpendicular returns the heading obtained by rotating h 90 degrees clockwise; its unit vector
// is the "lateral" axis used by the candidate generator to offset snapshot poses sideways.
func (h Heading) Perpendicular() Heading {
	return Heading((int(h) + 2) % 8)
}

// RotationCost returns the wrapped difference between the encodings of a and b,
// min(|a-b|, 8-|a-b|), which is twice the number of quarter turns between them.
// RotationCost(N, N) == 0; RotationCost(N, S) == 4 (8/2, its maximum);
// RotationCost(N, E) == RotationCost(N, W) == 2.
func RotationCost(a, b Heading) int {
	diff := int(a) - int(b)
	if diff < 0 {
		diff = -diff
	}
	if alt := 8 - diff; alt < diff {
		return alt
	}
	return diff
}

// String implements fmt.Stringer for logging.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case HiddenFace:
		return "HIDDEN"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// Headings returns the four cardinal headings in a fixed order, for callers that need to
// enumerate them (e.g. expanding a HiddenFace obstacle into its geometrically valid faces).
func Headings() [4]Heading {
	return compass
}

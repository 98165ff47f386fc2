package gridplanning

import (
	"fmt"
	"strconv"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

// record is a flattened (x, y, heading, screenshot) cell, the compiler's working representation
// of a motionplan.CellState. screenshot is -1 when the cell carries no snapshot tag.
type record struct {
	x, y       int
	d          motionplan.Heading
	screenshot int
}

func toRecords(path []motionplan.CellState) []record {
	out := make([]record, len(path))
	for i, cs := range path {
		s := -1
		if cs.Tagged {
			s = cs.Screenshot
		}
		out[i] = record{x: cs.X, y: cs.Y, d: cs.Heading, screenshot: s}
	}
	return out
}

// Compile turns a realized tour path into the compressed command stream: it filters the path down
// to key poses, classifies each remaining segment into a straight or turn token (with snapshot
// markers interleaved), and run-length merges adjacent same-kind tokens. The path passed in is
// the full cell-by-cell tour, not yet filtered. An empty path (no feasible tour was found) yields
// an empty command list, not a bare FIN: there is nothing for the robot to do.
func Compile(path []motionplan.CellState) []string {
	if len(path) == 0 {
		return nil
	}
	filtered := filterStates(toRecords(path))
	return runLengthMerge(generateCommands(filtered))
}

// filterStates reduces a full cell-by-cell path down to the poses that matter for command
// generation: the start, every snapshot pose, and the last pose before / first pose after each
// heading change. Straight runs of identical heading collapse to their endpoint.
func filterStates(path []record) []record {
	if len(path) == 0 {
		return nil
	}
	filtered := []record{path[0]}

	i := 1
	for i < len(path) {
		current := path[i]
		prev := filtered[len(filtered)-1]

		if current.screenshot != -1 {
			filtered = append(filtered, current)
			i++
			continue
		}

		if current.d == prev.d {
			straightEnd := i
			for straightEnd < len(path)-1 {
				next := path[straightEnd+1]
				if next.d != current.d || next.screenshot != -1 {
					break
				}
				straightEnd++
			}
			end := path[straightEnd]
			if end.x != prev.x || end.y != prev.y {
				filtered = append(filtered, end)
			}
			i = straightEnd + 1
			continue
		}

		// current.d != prev.d: a heading change. Only keep it if it actually leads somewhere —
		// i.e. some later state moves off this cell, snapshots here, or turns again.
		nextIdx := i + 1
		for nextIdx < len(path) {
			next := path[nextIdx]
			if next.x != current.x || next.y != current.y || next.screenshot != -1 {
				filtered = append(filtered, current)
				break
			}
			if next.d != current.d {
				break
			}
			nextIdx++
		}
		i++
	}

	// The final pose is always a key pose, even in the edge case where it is itself a heading
	// change with nothing after it to trigger the lookahead above.
	last := path[len(path)-1]
	if tail := filtered[len(filtered)-1]; tail.x != last.x || tail.y != last.y || tail.d != last.d {
		filtered = append(filtered, last)
	}

	return filtered
}

// clockwise reports whether from->to is a clockwise 90-degree step in the N(0)->E(2)->S(4)->
// W(6)->N cycle.
func clockwise(from, to motionplan.Heading) bool {
	switch {
	case from == motionplan.North && to == motionplan.East:
		return true
	case from == motionplan.East && to == motionplan.South:
		return true
	case from == motionplan.South && to == motionplan.West:
		return true
	case from == motionplan.West && to == motionplan.North:
		return true
	default:
		return false
	}
}

// counterclockwise reports whether from->to is a counterclockwise 90-degree step.
func counterclockwise(from, to motionplan.Heading) bool {
	switch {
	case from == motionplan.North && to == motionplan.West:
		return true
	case from == motionplan.West && to == motionplan.South:
		return true
	case from == motionplan.South && to == motionplan.East:
		return true
	case from == motionplan.East && to == motionplan.North:
		return true
	default:
		return false
	}
}

// turnToken classifies a heading change into one of the four turn tokens, using the sign of the
// landing cell's displacement (dx, dy) from the turn's start across the current heading's axis:
// dx for a North or South start, dy for an East or West start.
func turnToken(from, to motionplan.Heading, dx, dy int) string {
	if clockwise(from, to) {
		forward := (from == motionplan.North && dx > 0) ||
			(from == motionplan.East && dy < 0) ||
			(from == motionplan.South && dx < 0) ||
			(from == motionplan.West && dy > 0)
		if forward {
			return "RF090"
		}
		return "LB090"
	}
	// counterclockwise(from, to) is the only remaining case once Compile's caller has already
	// established current.d != prev.d; filterStates never emits a 180-degree jump as a kept pose
	// pair because the motion expander never produces one (see turngeo.Quadrant).
	forward := (from == motionplan.North && dx < 0) ||
		(from == motionplan.East && dy > 0) ||
		(from == motionplan.South && dx > 0) ||
		(from == motionplan.West && dy < 0)
	if forward {
		return "LF090"
	}
	return "RB090"
}

// generateCommands converts a filtered pose sequence into the raw command stream: one token per
// segment (straight or turn), with a SNAP<id> interleaved after any pose carrying a snapshot tag,
// terminated by FIN. It does not merge adjacent same-kind tokens; runLengthMerge does that. Compile
// never calls this with an empty path; filterStates always keeps at least the tour's first pose.
func generateCommands(path []record) []string {
	var commands []string

	currentDirection := path[0].d
	startX, startY := path[0].x, path[0].y

	for _, state := range path[1:] {
		dx := state.x - startX
		dy := state.y - startY

		if state.d != currentDirection {
			commands = append(commands, turnToken(currentDirection, state.d, dx, dy))
			if state.screenshot != -1 {
				commands = append(commands, fmt.Sprintf("SNAP%d", state.screenshot))
			}
			startX, startY = state.x, state.y
			currentDirection = state.d
			continue
		}

		distance := abs(dx)
		if dx == 0 {
			distance = abs(dy)
		}
		distance *= 10

		forward := (currentDirection == motionplan.North && dy > 0) ||
			(currentDirection == motionplan.East && dx > 0) ||
			(currentDirection == motionplan.South && dy < 0) ||
			(currentDirection == motionplan.West && dx < 0)
		if forward {
			commands = append(commands, fmt.Sprintf("SF%03d", distance))
		} else {
			commands = append(commands, fmt.Sprintf("SB%03d", distance))
		}

		if state.screenshot != -1 {
			commands = append(commands, fmt.Sprintf("SNAP%d", state.screenshot))
		}
		startX, startY = state.x, state.y
	}

	commands = append(commands, "FIN")
	return commands
}

// runLengthMerge sums the numeric payload of adjacent commands sharing the same two-letter
// prefix, e.g. two consecutive SF tokens become one SF token carrying their combined distance.
// SNAP and FIN tokens are never merged and break any run.
func runLengthMerge(commands []string) []string {
	var out []string
	for _, cmd := range commands {
		if len(out) == 0 {
			out = append(out, cmd)
			continue
		}
		prefix, value, ok := splitToken(cmd)
		lastPrefix, lastValue, lastOK := splitToken(out[len(out)-1])
		if ok && lastOK && prefix == lastPrefix {
			out[len(out)-1] = fmt.Sprintf("%s%03d", prefix, lastValue+value)
			continue
		}
		out = append(out, cmd)
	}
	return out
}

// splitToken splits a mergeable command (SF/SB/RF/RB/LF/LB followed by a 3-digit payload) into
// its prefix and numeric value. SNAP and FIN tokens are not mergeable and return ok=false.
func splitToken(cmd string) (prefix string, value int, ok bool) {
	if len(cmd) != 5 {
		return "", 0, false
	}
	switch cmd[:2] {
	case "SF", "SB", "RF", "RB", "LF", "LB":
	default:
		return "", 0, false
	}
	n, err := strconv.Atoi(cmd[2:])
	if err != nil {
		return "", 0, false
	}
	return cmd[:2], n, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

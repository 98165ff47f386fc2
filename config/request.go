// Package config defines the planner's external request/response records and the (de)serialize
// and validate operations around them. It is the boundary the out-of-scope HTTP front door and
// CLI both sit behind: neither ever constructs a motionplan.Arena directly, only a Request.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

// ObstacleRequest is the wire representation of one obstacle: `D` is the picture-face heading,
// or -1 for HIDDEN.
type ObstacleRequest struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
	D  int `json:"d"`
}

// Request is the planner's input record, per the external interface design: a robot start pose
// and a set of oriented obstacles.
type Request struct {
	RobotX    int               `json:"robot_x"`
	RobotY    int               `json:"robot_y"`
	RobotDir  int               `json:"robot_dir"`
	Obstacles []ObstacleRequest `json:"obstacles"`
	Retrying  bool              `json:"retrying,omitempty"`
}

// PathRecord is one cell of the response's cell-by-cell path: `S` is -1 when the cell carries no
// snapshot.
type PathRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
	D int `json:"d"`
	S int `json:"s"`
}

// Response is the planner's output record.
type Response struct {
	Commands []string     `json:"commands"`
	Distance float64      `json:"distance"`
	Path     []PathRecord `json:"path"`
}

// ValidationError names the first malformed field encountered, so a caller can report precisely
// what was wrong with a request rather than a generic parse failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: field %q: %s", e.Field, e.Reason)
}

// validHeading reports whether d is a concrete heading (0, 2, 4, or 6) or the HIDDEN sentinel
// (-1).
func validHeading(d int) bool {
	switch d {
	case 0, 2, 4, 6, -1:
		return true
	default:
		return false
	}
}

// Validate checks a Request for malformed input before it is handed to the planner: out-of-range
// headings, duplicate obstacle IDs, and obstacles stacked on the same cell. It does not check
// arena bounds against a particular Width/Height — ToArena's caller is responsible for that via
// the resulting Arena's own InBounds.
func (r *Request) Validate() error {
	if !motionplan.Heading(r.RobotDir).Valid() {
		return &ValidationError{Field: "robot_dir", Reason: fmt.Sprintf("must be 0, 2, 4, or 6, got %d", r.RobotDir)}
	}
	seen := make(map[int]bool, len(r.Obstacles))
	seenCells := make(map[[2]int]bool, len(r.Obstacles))
	for i, ob := range r.Obstacles {
		if !validHeading(ob.D) {
			return &ValidationError{
				Field:  fmt.Sprintf("obstacles[%d].d", i),
				Reason: fmt.Sprintf("must be 0, 2, 4, 6, or -1, got %d", ob.D),
			}
		}
		if seen[ob.ID] {
			return &ValidationError{Field: fmt.Sprintf("obstacles[%d].id", i), Reason: fmt.Sprintf("duplicate obstacle id %d", ob.ID)}
		}
		seen[ob.ID] = true
		cell := [2]int{ob.X, ob.Y}
		if seenCells[cell] {
			return &ValidationError{
				Field:  fmt.Sprintf("obstacles[%d]", i),
				Reason: fmt.Sprintf("cell (%d,%d) already occupied by another obstacle", ob.X, ob.Y),
			}
		}
		seenCells[cell] = true
	}
	return nil
}

// ToArena builds a motionplan.Arena of the given size from a validated Request, expanding any
// HIDDEN obstacle faces. Call Validate first; ToArena does not repeat those checks.
func (r *Request) ToArena(width, height int) *motionplan.Arena {
	arena := motionplan.NewArena(width, height)
	for _, ob := range r.Obstacles {
		face := motionplan.Heading(ob.D)
		if ob.D == -1 {
			face = motionplan.HiddenFace
		}
		for _, expanded := range motionplan.ExpandHiddenFace(width, height, ob.ID, ob.X, ob.Y, face) {
			arena.AddObstacle(expanded)
		}
	}
	return arena
}

// StartPose returns the robot's requested start pose.
func (r *Request) StartPose() motionplan.Pose {
	return motionplan.Pose{X: r.RobotX, Y: r.RobotY, Heading: motionplan.Heading(r.RobotDir)}
}

// Load reads and validates a Request from a JSON file.
func Load(path string) (*Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: opening request file")
	}
	defer f.Close() //nolint:errcheck

	return decode(f)
}

func decode(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "config: decoding request JSON")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// Save writes a Response as indented JSON to a file.
func Save(path string, resp *Response) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "config: creating response file")
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return errors.Wrap(err, "config: encoding response JSON")
	}
	return nil
}

// FromTour builds a Response from a completed gridplanning.Tour-shaped result. Taking the three
// fields directly (rather than importing motionplan/gridplanning, which already imports
// motionplan) keeps config free of a dependency on the planning package. An infeasible plan passes
// a nil commands slice; it is normalized here to an empty (not null) JSON array, per the external
// interface's "infeasibility returns an empty commands list" contract.
func FromTour(commands []string, distance float64, path []motionplan.CellState) *Response {
	if commands == nil {
		commands = []string{}
	}
	records := make([]PathRecord, len(path))
	for i, cs := range path {
		s := -1
		if cs.Tagged {
			s = cs.Screenshot
		}
		records[i] = PathRecord{X: cs.X, Y: cs.Y, D: int(cs.Heading), S: s}
	}
	return &Response{Commands: commands, Distance: distance, Path: records}
}

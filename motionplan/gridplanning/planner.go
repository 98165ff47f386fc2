// Package gridplanning implements the planning pipeline: snapshot candidate generation, the A*
// pairwise path oracle, asymmetric-TSP order optimization, and command-stream compilation. It is
// grounded on the teacher's motionplan/armplanning package (planner struct shape, options struct,
// CDebugf-style logging) generalized from arm-motion RRT planning to grid snapshot-tour planning.
package gridplanning

import (
	"errors"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/malcolmfong01/SC2079-Algo/logging"
	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

// SafeCostValue is the soft clearance-preference cost added by safeCost. The source constants
// default this to zero; SAFE_COST is documented there as tunable, and a small positive value is
// recommended so A* actually prefers the extra clearance when it is free to take.
const SafeCostValue = 2.0

// DefaultTurnRadius is the quarter-circle turn radius used when Options.TurnRadius is zero.
const DefaultTurnRadius = 3

// DefaultIterations bounds the total number of candidate combinations the order optimizer
// evaluates, summed over every mask it tries, preventing combinatorial blow-up when several
// obstacles each have several candidates.
const DefaultIterations = 5000

// ErrNoObstacles reports that an arena has no obstacles to visit. Optimize does not return it:
// given no candidate groups, it returns an empty Tour and a nil error.
var ErrNoObstacles = errors.New("gridplanning: arena has no obstacles")

// ErrInvalidStart is returned when the robot's start pose is not itself reachable.
var ErrInvalidStart = errors.New("gridplanning: start pose is not reachable")

// Options configures a Planner. The zero value is usable: TurnRadius and Iterations fall back to
// their defaults, and a no-op logger and real clock are used.
type Options struct {
	// TurnRadius is the quarter-circle turn radius R (must be >= 2). Zero means DefaultTurnRadius.
	TurnRadius int
	// Iterations bounds the order optimizer's combination budget, shared across all masks. Zero
	// means DefaultIterations.
	Iterations int
	// Retrying marks a retry planning call. NewPlanner does not read it; the relaxed candidate
	// schedule is selected by the retrying argument of Generate.
	Retrying bool
	// Logger receives structured progress logs for one planning call. Nil means a no-op logger.
	Logger logging.Logger
	// Clock is used to time the order optimizer's search; a fake clock can be supplied here.
	Clock clock.Clock
}

func (o Options) turnRadius() int {
	if o.TurnRadius <= 0 {
		return DefaultTurnRadius
	}
	return o.TurnRadius
}

func (o Options) iterations() int {
	if o.Iterations <= 0 {
		return DefaultIterations
	}
	return o.Iterations
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger()
	}
	return o.Logger
}

func (o Options) clock() clock.Clock {
	if o.Clock == nil {
		return clock.New()
	}
	return o.Clock
}

// Planner holds the per-request cost_table/path_table memoization state for one planning call.
// A Planner is not safe for concurrent use and must not be reused across requests: create a new
// one per call via NewPlanner.
type Planner struct {
	arena      *motionplan.Arena
	turnRadius int
	iterations int
	logger     logging.Logger
	clock      clock.Clock
	requestID  string

	costTable map[edgeKey]float64
	pathTable map[edgeKey][]motionplan.Pose
}

// edgeKey identifies an ordered (u, v) pair in the cost/path tables.
type edgeKey struct {
	u, v motionplan.Pose
}

// NewPlanner creates a Planner bound to arena, valid for exactly one planning call. Its logger is
// annotated with a fresh request ID so every log line emitted during this call can be correlated
// across the candidate, A*, and order-optimizer stages.
func NewPlanner(arena *motionplan.Arena, opts Options) *Planner {
	requestID := uuid.NewString()
	return &Planner{
		arena:      arena,
		turnRadius: opts.turnRadius(),
		iterations: opts.iterations(),
		logger:     opts.logger().With("request_id", requestID),
		clock:      opts.clock(),
		requestID:  requestID,
		costTable:  make(map[edgeKey]float64),
		pathTable:  make(map[edgeKey][]motionplan.Pose),
	}
}

// RequestID identifies this planning call in logs.
func (p *Planner) RequestID() string { return p.requestID }

package motionplan

// Arena is the bounded 2D grid the robot and its obstacles live on, plus the margin that keeps
// the robot's footprint off the outer ring of cells.
type Arena struct {
	Width, Height int
	Margin        int
	Obstacles     []Obstacle
}

// NewArena builds an Arena of the given size with the standard one-cell margin.
func NewArena(width, height int) *Arena {
	return &Arena{Width: width, Height: height, Margin: 1}
}

// AddObstacle appends o to the arena's obstacle list.
func (a *Arena) AddObstacle(o Obstacle) {
	a.Obstacles = append(a.Obstacles, o)
}

// InBounds reports whether (x, y) lies within the margin-adjusted arena interior: for the
// standard 20x20 arena with Margin 1, that is 1 <= x,y <= 18.
func (a *Arena) InBounds(x, y int) bool {
	return x >= a.Margin && x <= a.Width-1-a.Margin &&
		y >= a.Margin && y <= a.Height-1-a.Margin
}

// Reachable reports whether (x, y) is in bounds and does not coincide with any obstacle cell. A
// cell immediately adjacent to an obstacle (Chebyshev distance 1) is reachable: that is exactly
// where a snapshot candidate stands to face the obstacle's picture side. safeCost, not Reachable,
// supplies the softer preference for extra clearance at Chebyshev distance 2. The turn flag
// documents, rather than changes, the caller's intent: for a straight move it is asking about the
// next cell on the line; for a turn it is asking about the turn's landing cell only — cells swept
// by the arc itself are validated separately by motionplan/turngeo, which applies the green-area
// exemption.
func (a *Arena) Reachable(x, y int, turn bool) bool {
	if !a.InBounds(x, y) {
		return false
	}
	return !a.OccupiedBy(x, y)
}

// OccupiedBy reports whether (x, y) coincides exactly with an obstacle's cell.
func (a *Arena) OccupiedBy(x, y int) bool {
	for _, ob := range a.Obstacles {
		if ob.X == x && ob.Y == y {
			return true
		}
	}
	return false
}

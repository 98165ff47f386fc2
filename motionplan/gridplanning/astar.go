package gridplanning

import (
	"container/heap"
	"math"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

// astarNode is one entry in the A* open set's priority queue. It implements heap.Interface via
// nodeHeap below, the same container/heap idiom used by the pack's reference A* planner.
type astarNode struct {
	pose  motionplan.Pose
	g     float64
	f     float64
	index int // maintained by nodeHeap, required by heap.Fix
}

// nodeHeap is a min-heap of *astarNode ordered by f-score, implementing heap.Interface.
type nodeHeap []*astarNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x interface{}) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// stateIndex maps a dense (x, y, heading) state to a flat array index, per the state-space
// compactness design: (y*width + x)*4 + heading index.
func stateIndex(width, x, y int, h motionplan.Heading) int {
	return (y*width+x)*4 + h.Index()
}

// heuristic is the Manhattan distance between two cells; it ignores heading, which keeps it
// admissible since rotation never has negative cost and every edge weighs at least 1.
func heuristic(x1, y1, x2, y2 int) float64 {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// search runs a weighted A* from start to goal over the (x, y, heading) state space. It returns
// the total cost and the ordered sequence of poses from start to goal (inclusive), or ok=false if
// the open set is exhausted before the goal is reached.
func (p *Planner) search(start, goal motionplan.Pose) (cost float64, path []motionplan.Pose, ok bool) {
	n := p.arena.Width * p.arena.Height * 4
	gScore := make([]float64, n)
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		parent[i] = -1
	}

	startIdx := stateIndex(p.arena.Width, start.X, start.Y, start.Heading)
	gScore[startIdx] = 0

	open := &nodeHeap{{pose: start, g: 0, f: heuristic(start.X, start.Y, goal.X, goal.Y)}}
	heap.Init(open)

	// poseOf recovers the Pose a flat index corresponds to, for parent-pointer reconstruction.
	poseOf := make(map[int]motionplan.Pose, n/4)
	poseOf[startIdx] = start

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)
		curIdx := stateIndex(p.arena.Width, current.pose.X, current.pose.Y, current.pose.Heading)
		if visited[curIdx] {
			continue
		}
		visited[curIdx] = true

		if current.pose == goal {
			return current.g, reconstruct(parent, poseOf, curIdx, start), true
		}

		for _, t := range neighbors(p.arena, p.turnRadius, current.pose.X, current.pose.Y, current.pose.Heading) {
			nIdx := stateIndex(p.arena.Width, t.to.X, t.to.Y, t.to.Heading)
			if visited[nIdx] {
				continue
			}
			tentativeG := current.g + t.cost
			if tentativeG < gScore[nIdx] {
				gScore[nIdx] = tentativeG
				parent[nIdx] = curIdx
				poseOf[nIdx] = t.to
				heap.Push(open, &astarNode{
					pose: t.to,
					g:    tentativeG,
					f:    tentativeG + heuristic(t.to.X, t.to.Y, goal.X, goal.Y),
				})
			}
		}
	}
	return 0, nil, false
}

func reconstruct(parent []int, poseOf map[int]motionplan.Pose, goalIdx int, start motionplan.Pose) []motionplan.Pose {
	var rev []motionplan.Pose
	idx := goalIdx
	for idx != -1 {
		rev = append(rev, poseOf[idx])
		if poseOf[idx] == start {
			break
		}
		idx = parent[idx]
	}
	path := make([]motionplan.Pose, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// PathCost returns the cost and full pose path between u and v, consulting and then populating
// the memoized cost_table/path_table. Because motion is symmetric, a lookup (or computation) of
// (u, v) also fills in (v, u) by reversing the path, satisfying the planner's symmetry invariant
// without a second search.
func (p *Planner) PathCost(u, v motionplan.Pose) (cost float64, path []motionplan.Pose, ok bool) {
	if u == v {
		return 0, []motionplan.Pose{u}, true
	}
	key := edgeKey{u, v}
	if c, found := p.costTable[key]; found {
		return c, p.pathTable[key], true
	}

	cost, path, ok = p.search(u, v)
	if !ok {
		p.logger.Debugf("no path found from %s to %s", u, v)
		return 0, nil, false
	}

	p.costTable[key] = cost
	p.pathTable[key] = path

	reverseKey := edgeKey{v, u}
	reversed := make([]motionplan.Pose, len(path))
	for i, pose := range path {
		reversed[len(path)-1-i] = pose
	}
	p.costTable[reverseKey] = cost
	p.pathTable[reverseKey] = reversed

	return cost, path, true
}

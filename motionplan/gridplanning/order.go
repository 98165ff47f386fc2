package gridplanning

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"github.com/malcolmfong01/SC2079-Algo/motionplan"
)

// Tour is the result of order optimization: the realized path, its total travel distance, the
// obstacle IDs actually visited (in visit order), and any non-fatal advisories accumulated along
// the way (e.g. an obstacle dropped for lacking any in-bounds candidate).
type Tour struct {
	Path       []motionplan.CellState
	Distance   float64
	VisitedIDs []int
	Warnings   error
}

// Optimize picks one candidate per obstacle and a visit order starting at start that minimizes
// total travel distance plus per-candidate penalties, per the order optimization design: subset
// masks are tried largest-first, each mask's candidate choices are enumerated up to the
// Planner's iteration budget, and the first mask to yield a feasible tour wins.
func (p *Planner) Optimize(start motionplan.Pose, groups [][]Candidate) (*Tour, error) {
	started := p.clock.Now()

	var warnings error
	var nonEmpty []int
	for i, g := range groups {
		if len(g) == 0 {
			warnings = multierr.Append(warnings, fmt.Errorf("obstacle group %d: no in-bounds candidate, dropping", i))
			continue
		}
		nonEmpty = append(nonEmpty, i)
	}
	if len(nonEmpty) == 0 {
		return &Tour{Warnings: warnings}, nil
	}

	budget := p.iterations
	var best *tourCandidate

	for _, mask := range masksByPopcountDesc(len(nonEmpty)) {
		selected := make([]int, 0, len(nonEmpty))
		for bit, groupIdx := range nonEmpty {
			if mask&(1<<bit) != 0 {
				selected = append(selected, groupIdx)
			}
		}

		poses := []motionplan.Pose{start}
		owner := []int{-1} // owner[i] = obstacle ID for poses[i], or -1 for the start pose
		candOf := [][]Candidate{}
		for _, groupIdx := range selected {
			candOf = append(candOf, groups[groupIdx])
			for _, c := range groups[groupIdx] {
				poses = append(poses, c.Pose)
				owner = append(owner, c.ObstacleID)
			}
		}
		p.populatePairwise(poses)

		// groupRanges[g] lists the flattened pose-list indices belonging to selected group g.
		groupRanges := make([][]int, len(selected))
		cursor := 1
		for g, cands := range candOf {
			for range cands {
				groupRanges[g] = append(groupRanges[g], cursor)
				cursor++
			}
		}

		found := p.searchMask(poses, owner, groupRanges, candOf, &budget, &best)
		if found {
			p.logger.Debugf("mask with %d obstacle(s) yielded a feasible tour", len(selected))
			break
		}
		if budget <= 0 {
			p.logger.Debugf("iteration budget exhausted before a feasible tour was found")
			break
		}
	}

	if best == nil {
		warnings = multierr.Append(warnings, fmt.Errorf("no feasible tour found for any obstacle subset"))
		return &Tour{Warnings: warnings}, nil
	}

	tour := p.unpackTour(best)
	tour.Warnings = warnings
	p.logDiagnostics(tour, p.clock.Since(started))
	return tour, nil
}

// tourCandidate is the best full plan found for one mask: a chosen candidate per selected group,
// its TSP visit order, and its total cost.
type tourCandidate struct {
	poses    []motionplan.Pose
	owner    []int
	order    []int
	tspCost  float64
	fixedSum float64
}

// searchMask enumerates candidate choices for the given mask (one pose per group, from
// groupRanges) up to the shared iteration budget, solving the open TSP for each and keeping the
// best in *best. It returns true once any feasible choice is found for this mask, signalling the
// caller to stop trying smaller masks.
func (p *Planner) searchMask(
	poses []motionplan.Pose,
	owner []int,
	groupRanges [][]int,
	candOf [][]Candidate,
	budget *int,
	best **tourCandidate,
) bool {
	found := false
	var rec func(g int, chosen []int, fixedSum float64)
	rec = func(g int, chosen []int, fixedSum float64) {
		if *budget <= 0 {
			return
		}
		if g == len(groupRanges) {
			*budget--
			visited := append([]int{0}, chosen...)
			matrix := p.buildMatrix(poses, visited)
			result := solveTSPExact(matrix)
			if !result.ok {
				return
			}
			total := result.cost + fixedSum
			if *best == nil || total < (*best).tspCost+(*best).fixedSum {
				vp := make([]motionplan.Pose, len(visited))
				vo := make([]int, len(visited))
				for i, idx := range visited {
					vp[i] = poses[idx]
					vo[i] = owner[idx]
				}
				*best = &tourCandidate{poses: vp, owner: vo, order: result.order, tspCost: result.cost, fixedSum: fixedSum}
			}
			found = true
			return
		}
		for i, idx := range groupRanges[g] {
			if *budget <= 0 {
				return
			}
			rec(g+1, append(chosen, idx), fixedSum+candOf[g][i].Penalty)
		}
	}
	rec(0, nil, 0)
	return found
}

// buildMatrix constructs the n x n distance matrix for the TSP solve over the poses at the given
// `visited` indices (visited[0] is always the start). Column 0 is forced to zero so the solved
// tour is open-ended: the robot never pays to return to the start. A missing cost_table entry
// (no path exists between those two poses) is recorded as infCost.
func (p *Planner) buildMatrix(poses []motionplan.Pose, visited []int) *mat.Dense {
	n := len(visited)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				m.Set(i, j, 0)
			case j == 0:
				m.Set(i, j, 0)
			default:
				if c, _, ok := p.PathCost(poses[visited[i]], poses[visited[j]]); ok {
					m.Set(i, j, c)
				} else {
					m.Set(i, j, infCost)
				}
			}
		}
	}
	return m
}

// populatePairwise computes and caches A* cost/path between every unordered pair in poses,
// mirroring the order optimization design's "populate cost_table for every pair via C5" step.
func (p *Planner) populatePairwise(poses []motionplan.Pose) {
	for i := 0; i < len(poses); i++ {
		for j := i + 1; j < len(poses); j++ {
			p.PathCost(poses[i], poses[j])
		}
	}
}

// unpackTour concatenates the cached path_table legs along best's solved visit order into a
// single realized tour, tagging the final cell of each leg with the obstacle ID photographed
// there.
func (p *Planner) unpackTour(best *tourCandidate) *Tour {
	var path []motionplan.CellState
	var visitedIDs []int
	var total float64

	for i := 0; i < len(best.order); i++ {
		idx := best.order[i]
		pose := best.poses[idx]
		if i == 0 {
			path = append(path, motionplan.Untagged(pose))
			continue
		}
		prevIdx := best.order[i-1]
		_, leg, ok := p.PathCost(best.poses[prevIdx], pose)
		if !ok || len(leg) == 0 {
			continue
		}
		for j, pose := range leg {
			if j == 0 {
				continue // already emitted as the previous leg's final cell
			}
			if j == len(leg)-1 {
				path = append(path, motionplan.Tag(pose, best.owner[idx]))
				visitedIDs = append(visitedIDs, best.owner[idx])
			} else {
				path = append(path, motionplan.Untagged(pose))
			}
		}
		cost, _, _ := p.PathCost(best.poses[prevIdx], pose)
		total += cost
	}

	return &Tour{Path: path, Distance: total, VisitedIDs: visitedIDs}
}

// masksByPopcountDesc returns every non-empty subset mask of an m-bit set, ordered largest subset
// first (ties broken by descending numeric value), per the order optimizer's "largest mask
// first" search order.
func masksByPopcountDesc(m int) []int {
	total := 1 << m
	masks := make([]int, 0, total-1)
	for mask := 1; mask < total; mask++ {
		masks = append(masks, mask)
	}
	sort.Slice(masks, func(i, j int) bool {
		pi, pj := popcount(masks[i]), popcount(masks[j])
		if pi != pj {
			return pi > pj
		}
		return masks[i] > masks[j]
	})
	return masks
}

func popcount(x int) int {
	count := 0
	for x != 0 {
		count += x & 1
		x >>= 1
	}
	return count
}

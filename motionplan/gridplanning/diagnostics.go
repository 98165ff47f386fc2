package gridplanning

import (
	"time"

	"github.com/montanaflynn/stats"
)

// logDiagnostics summarizes the winning tour's per-leg cost distribution and logs it alongside
// the wall-clock time the order optimizer spent searching. It is purely observational: nothing
// downstream depends on these numbers.
func (p *Planner) logDiagnostics(tour *Tour, elapsed time.Duration) {
	if len(tour.VisitedIDs) == 0 {
		p.logger.Infof("planning finished in %s: no obstacles visited", elapsed)
		return
	}

	legCosts := p.legCosts(tour)
	if len(legCosts) == 0 {
		p.logger.Infof("planning finished in %s: visited %d obstacle(s), distance %.1f",
			elapsed, len(tour.VisitedIDs), tour.Distance)
		return
	}

	mean, err := stats.Mean(legCosts)
	if err != nil {
		p.logger.Debugf("leg cost mean unavailable: %v", err)
		return
	}
	stdev, err := stats.StandardDeviation(legCosts)
	if err != nil {
		p.logger.Debugf("leg cost stdev unavailable: %v", err)
		return
	}
	p.logger.Infof(
		"planning finished in %s: visited %d obstacle(s), distance %.1f, mean leg cost %.2f (stdev %.2f)",
		elapsed, len(tour.VisitedIDs), tour.Distance, mean, stdev,
	)
}

// legCosts recovers the per-leg cost of each snapshot stop in the tour from the memoized
// cost_table, by re-deriving consecutive snapshot-pose pairs from the tagged path.
func (p *Planner) legCosts(tour *Tour) stats.Float64Data {
	var costs stats.Float64Data
	var last *int
	for i, cs := range tour.Path {
		if !cs.Tagged {
			continue
		}
		if last != nil {
			if c, _, ok := p.PathCost(tour.Path[*last].Pose, cs.Pose); ok {
				costs = append(costs, c)
			}
		}
		idx := i
		last = &idx
	}
	return costs
}

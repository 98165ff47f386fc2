package gridplanning

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// infCost marks an infeasible edge in a TSP distance matrix: large enough to never win over any
// real tour, but finite so matrix arithmetic never produces NaN.
const infCost = 1e12

// tspResult is the outcome of solving an open asymmetric TSP: the order nodes are visited in
// (as a permutation of 0..n-1, always starting with 0) and the total edge cost.
type tspResult struct {
	order []int
	cost  float64
	ok    bool
}

// solveTSPExact solves an open-ended asymmetric TSP over a small node set using the standard
// Held-Karp bitmask dynamic program: find the minimum-cost Hamiltonian path that starts at node
// 0 and visits every other node exactly once, with no cost charged to return to the start (column
// 0 of `cost` is expected to be all zero, per the order optimizer's matrix-construction step).
// Time and memory grow as 2^n; the order optimizer calls this with n equal to one more than the
// number of obstacle groups in the current mask, and places no upper bound on that number.
func solveTSPExact(cost *mat.Dense) tspResult {
	n, _ := cost.Dims()
	if n == 0 {
		return tspResult{ok: false}
	}
	if n == 1 {
		return tspResult{order: []int{0}, cost: 0, ok: true}
	}

	size := 1 << n
	dp := make([][]float64, size)
	parent := make([][]int, size)
	for mask := range dp {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	for mask := 1; mask < size; mask++ {
		if mask&1 == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 || math.IsInf(dp[mask][j], 1) {
				continue
			}
			for k := 0; k < n; k++ {
				if mask&(1<<k) != 0 {
					continue
				}
				edge := cost.At(j, k)
				if edge >= infCost {
					continue
				}
				nextMask := mask | (1 << k)
				candidate := dp[mask][j] + edge
				if candidate < dp[nextMask][k] {
					dp[nextMask][k] = candidate
					parent[nextMask][k] = j
				}
			}
		}
	}

	full := size - 1
	bestEnd := floats.MinIdx(dp[full])
	best := dp[full][bestEnd]
	if math.IsInf(best, 1) {
		return tspResult{ok: false}
	}

	order := make([]int, 0, n)
	mask, j := full, bestEnd
	for j != -1 {
		order = append(order, j)
		pj := parent[mask][j]
		mask &^= 1 << j
		j = pj
	}
	for i, k := 0, len(order)-1; i < k; i, k = i+1, k-1 {
		order[i], order[k] = order[k], order[i]
	}
	return tspResult{order: order, cost: best, ok: true}
}

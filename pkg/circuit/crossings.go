package circuit

import (
	"slices"
)

// Crosses reports whether two connections in the same gap cross: their
// endpoint deltas must have strictly opposite non-zero signs. Pairs sharing
// an endpoint (dx == 0 or dy == 0) never cross, even when visually
// coincident. The predicate is symmetric and representation-agnostic - it
// only compares relative order, so it applies to identity-keyed and
// position-keyed connections alike.
func Crosses(c1, c2 Connection) bool {
	dx := c1.A - c2.A
	dy := c1.B - c2.B
	return (dx > 0 && dy < 0) || (dy > 0 && dx < 0)
}

// CountCrossings returns the total number of crossed connection pairs across
// all gaps, examining every unordered pair within each gap. This O(m²) scan
// is the definitional form of the metric; [CrossingWorkspace.Count] computes
// the same total faster for repeated evaluation.
func CountCrossings(cons ConnectionSet) int {
	total := 0
	for _, gap := range cons {
		for i := 0; i < len(gap); i++ {
			for j := i + 1; j < len(gap); j++ {
				if Crosses(gap[i], gap[j]) {
					total++
				}
			}
		}
	}
	return total
}

// CrossingWorkspace provides reusable buffers for crossing counting to avoid
// repeated allocations across evaluations. Create with [NewCrossingWorkspace]
// and reuse across calls to Count. This matters when the evaluation harness
// scores thousands of sampled circuits per run.
//
// The workspace is not safe for concurrent use - each goroutine should have
// its own.
type CrossingWorkspace struct {
	ft    []int        // Fenwick tree for counting inversions
	edges []Connection // sort buffer
}

// NewCrossingWorkspace creates a workspace for counting crossings in
// O(m log m) per gap. Buffers grow on demand, so the zero-argument setup is
// always safe; pre-sizing merely avoids the first growth.
func NewCrossingWorkspace() *CrossingWorkspace {
	return &CrossingWorkspace{}
}

// Count returns the total crossing count for the connection set, equal to
// [CountCrossings] on the same input. Per gap it sorts connections by
// (A, B) and counts strict inversions on B with a Fenwick tree: among equal
// A values B is non-decreasing, and the tree query includes equal B values,
// so tied pairs are never counted - matching the [Crosses] predicate exactly.
func (ws *CrossingWorkspace) Count(cons ConnectionSet) int {
	total := 0
	for _, gap := range cons {
		total += ws.countGap(gap)
	}
	return total
}

func (ws *CrossingWorkspace) countGap(gap Gap) int {
	if len(gap) < 2 {
		return 0
	}

	edges := append(ws.edges[:0], gap...)
	ws.edges = edges
	slices.SortFunc(edges, func(a, b Connection) int {
		if a.A != b.A {
			return a.A - b.A
		}
		return a.B - b.B
	})

	width := 0
	for _, e := range edges {
		if e.B+1 > width {
			width = e.B + 1
		}
	}

	limit := width + 1
	if cap(ws.ft) < limit {
		ws.ft = make([]int, limit)
	}
	ft := ws.ft[:limit]
	for i := range ft {
		ft[i] = 0
	}

	crossings, seen := 0, 0
	for _, e := range edges {
		// Query: edges seen so far with B <= e.B.
		lessOrEqual := 0
		for q := e.B + 1; q > 0; q -= q & (-q) {
			lessOrEqual += ft[q]
		}
		// Crossings: edges seen so far with B strictly greater.
		crossings += seen - lessOrEqual

		seen++
		for idx := e.B + 1; idx < limit; idx += idx & (-idx) {
			ft[idx]++
		}
	}
	return crossings
}

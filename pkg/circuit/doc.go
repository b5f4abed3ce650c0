// Package circuit provides the core data model and algorithms for evaluating
// layer-ordering heuristics in layered circuit diagrams.
//
// # Overview
//
// A layered circuit is a sequence of layers, each holding a fixed number of
// gates. Gates in adjacent layers are joined by connections, and the goal of
// an arrangement heuristic is to order the gates within each layer so that
// connections drawn between adjacent layers cross as little as possible.
//
// Connections come in two interpretations sharing one representation:
//
//   - identity-keyed: endpoint numbers are stable gate identities, assigned
//     once when a layer is created
//   - position-keyed: endpoint numbers are left-to-right drawing positions,
//     assigned by an [Arrangement]
//
// [Generate] produces identity-keyed connectivity from a seed,
// [MapToPositions] converts it to position-keyed form under an Arrangement,
// and [CountCrossings] scores the result.
//
// # Basic Usage
//
//	cons, err := circuit.Generate([]int{5, 5, 5}, []int{10, 10}, 1)
//	if err != nil {
//	    return err
//	}
//	arr := circuit.IdentityArrangement([]int{5, 5, 5})
//	pos, err := circuit.MapToPositions(cons, arr)
//	if err != nil {
//	    return err
//	}
//	crossings := circuit.CountCrossings(pos)
//
// # Crossing Counting
//
// Two same-gap connections cross iff their endpoint deltas have strictly
// opposite non-zero signs; pairs sharing an endpoint position never count.
// [CountCrossings] implements this definition directly with an O(m²) pair
// scan. [CrossingWorkspace.Count] computes the same total in O(m log m) with
// a Fenwick tree and reusable buffers, which matters when the evaluation
// harness scores thousands of sampled circuits.
//
// # Concurrency
//
// All functions in this package are pure: they never mutate their inputs and
// hold no shared state. A [CrossingWorkspace] is the one exception - it reuses
// internal buffers and must not be shared across goroutines.
package circuit

package circuit

import (
	"github.com/matzehuels/crossbench/pkg/errors"
)

// MapToPositions converts an identity-keyed connection set into the
// equivalent position-keyed set under the given arrangement: each endpoint
// identity is replaced by its position in the corresponding layer's
// permutation. The output mirrors the input's gap order and within-gap order;
// only the endpoint values change. Inputs are never mutated.
//
// Returns ErrCodeMalformedArrangement if the arrangement doesn't cover one
// layer per gap boundary (len(arr) == len(cons)+1), if any permutation is not
// a total bijection over [0, size), or if a connection references an identity
// outside its layer's permutation.
func MapToPositions(cons ConnectionSet, arr Arrangement) (ConnectionSet, error) {
	if len(arr) != len(cons)+1 {
		return nil, errors.New(errors.ErrCodeMalformedArrangement,
			"%d gaps require %d layer permutations, got %d", len(cons), len(cons)+1, len(arr))
	}

	// Invert each permutation once; lookups during substitution are O(1).
	positions := make([][]int, len(arr))
	for i, perm := range arr {
		pos, err := positionIndex(i, perm)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}

	out := make(ConnectionSet, len(cons))
	for k, gap := range cons {
		upper, lower := positions[k], positions[k+1]
		mapped := make(Gap, len(gap))
		for i, con := range gap {
			if con.A < 0 || con.A >= len(upper) {
				return nil, errors.New(errors.ErrCodeMalformedArrangement,
					"gap %d: identity %d not present in layer %d's permutation", k, con.A, k)
			}
			if con.B < 0 || con.B >= len(lower) {
				return nil, errors.New(errors.ErrCodeMalformedArrangement,
					"gap %d: identity %d not present in layer %d's permutation", k, con.B, k+1)
			}
			mapped[i] = Connection{A: upper[con.A], B: lower[con.B]}
		}
		out[k] = mapped
	}
	return out, nil
}

package circuit

import (
	"slices"

	"github.com/matzehuels/crossbench/pkg/errors"
)

// Connection is an ordered pair of gate references across one adjacent-layer
// gap: A refers to a gate in layer k, B to a gate in layer k+1. Whether the
// numbers are gate identities or drawing positions depends on which
// ConnectionSet the connection belongs to.
type Connection struct {
	A int // gate in the upper layer of the gap
	B int // gate in the lower layer of the gap
}

// Gap holds the connections between one pair of adjacent layers, in draw order.
type Gap []Connection

// ConnectionSet holds one Gap per adjacent-layer pair; gap k connects layers
// k and k+1. A set over L layers has L-1 gaps.
type ConnectionSet []Gap

// Connections returns the total number of connections across all gaps.
func (cs ConnectionSet) Connections() int {
	n := 0
	for _, gap := range cs {
		n += len(gap)
	}
	return n
}

// Clone returns a deep copy of the connection set.
func (cs ConnectionSet) Clone() ConnectionSet {
	out := make(ConnectionSet, len(cs))
	for k, gap := range cs {
		out[k] = slices.Clone(gap)
	}
	return out
}

// Arrangement assigns drawing positions to gates: one permutation per layer,
// mapping position index to gate identity. A valid arrangement is a total
// bijection over [0, size) for each layer.
type Arrangement [][]int

// IdentityArrangement returns the arrangement where position equals identity
// in every layer: [0, 1, ..., size-1].
func IdentityArrangement(layerSizes []int) Arrangement {
	arr := make(Arrangement, len(layerSizes))
	for i, size := range layerSizes {
		perm := make([]int, size)
		for p := range perm {
			perm[p] = p
		}
		arr[i] = perm
	}
	return arr
}

// positionIndex inverts a single layer's permutation into an identity→position
// lookup. Returns ErrCodeMalformedArrangement if the permutation duplicates,
// omits, or includes an out-of-range identity for its layer.
func positionIndex(layer int, perm []int) ([]int, error) {
	pos := make([]int, len(perm))
	seen := make([]bool, len(perm))
	for p, id := range perm {
		if id < 0 || id >= len(perm) {
			return nil, errors.New(errors.ErrCodeMalformedArrangement,
				"layer %d: identity %d out of range [0, %d)", layer, id, len(perm))
		}
		if seen[id] {
			return nil, errors.New(errors.ErrCodeMalformedArrangement,
				"layer %d: duplicate identity %d", layer, id)
		}
		seen[id] = true
		pos[id] = p
	}
	return pos, nil
}

package circuit

import (
	"math/rand/v2"

	"github.com/matzehuels/crossbench/pkg/errors"
)

// Generate produces identity-keyed connectivity for a layered circuit.
// Gap k receives exactly gapCounts[k] distinct connections drawn uniformly
// without replacement from the cross product of identities in layers k and
// k+1, using a partial Fisher-Yates shuffle over the flattened pair space.
//
// Generation is deterministic: identical (layerSizes, gapCounts, seed) inputs
// always yield the identical connection set, including within-gap draw order.
// The random source is local to the call, so concurrent Generate calls never
// interfere.
//
// Returns ErrCodeInvalidConfiguration if fewer than two layers are given, the
// gap count sequence doesn't match the layer count, any layer is empty, any
// gap count is negative, or a gap requests more distinct pairs than exist.
// Validation happens eagerly, before any sampling.
func Generate(layerSizes, gapCounts []int, seed uint64) (ConnectionSet, error) {
	if err := ValidateConfig(layerSizes, gapCounts); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	cons := make(ConnectionSet, len(gapCounts))
	for k, count := range gapCounts {
		cons[k] = sampleGap(rng, layerSizes[k], layerSizes[k+1], count)
	}
	return cons, nil
}

// ValidateConfig checks layer/gap shape and per-gap feasibility without
// sampling anything. Generate calls it first; the evaluation harness also
// calls it up front so an impossible configuration fails before any trial runs.
func ValidateConfig(layerSizes, gapCounts []int) error {
	if len(layerSizes) < 2 {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"need at least 2 layers, got %d", len(layerSizes))
	}
	if len(gapCounts) != len(layerSizes)-1 {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"%d layers require %d gap counts, got %d", len(layerSizes), len(layerSizes)-1, len(gapCounts))
	}
	for i, size := range layerSizes {
		if size <= 0 {
			return errors.New(errors.ErrCodeInvalidConfiguration,
				"layer %d: size must be positive, got %d", i, size)
		}
	}
	for k, count := range gapCounts {
		if count < 0 {
			return errors.New(errors.ErrCodeInvalidConfiguration,
				"gap %d: connection count must be non-negative, got %d", k, count)
		}
		if limit := layerSizes[k] * layerSizes[k+1]; count > limit {
			return errors.New(errors.ErrCodeInvalidConfiguration,
				"gap %d: %d connections requested, only %d distinct pairs exist", k, count, limit)
		}
	}
	return nil
}

// sampleGap draws count distinct (upper, lower) pairs from the upper×lower
// cross product. Pair index n maps to (n/lower, n%lower); a partial
// Fisher-Yates over the index pool yields a uniform without-replacement
// sample in selection order.
func sampleGap(rng *rand.Rand, upper, lower, count int) Gap {
	pool := make([]int, upper*lower)
	for i := range pool {
		pool[i] = i
	}

	gap := make(Gap, count)
	for t := 0; t < count; t++ {
		swap := t + rng.IntN(len(pool)-t)
		pool[t], pool[swap] = pool[swap], pool[t]
		gap[t] = Connection{A: pool[t] / lower, B: pool[t] % lower}
	}
	return gap
}

package arrange_test

import (
	"fmt"
	"sort"

	"github.com/matzehuels/crossbench/pkg/circuit"
	"github.com/matzehuels/crossbench/pkg/circuit/arrange"
)

// barycenter is a sketch of a real ordering heuristic: each gate in a layer
// is sorted by the average identity of its neighbors in the layer above.
// It exists to show how a heuristic plugs into the registry; the shipped
// baseline remains arrange.Identity.
type barycenter struct{}

func (barycenter) Arrange(layerSizes []int, cons circuit.ConnectionSet) circuit.Arrangement {
	arr := circuit.IdentityArrangement(layerSizes)
	for k, gap := range cons {
		sums := make([]float64, layerSizes[k+1])
		counts := make([]float64, layerSizes[k+1])
		for _, con := range gap {
			sums[con.B] += float64(con.A)
			counts[con.B]++
		}
		perm := arr[k+1]
		sort.SliceStable(perm, func(i, j int) bool {
			bi, bj := float64(perm[i]), float64(perm[j])
			if counts[perm[i]] > 0 {
				bi = sums[perm[i]] / counts[perm[i]]
			}
			if counts[perm[j]] > 0 {
				bj = sums[perm[j]] / counts[perm[j]]
			}
			return bi < bj
		})
	}
	return arr
}

// ExampleRegister shows how a custom heuristic becomes selectable by name
// alongside the identity baseline.
func ExampleRegister() {
	arrange.Register("barycenter", barycenter{})

	a, _ := arrange.Lookup("barycenter")
	arr := a.Arrange([]int{2, 2}, circuit.ConnectionSet{{{A: 0, B: 1}, {A: 1, B: 0}}})
	fmt.Println(arr)
	// Output: [[0 1] [1 0]]
}

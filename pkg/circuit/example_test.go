package circuit_test

import (
	"fmt"

	"github.com/matzehuels/crossbench/pkg/circuit"
)

// ExampleCountCrossings scores a two-layer circuit whose connections form an X.
func ExampleCountCrossings() {
	cons := circuit.ConnectionSet{{
		{A: 0, B: 1},
		{A: 1, B: 0},
	}}
	fmt.Println(circuit.CountCrossings(cons))
	// Output: 1
}

// ExampleMapToPositions shows how reversing a layer's drawing order turns
// parallel connections into crossing ones.
func ExampleMapToPositions() {
	cons := circuit.ConnectionSet{{
		{A: 0, B: 0},
		{A: 1, B: 1},
	}}

	// Layer 1 drawn back to front: position 0 holds gate 1.
	arr := circuit.Arrangement{{0, 1}, {1, 0}}

	pos, err := circuit.MapToPositions(cons, arr)
	if err != nil {
		panic(err)
	}
	fmt.Println(circuit.CountCrossings(cons), circuit.CountCrossings(pos))
	// Output: 0 1
}

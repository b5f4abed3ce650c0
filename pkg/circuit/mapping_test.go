package circuit

import (
	"reflect"
	"testing"

	"github.com/matzehuels/crossbench/pkg/errors"
)

func TestMapToPositions_IdentityInvariance(t *testing.T) {
	cons, err := Generate([]int{5, 4, 6}, []int{8, 9}, 3)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	mapped, err := MapToPositions(cons, IdentityArrangement([]int{5, 4, 6}))
	if err != nil {
		t.Fatalf("MapToPositions() error = %v", err)
	}

	if !reflect.DeepEqual(mapped, cons) {
		t.Errorf("identity arrangement changed the set:\ngot:  %v\nwant: %v", mapped, cons)
	}
	if got, want := CountCrossings(mapped), CountCrossings(cons); got != want {
		t.Errorf("crossing count changed under identity arrangement: got %d, want %d", got, want)
	}
}

func TestMapToPositions_Reversal(t *testing.T) {
	// Reversing the lower layer turns parallel connections into crossing ones.
	cons := ConnectionSet{{{A: 0, B: 0}, {A: 1, B: 1}}}
	arr := Arrangement{{0, 1}, {1, 0}}

	mapped, err := MapToPositions(cons, arr)
	if err != nil {
		t.Fatalf("MapToPositions() error = %v", err)
	}

	want := ConnectionSet{{{A: 0, B: 1}, {A: 1, B: 0}}}
	if !reflect.DeepEqual(mapped, want) {
		t.Errorf("MapToPositions() = %v, want %v", mapped, want)
	}
	if got := CountCrossings(mapped); got != 1 {
		t.Errorf("CountCrossings() = %d, want 1", got)
	}
}

func TestMapToPositions_Pure(t *testing.T) {
	cons := ConnectionSet{{{A: 0, B: 1}, {A: 1, B: 0}}}
	orig := cons.Clone()

	if _, err := MapToPositions(cons, Arrangement{{1, 0}, {0, 1}}); err != nil {
		t.Fatalf("MapToPositions() error = %v", err)
	}

	if !reflect.DeepEqual(cons, orig) {
		t.Errorf("input mutated: got %v, want %v", cons, orig)
	}
}

func TestMapToPositions_PreservesOrder(t *testing.T) {
	cons := ConnectionSet{{{A: 2, B: 0}, {A: 0, B: 2}, {A: 1, B: 1}}}

	mapped, err := MapToPositions(cons, IdentityArrangement([]int{3, 3}))
	if err != nil {
		t.Fatalf("MapToPositions() error = %v", err)
	}

	// Substitution only - no reordering of the list itself.
	if !reflect.DeepEqual(mapped[0], cons[0]) {
		t.Errorf("within-gap order changed: got %v, want %v", mapped[0], cons[0])
	}
}

func TestMapToPositions_Malformed(t *testing.T) {
	cons := ConnectionSet{{{A: 0, B: 1}}}

	tests := []struct {
		name string
		arr  Arrangement
	}{
		{"wrong layer count", Arrangement{{0, 1}}},
		{"duplicate identity", Arrangement{{0, 0}, {0, 1}}},
		{"out-of-range identity", Arrangement{{0, 2}, {0, 1}}},
		{"identity missing from layer", Arrangement{{0, 1}, {0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapToPositions(cons, tt.arr)
			if !errors.Is(err, errors.ErrCodeMalformedArrangement) {
				t.Errorf("MapToPositions() error = %v, want MALFORMED_ARRANGEMENT", err)
			}
		})
	}
}

func TestIdentityArrangement(t *testing.T) {
	arr := IdentityArrangement([]int{3, 2})

	want := Arrangement{{0, 1, 2}, {0, 1}}
	if !reflect.DeepEqual(arr, want) {
		t.Errorf("IdentityArrangement() = %v, want %v", arr, want)
	}
}

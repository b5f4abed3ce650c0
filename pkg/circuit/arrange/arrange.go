// Package arrange defines the pluggable arrangement-algorithm interface and
// the identity baseline every real ordering heuristic is measured against.
//
// An [Arranger] proposes one permutation per layer (position → gate identity)
// from the layer sizes and the identity-keyed connectivity. Implementations
// must return a total bijection for every layer; the mapper rejects anything
// else. Heuristics register under a name so the evaluation harness can
// benchmark them side by side.
package arrange

import (
	"sort"
	"sync"

	"github.com/matzehuels/crossbench/pkg/circuit"
)

// Arranger is the extension point for layer-ordering algorithms. Arrange
// returns one permutation per layer mapping position index to gate identity.
// Implementations must be pure: no mutation of cons, and a valid bijection
// over [0, layerSizes[i]) for every layer i.
type Arranger interface {
	Arrange(layerSizes []int, cons circuit.ConnectionSet) circuit.Arrangement
}

// Identity is the no-op baseline: every layer keeps its gates in identity
// order, so position equals identity. It performs no randomization and
// ignores the connectivity entirely.
type Identity struct{}

// Arrange returns the permutation [0, 1, ..., size-1] for each layer.
func (Identity) Arrange(layerSizes []int, _ circuit.ConnectionSet) circuit.Arrangement {
	return circuit.IdentityArrangement(layerSizes)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Arranger{}
)

func init() {
	Register("identity", Identity{})
}

// Register makes an arranger selectable by name. Registering a name twice
// replaces the earlier entry; heuristics under comparison typically register
// from their own init functions.
func Register(name string, a Arranger) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = a
}

// Lookup returns the arranger registered under name, or false if none is.
func Lookup(name string) (Arranger, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := registry[name]
	return a, ok
}

// Names returns all registered arranger names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package sorting

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/san-kum/sortviz/internal/trace"
)

// Generator produces the trace of sorting seq without modifying it.
type Generator func(seq trace.Sequence) trace.Trace

type Algorithm struct {
	Name     string
	Label    string
	Generate Generator
}

type Registry struct {
	algorithms map[string]Algorithm
	aliases    map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]Algorithm),
		aliases:    make(map[string]string),
	}

	r.register(Algorithm{Name: "quick", Label: "Quick Sort", Generate: QuickSort}, "quickSort")
	r.register(Algorithm{Name: "heap", Label: "Heap Sort", Generate: HeapSort}, "heapSort")
	r.register(Algorithm{Name: "merge", Label: "Merge Sort", Generate: MergeSort}, "mergeSort")
	r.register(Algorithm{Name: "bubble", Label: "Bubble Sort", Generate: BubbleSort}, "bubbleSort")

	return r
}

func (r *Registry) register(a Algorithm, aliases ...string) {
	r.algorithms[a.Name] = a
	for _, alias := range aliases {
		r.aliases[alias] = a.Name
	}
}

func (r *Registry) Get(name string) (Algorithm, error) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown algorithm: %s (available: %v)", name, r.Names())
	}
	return a, nil
}

// Names returns the canonical algorithm names, sorted.
func (r *Registry) Names() []string {
	names := lo.Keys(r.algorithms)
	slices.Sort(names)
	return names
}

// Ordered returns the algorithms in menu order.
func (r *Registry) Ordered() []Algorithm {
	order := []string{"quick", "heap", "merge", "bubble"}
	out := make([]Algorithm, 0, len(order))
	for _, name := range order {
		if a, ok := r.algorithms[name]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Package permute enumerates every combination of one option per layer.
//
// Combinations are ordered with the first layer varying slowest and the last
// layer varying fastest. The ordinal of a combination is its zero-based
// position in that order and is stable for fixed option lists.
//
// Two equivalent forms are provided:
//   - Generate/Product: build the complete list up front
//   - Iterator/All: produce combinations one at a time in bounded memory
package permute

import (
	"fmt"
	"iter"
	"math"
)

// Permutation is one chosen option filename per layer, aligned with the
// layer order it was generated from.
type Permutation []string

// OptionLister lists the options available in a layer directory.
type OptionLister interface {
	ListOptions(dirName string) ([]string, error)
}

// Resolve lists the options of every layer, in layer order.
func Resolve(layers []string, lister OptionLister) ([][]string, error) {
	options := make([][]string, len(layers))
	for i, layer := range layers {
		opts, err := lister.ListOptions(layer)
		if err != nil {
			return nil, fmt.Errorf("failed to list options for layer %s: %w", layer, err)
		}
		options[i] = opts
	}
	return options, nil
}

// Generate lists each layer's options and returns the full Cartesian product.
// Nothing is returned if any listing fails.
func Generate(layers []string, lister OptionLister) ([]Permutation, error) {
	options, err := Resolve(layers, lister)
	if err != nil {
		return nil, err
	}
	return Product(options), nil
}

// Product returns the Cartesian product of the option lists.
// No lists yields a single empty permutation; any empty list yields none.
func Product(options [][]string) []Permutation {
	return product(make(Permutation, 0, len(options)), options)
}

func product(selected Permutation, remaining [][]string) []Permutation {
	if len(remaining) == 0 {
		return []Permutation{append(Permutation(nil), selected...)}
	}

	var out []Permutation
	for _, opt := range remaining[0] {
		out = append(out, product(append(selected, opt), remaining[1:])...)
	}
	return out
}

// Count returns the number of permutations the option lists produce, or
// math.MaxInt if the product does not fit in an int.
func Count(options [][]string) int {
	total := 1
	for _, opts := range options {
		n := len(opts)
		if n == 0 {
			return 0
		}
		if total > math.MaxInt/n {
			return math.MaxInt
		}
		total *= n
	}
	return total
}

// Iterator walks the Cartesian product like an odometer, advancing the last
// layer first. It holds one index per layer regardless of the product size.
type Iterator struct {
	options [][]string
	indices []int
	ordinal int
	started bool
	done    bool
}

// NewIterator creates an Iterator positioned before the first permutation.
func NewIterator(options [][]string) *Iterator {
	it := &Iterator{options: options}
	it.Reset()
	return it
}

// Reset rewinds the iterator to before the first permutation.
func (it *Iterator) Reset() {
	it.indices = make([]int, len(it.options))
	it.ordinal = -1
	it.started = false
	it.done = false
	for _, opts := range it.options {
		if len(opts) == 0 {
			it.done = true
		}
	}
}

// Next advances to the next permutation and reports whether one exists.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		it.ordinal = 0
		return true
	}

	for i := len(it.indices) - 1; i >= 0; i-- {
		it.indices[i]++
		if it.indices[i] < len(it.options[i]) {
			it.ordinal++
			return true
		}
		it.indices[i] = 0
	}

	it.done = true
	return false
}

// Ordinal returns the zero-based position of the current permutation.
func (it *Iterator) Ordinal() int {
	return it.ordinal
}

// Permutation returns a copy of the current permutation.
func (it *Iterator) Permutation() Permutation {
	p := make(Permutation, len(it.indices))
	for i, idx := range it.indices {
		p[i] = it.options[i][idx]
	}
	return p
}

// All returns a sequence of (ordinal, permutation) pairs over the product.
// Each call starts a fresh walk.
func All(options [][]string) iter.Seq2[int, Permutation] {
	return func(yield func(int, Permutation) bool) {
		it := NewIterator(options)
		for it.Next() {
			if !yield(it.Ordinal(), it.Permutation()) {
				return
			}
		}
	}
}

// Package segtree implements an array-backed segment tree: point assignment
// and range aggregation under a monoid.Monoid in O(log n). The operation need
// not be commutative; aggregates are always folded in position order.
package segtree

import (
	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/monoid"
)

// Tree is a segment tree over a fixed number of elements. The zero value is
// not usable; use New.
type Tree[X any] struct {
	m    monoid.Monoid[X]
	n    int
	size int
	// data[size+i] holds element i; data[k] aggregates data[2k] and data[2k+1].
	data []X
}

// New returns a Tree holding values.
func New[X any](values []X, m monoid.Monoid[X]) *Tree[X] {
	size := 1
	for size < len(values) {
		size *= 2
	}
	t := &Tree[X]{m: m, n: len(values), size: size, data: make([]X, 2*size)}
	for i := range t.data {
		t.data[i] = m.Identity()
	}
	copy(t.data[size:], values)
	for k := size - 1; k > 0; k-- {
		t.data[k] = m.Combine(t.data[2*k], t.data[2*k+1])
	}
	log.Debugf("built segment tree of %d elements over %d leaves", t.n, size)
	return t
}

// Len returns the number of elements.
func (t *Tree[X]) Len() int { return t.n }

// Get returns the element at position i.
func (t *Tree[X]) Get(i int) (X, error) {
	if err := datastructure.CheckIndex("Get", i, t.n); err != nil {
		var zero X
		return zero, err
	}
	return t.data[t.size+i], nil
}

// Set replaces the element at position i with x.
func (t *Tree[X]) Set(i int, x X) error {
	if err := datastructure.CheckIndex("Set", i, t.n); err != nil {
		return err
	}
	k := t.size + i
	t.data[k] = x
	for k > 1 {
		k /= 2
		t.data[k] = t.m.Combine(t.data[2*k], t.data[2*k+1])
	}
	return nil
}

// Query returns the aggregate of [start, end), the identity for an empty
// range.
func (t *Tree[X]) Query(start, end int) (X, error) {
	if err := datastructure.CheckRange("Query", start, end, t.n); err != nil {
		var zero X
		return zero, err
	}
	left, right := t.m.Identity(), t.m.Identity()
	for l, r := start+t.size, end+t.size; l < r; l, r = l/2, r/2 {
		if l&1 == 1 {
			left = t.m.Combine(left, t.data[l])
			l++
		}
		if r&1 == 1 {
			r--
			right = t.m.Combine(t.data[r], right)
		}
	}
	return t.m.Combine(left, right), nil
}

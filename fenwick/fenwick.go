// Package fenwick implements binary indexed trees.
//
// Tree folds prefixes under any commutative monoid. Sum specializes it to
// numeric addition, where subtraction also gives point reads, point
// assignment and arbitrary ranges.
//
// Positions are zero based at the API and one based internally.
package fenwick

import (
	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/monoid"
)

// Tree is a binary indexed tree over a commutative monoid.
type Tree[X any] struct {
	m    monoid.Monoid[X]
	data []X // data[0] is unused
}

// New returns a Tree of n identity elements.
func New[X any](n int, m monoid.Monoid[X]) (*Tree[X], error) {
	if err := datastructure.CheckSize("New", n); err != nil {
		return nil, err
	}
	t := &Tree[X]{m: m, data: make([]X, n+1)}
	for i := range t.data {
		t.data[i] = m.Identity()
	}
	return t, nil
}

// NewFromSlice returns a Tree holding values.
func NewFromSlice[X any](values []X, m monoid.Monoid[X]) *Tree[X] {
	t, _ := New(len(values), m)
	for i, v := range values {
		t.add(i+1, v)
	}
	log.Debugf("built fenwick tree of %d elements", len(values))
	return t
}

// Len returns the number of elements.
func (t *Tree[X]) Len() int { return len(t.data) - 1 }

// Add combines v into the element at position i.
func (t *Tree[X]) Add(i int, v X) error {
	if err := datastructure.CheckIndex("Add", i, t.Len()); err != nil {
		return err
	}
	t.add(i+1, v)
	return nil
}

func (t *Tree[X]) add(i int, v X) {
	for ; i < len(t.data); i += i & -i {
		t.data[i] = t.m.Combine(t.data[i], v)
	}
}

// Prefix returns the fold of the first i elements, 0 <= i <= Len().
func (t *Tree[X]) Prefix(i int) (X, error) {
	if err := datastructure.CheckRange("Prefix", 0, i, t.Len()); err != nil {
		var zero X
		return zero, err
	}
	return t.prefix(i), nil
}

func (t *Tree[X]) prefix(i int) X {
	acc := t.m.Identity()
	for ; i > 0; i -= i & -i {
		acc = t.m.Combine(acc, t.data[i])
	}
	return acc
}

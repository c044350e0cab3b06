// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package lazysegtree implements an array-backed segment tree over a fixed
// number of elements supporting range updates and range queries under a
// monoid.Lazy, both in O(log n).
//
// Pending updates are pushed down with the same rules as package treap: a
// node's update is composed into its children's, then applied to its own
// aggregate scaled by the width of the node's interval.
package lazysegtree

import (
	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/monoid"
)

// Tree is a lazy segment tree. The zero value is not usable; use New.
//
// Nodes are stored as an implicit heap: the root is at index 0 and the
// children of k are at 2k+1 and 2k+2. Leaves past the last element hold the
// value identity and are never updated.
type Tree[X any, M comparable] struct {
	ops  monoid.Lazy[X, M]
	noop M
	n    int
	size int // number of leaves, a power of two
	data []X
	lazy []M
}

// New returns a Tree holding values.
func New[X any, M comparable](ops monoid.Lazy[X, M], values []X) *Tree[X, M] {
	size := 1
	for size < len(values) {
		size *= 2
	}
	t := &Tree[X, M]{
		ops:  ops,
		noop: ops.UpdateIdentity(),
		n:    len(values),
		size: size,
		data: make([]X, 2*size-1),
		lazy: make([]M, 2*size-1),
	}
	for i := range t.data {
		t.data[i] = ops.Identity()
		t.lazy[i] = t.noop
	}
	copy(t.data[size-1:], values)
	for k := size - 2; k >= 0; k-- {
		t.data[k] = ops.Combine(t.data[2*k+1], t.data[2*k+2])
	}
	log.Debugf("built lazy segment tree of %d elements over %d leaves", t.n, size)
	return t
}

// Len returns the number of elements.
func (t *Tree[X, M]) Len() int { return t.n }

// eval resolves the update pending at node k, whose interval is width wide.
func (t *Tree[X, M]) eval(k, width int) {
	m := t.lazy[k]
	if m == t.noop {
		return
	}
	if k < t.size-1 {
		t.lazy[2*k+1] = t.ops.Compose(t.lazy[2*k+1], m)
		t.lazy[2*k+2] = t.ops.Compose(t.lazy[2*k+2], m)
	}
	t.data[k] = t.ops.Apply(t.data[k], t.ops.Scale(m, width))
	t.lazy[k] = t.noop
}

// Update composes m into every element of [start, end). An empty range is a
// no-op.
func (t *Tree[X, M]) Update(start, end int, m M) error {
	if err := datastructure.CheckRange("Update", start, end, t.n); err != nil {
		return err
	}
	if start < end {
		t.update(start, end, m, 0, 0, t.size)
	}
	return nil
}

func (t *Tree[X, M]) update(a, b int, m M, k, l, r int) {
	t.eval(k, r-l)
	switch {
	case a <= l && r <= b:
		t.lazy[k] = t.ops.Compose(t.lazy[k], m)
		t.eval(k, r-l)
	case a < r && l < b:
		mid := (l + r) / 2
		t.update(a, b, m, 2*k+1, l, mid)
		t.update(a, b, m, 2*k+2, mid, r)
		t.data[k] = t.ops.Combine(t.data[2*k+1], t.data[2*k+2])
	}
}

// Query returns the aggregate of [start, end), the identity for an empty
// range.
func (t *Tree[X, M]) Query(start, end int) (X, error) {
	if err := datastructure.CheckRange("Query", start, end, t.n); err != nil {
		var zero X
		return zero, err
	}
	if start == end {
		return t.ops.Identity(), nil
	}
	return t.query(start, end, 0, 0, t.size), nil
}

func (t *Tree[X, M]) query(a, b, k, l, r int) X {
	t.eval(k, r-l)
	if r <= a || b <= l {
		return t.ops.Identity()
	}
	if a <= l && r <= b {
		return t.data[k]
	}
	mid := (l + r) / 2
	return t.ops.Combine(
		t.query(a, b, 2*k+1, l, mid),
		t.query(a, b, 2*k+2, mid, r),
	)
}

// Get returns the element at position i with every pending update applied.
func (t *Tree[X, M]) Get(i int) (X, error) {
	if err := datastructure.CheckIndex("Get", i, t.n); err != nil {
		var zero X
		return zero, err
	}
	return t.query(i, i+1, 0, 0, t.size), nil
}

// Set overwrites the element at position i with x. Updates pending above it
// are pushed past it first, so x is stored as given.
func (t *Tree[X, M]) Set(i int, x X) error {
	if err := datastructure.CheckIndex("Set", i, t.n); err != nil {
		return err
	}
	t.set(i, x, 0, 0, t.size)
	return nil
}

func (t *Tree[X, M]) set(i int, x X, k, l, r int) {
	t.eval(k, r-l)
	if r-l == 1 {
		t.data[k] = x
		return
	}
	mid := (l + r) / 2
	if i < mid {
		t.set(i, x, 2*k+1, l, mid)
		t.eval(2*k+2, r-mid)
	} else {
		t.eval(2*k+1, mid-l)
		t.set(i, x, 2*k+2, mid, r)
	}
	t.data[k] = t.ops.Combine(t.data[2*k+1], t.data[2*k+2])
}

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

package treap

import (
	"fmt"

	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/internal/abstract"
	"github.com/fgshun/example-data-structure/monoid"
)

// Rand is the source of node priorities. *math/rand.Rand satisfies it.
type Rand = abstract.Rand

// Option configures a Treap.
type Option func(*options)

type options struct {
	rand Rand
}

// WithRand makes the Treap draw node priorities from r. Passing a seeded
// source makes the shape of the tree reproducible. The source is used by the
// Treap and every treap split or sliced from it.
func WithRand(r Rand) Option {
	return func(o *options) { o.rand = r }
}

// Treap is an ordered sequence of X maintaining aggregates under the monoid
// it was created with and accepting lazily applied range updates of type M.
//
// Positions are zero based. Every method taking a position or a range
// validates it and reports violations with an error satisfying
// errors.Is(err, datastructure.ErrOutOfRange); nothing is clamped.
type Treap[X any, M comparable] struct {
	s abstract.Seq[X, M]
}

// New returns an empty Treap using ops.
func New[X any, M comparable](ops monoid.Lazy[X, M], opts ...Option) *Treap[X, M] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Treap[X, M]{s: abstract.MakeSeq(abstract.MakeConfig(ops, o.rand))}
}

// NewFromSlice returns a Treap using ops holding values in order.
func NewFromSlice[X any, M comparable](
	ops monoid.Lazy[X, M], values []X, opts ...Option,
) *Treap[X, M] {
	t := New(ops, opts...)
	t.Extend(values...)
	return t
}

// derive returns an empty Treap sharing the receiver's monoid and priority
// source.
func (t *Treap[X, M]) derive(s abstract.Seq[X, M]) *Treap[X, M] {
	return &Treap[X, M]{s: s}
}

// Len returns the number of elements.
func (t *Treap[X, M]) Len() int { return t.s.Len() }

// Height returns the height of the underlying tree.
func (t *Treap[X, M]) Height() int { return t.s.Height() }

// Get returns the element at position i.
func (t *Treap[X, M]) Get(i int) (X, error) {
	if err := datastructure.CheckIndex("Get", i, t.Len()); err != nil {
		var zero X
		return zero, err
	}
	return t.s.At(i), nil
}

// Set overwrites the element at position i with x. The value is stored as
// given: no update is applied to it, including updates still pending above
// it, which are pushed past it first.
func (t *Treap[X, M]) Set(i int, x X) error {
	if err := datastructure.CheckIndex("Set", i, t.Len()); err != nil {
		return err
	}
	t.s.SetAt(i, x)
	return nil
}

// Insert places x at position i, 0 <= i <= Len(), shifting later elements.
func (t *Treap[X, M]) Insert(i int, x X) error {
	if i < 0 || i > t.Len() {
		str := fmt.Sprintf("Insert: index %d out of range [0, %d]", i, t.Len())
		return datastructure.MakeError(datastructure.ErrOutOfRange, str)
	}
	t.s.Insert(i, x)
	return nil
}

// Delete removes the element at position i.
func (t *Treap[X, M]) Delete(i int) error {
	if err := datastructure.CheckIndex("Delete", i, t.Len()); err != nil {
		return err
	}
	t.s.Erase(i, i+1)
	return nil
}

// Append places x after the last element.
func (t *Treap[X, M]) Append(x X) {
	t.s.Append(x)
}

// Extend appends values in order.
func (t *Treap[X, M]) Extend(values ...X) {
	for _, v := range values {
		t.s.Append(v)
	}
}

// Pop removes and returns the last element.
func (t *Treap[X, M]) Pop() (X, error) {
	n := t.Len()
	if n == 0 {
		var zero X
		return zero, datastructure.MakeError(datastructure.ErrOutOfRange,
			"Pop: treap is empty")
	}
	x := t.s.At(n - 1)
	t.s.Erase(n-1, n)
	return x, nil
}

// Reset removes every element.
func (t *Treap[X, M]) Reset() {
	log.Tracef("reset treap of %d elements", t.Len())
	t.s.Reset()
}

// IndexFunc returns the first position whose element satisfies f, or -1.
func (t *Treap[X, M]) IndexFunc(f func(X) bool) int {
	it := t.s.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		if f(it.Cur()) {
			return it.Index()
		}
	}
	return -1
}

// Update composes m into every element of [start, end). An empty range is a
// no-op.
func (t *Treap[X, M]) Update(start, end int, m M) error {
	if err := datastructure.CheckRange("Update", start, end, t.Len()); err != nil {
		return err
	}
	if start == end {
		return nil
	}
	t.s.Update(start, end, m)
	log.Tracef("update [%d, %d): %v", start, end, newLogClosure(t.s.String))
	return nil
}

// Query returns the aggregate of [start, end), the monoid's identity for an
// empty range.
func (t *Treap[X, M]) Query(start, end int) (X, error) {
	if err := datastructure.CheckRange("Query", start, end, t.Len()); err != nil {
		var zero X
		return zero, err
	}
	return t.s.Query(start, end), nil
}

// Split moves the first i elements into left and the rest into right, 0 <= i
// <= Len(). The receiver is consumed: it is left empty and the nodes now
// belong to the results.
func (t *Treap[X, M]) Split(i int) (left, right *Treap[X, M], err error) {
	if err := datastructure.CheckRange("Split", i, i, t.Len()); err != nil {
		return nil, nil, err
	}
	l, r := t.s.SplitAt(i)
	return t.derive(l), t.derive(r), nil
}

// Merge returns a Treap holding the receiver's elements followed by other's.
// Both operands are consumed and left empty. other must have been created with
// the same monoid as the receiver and must not be the receiver itself.
func (t *Treap[X, M]) Merge(other *Treap[X, M]) *Treap[X, M] {
	if other == t {
		panic(datastructure.MakeError(datastructure.ErrInvariantViolation,
			"Merge: a treap cannot be merged with itself"))
	}
	s := abstract.MakeSeq(t.s.Config())
	s.Concat(&t.s)
	s.Concat(&other.s)
	return t.derive(s)
}

// String returns the elements nested by tree shape, each subtree written as
// (left)value(right). An empty treap is written as ";".
func (t *Treap[X, M]) String() string {
	return t.s.String()
}

// Validate checks the structural invariants of the whole tree: subtree
// lengths, aggregates (compared with equal) and heap order of priorities. It
// is O(n) and meant for tests and diagnostics.
func (t *Treap[X, M]) Validate(equal func(a, b X) bool) error {
	return t.s.Validate(equal)
}

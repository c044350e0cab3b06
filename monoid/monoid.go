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

// Package monoid describes how the range structures of this module aggregate
// values and how they apply deferred updates to them.
package monoid

// Monoid combines values with an associative operation that has an identity
// element.  Combine need not be commutative; structures always combine in
// sequence order.
type Monoid[X any] interface {

	// Combine returns the aggregate of a followed by b.
	Combine(a, b X) X

	// Identity returns the identity element of Combine.
	Identity() X
}

// Lazy extends a Monoid with a second algebra of updates which may be held
// back at an interior node and pushed down only when the subtree below it is
// visited.
type Lazy[X, M any] interface {
	Monoid[X]

	// Apply returns x with the update m applied to it.  It is also used to
	// apply a scaled update to an aggregate.
	Apply(x X, m M) X

	// Compose returns the update equivalent to applying prev and then
	// next; next is the newer, outer update.
	Compose(prev, next M) M

	// Scale adjusts m for application to an aggregate which covers length
	// values.  For "add v" over a sum this is v*length; for assignment it is
	// usually m itself.
	Scale(m M, length int) M

	// UpdateIdentity returns the update that changes nothing.  Structures
	// compare against it to decide whether an update is pending, so equality
	// on M must be meaningful.
	UpdateIdentity() M
}

// Funcs adapts a pair of functions to the Monoid interface.
type Funcs[X any] struct {
	Op func(a, b X) X
	E  func() X
}

var _ Monoid[int] = Funcs[int]{}

func (f Funcs[X]) Combine(a, b X) X { return f.Op(a, b) }
func (f Funcs[X]) Identity() X { return f.E() }

// LazyFuncs adapts six functions to the Lazy interface.  The field names follow
// the customary fx/fa/fm/fp/ex/em naming of lazy segment trees.
type LazyFuncs[X, M any] struct {
	FX func(a, b X) X          // combine
	FA func(x X, m M) X        // apply
	FM func(prev, next M) M    // compose
	FP func(m M, length int) M // scale
	EX func() X                // value identity
	EM func() M                // update identity
}

var _ Lazy[int, int] = LazyFuncs[int, int]{}

func (f LazyFuncs[X, M]) Combine(a, b X) X { return f.FX(a, b) }
func (f LazyFuncs[X, M]) Identity() X { return f.EX() }
func (f LazyFuncs[X, M]) Apply(x X, m M) X { return f.FA(x, m) }
func (f LazyFuncs[X, M]) Compose(prev, next M) M { return f.FM(prev, next) }
func (f LazyFuncs[X, M]) Scale(m M, length int) M { return f.FP(m, length) }
func (f LazyFuncs[X, M]) UpdateIdentity() M { return f.EM() }

// Fold combines values in order starting from the identity of m.
func Fold[X any](m Monoid[X], values ...X) X {
	acc := m.Identity()
	for _, v := range values {
		acc = m.Combine(acc, v)
	}
	return acc
}

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

import "github.com/fgshun/example-data-structure/internal/abstract"

// Iterator allows iteration through the collection. It must be positioned
// with First, Last or SeekIndex before use.
//
// It is not safe to continue using an Iterator after the Treap is modified.
type Iterator[X any, M comparable] struct {
	it abstract.Iterator[X, M]
}

// MakeIter returns a new Iterator over the Treap.
func (t *Treap[X, M]) MakeIter() Iterator[X, M] {
	return Iterator[X, M]{it: t.s.MakeIter()}
}

// First seeks to the first element.
func (it *Iterator[X, M]) First() { it.it.First() }

// Last seeks to the last element.
func (it *Iterator[X, M]) Last() { it.it.Last() }

// SeekIndex seeks to position i. The iterator is invalid if i is out of
// bounds.
func (it *Iterator[X, M]) SeekIndex(i int) { it.it.SeekIndex(i) }

// Next moves to the following element.
func (it *Iterator[X, M]) Next() { it.it.Next() }

// Prev moves to the preceding element.
func (it *Iterator[X, M]) Prev() { it.it.Prev() }

// Valid returns whether the Iterator is positioned at an element.
func (it *Iterator[X, M]) Valid() bool { return it.it.Valid() }

// Cur returns the current element. It is illegal to call Cur if the Iterator
// is not valid.
func (it *Iterator[X, M]) Cur() X { return it.it.Cur() }

// Index returns the position of the current element.
func (it *Iterator[X, M]) Index() int { return it.it.Index() }

// ForEach calls f with each element in order until f returns false.
func (t *Treap[X, M]) ForEach(f func(X) bool) {
	it := t.s.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		if !f(it.Cur()) {
			return
		}
	}
}

// ForEachReverse calls f with each element in reverse order until f returns
// false.
func (t *Treap[X, M]) ForEachReverse(f func(X) bool) {
	it := t.s.MakeIter()
	for it.Last(); it.Valid(); it.Prev() {
		if !f(it.Cur()) {
			return
		}
	}
}

// Values returns the elements in order.
func (t *Treap[X, M]) Values() []X {
	values := make([]X, 0, t.Len())
	t.ForEach(func(x X) bool {
		values = append(values, x)
		return true
	})
	return values
}

// Copyright 2018 The Cockroach Authors.
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

package abstract

// Iterator is responsible for in-order traversal of a Seq. Every node is
// evaluated as the iterator descends into it, so Cur always reflects the
// updates pending above it.
//
// It is not safe to continue using an Iterator after the Seq is modified. If
// modifications are made, create a new Iterator.
type Iterator[X any, M comparable] struct {
	s    *Seq[X, M]
	node *Node[X, M]
	pos  int
	path iterStack[X, M]
}

// MakeIter returns a new Iterator over s. It is positioned before the first
// element.
func (s *Seq[X, M]) MakeIter() Iterator[X, M] {
	it := Iterator[X, M]{s: s}
	it.Reset()
	return it
}

// Reset invalidates the iterator.
func (i *Iterator[X, M]) Reset() {
	i.node = nil
	i.pos = -1
	i.path.reset()
}

// First seeks to the first element of the Seq.
func (i *Iterator[X, M]) First() {
	i.Reset()
	i.descend(i.s.root, false)
	i.pos = 0
}

// Last seeks to the last element of the Seq.
func (i *Iterator[X, M]) Last() {
	i.Reset()
	i.descend(i.s.root, true)
	i.pos = i.s.Len() - 1
}

// SeekIndex seeks to the element at position idx. The iterator is invalid if
// idx is out of bounds.
func (i *Iterator[X, M]) SeekIndex(idx int) {
	i.Reset()
	if idx < 0 || idx >= i.s.Len() {
		return
	}
	cfg := i.s.cfg
	n, rem := i.s.root, idx
	for {
		cfg.Eval(n)
		ll := n.leftLen()
		if rem == ll {
			break
		}
		i.path.push(n)
		if rem < ll {
			n = n.left
		} else {
			rem -= ll + 1
			n = n.right
		}
	}
	i.node = n
	i.pos = idx
}

// descend walks from n to its leftmost (or rightmost) node, pushing the
// nodes passed on the way.
func (i *Iterator[X, M]) descend(n *Node[X, M], rightmost bool) {
	cfg := i.s.cfg
	for n != nil {
		cfg.Eval(n)
		next := n.left
		if rightmost {
			next = n.right
		}
		if next == nil {
			break
		}
		i.path.push(n)
		n = next
	}
	i.node = n
}

// Next positions the Iterator to the element immediately following its
// current position.
func (i *Iterator[X, M]) Next() {
	if i.node == nil {
		return
	}
	i.pos++
	if r := i.node.right; r != nil {
		i.path.push(i.node)
		i.descend(r, false)
		return
	}
	for child := i.node; ; {
		parent := i.path.pop()
		if parent == nil {
			i.Reset()
			return
		}
		if parent.left == child {
			i.node = parent
			return
		}
		child = parent
	}
}

// Prev positions the Iterator to the element immediately preceding its
// current position.
func (i *Iterator[X, M]) Prev() {
	if i.node == nil {
		return
	}
	i.pos--
	if l := i.node.left; l != nil {
		i.path.push(i.node)
		i.descend(l, true)
		return
	}
	for child := i.node; ; {
		parent := i.path.pop()
		if parent == nil {
			i.Reset()
			return
		}
		if parent.right == child {
			i.node = parent
			return
		}
		child = parent
	}
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[X, M]) Valid() bool {
	return i.node != nil
}

// Cur returns the element at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[X, M]) Cur() X {
	return i.node.value
}

// Index returns the position of the current element.
func (i *Iterator[X, M]) Index() int {
	return i.pos
}

// Depth returns the number of ancestors of the current node.
func (i *Iterator[X, M]) Depth() int {
	return i.path.len()
}

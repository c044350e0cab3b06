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

import (
	"fmt"
	"strings"

	datastructure "github.com/fgshun/example-data-structure"
)

// Seq is an implicit-key treap: a sequence whose positions are the in-order
// ranks of its nodes. Every operation is built from Split, Merge and Eval.
//
// Seq does not validate its arguments; indexes and ranges must already be
// known to lie within bounds. It is not safe for concurrent use.
type Seq[X any, M comparable] struct {
	root *Node[X, M]
	cfg  *Config[X, M]
}

// MakeSeq returns an empty Seq using cfg.
func MakeSeq[X any, M comparable](cfg *Config[X, M]) Seq[X, M] {
	return Seq[X, M]{cfg: cfg}
}

// Config returns the Seq's config.
func (s *Seq[X, M]) Config() *Config[X, M] { return s.cfg }

// Root returns the root node, nil when the Seq is empty.
func (s *Seq[X, M]) Root() *Node[X, M] { return s.root }

// Len returns the number of elements.
func (s *Seq[X, M]) Len() int { return s.root.Len() }

// Height returns the height of the tree.
func (s *Seq[X, M]) Height() int { return s.root.height() }

// At returns the element at position i.
func (s *Seq[X, M]) At(i int) X {
	return s.cfg.find(s.root, i).value
}

// SetAt overwrites the element at position i with x. The value is replaced
// directly, no update is applied to it.
func (s *Seq[X, M]) SetAt(i int, x X) {
	n := s.cfg.find(s.root, i)
	n.value = x
	s.cfg.fix(s.root, i)
}

// Insert places x at position i, shifting later elements right.
func (s *Seq[X, M]) Insert(i int, x X) {
	s.InsertNode(i, s.cfg.NewNode(x))
}

// InsertNode places the detached node n at position i.
func (s *Seq[X, M]) InsertNode(i int, n *Node[X, M]) {
	l, r := s.cfg.Split(s.root, i)
	s.root = s.cfg.Merge(s.cfg.Merge(l, n), r)
	if s.root == nil {
		panic(invariantViolation("insert: merge produced an empty tree"))
	}
}

// Append places x after the last element.
func (s *Seq[X, M]) Append(x X) {
	s.root = s.cfg.Merge(s.root, s.cfg.NewNode(x))
}

// Erase removes the elements in [start, end) and returns their nodes to the
// node pool.
func (s *Seq[X, M]) Erase(start, end int) {
	s.cfg.np.release(s.cut(start, end))
}

// Replace substitutes the elements in [start, end) with values.
func (s *Seq[X, M]) Replace(start, end int, values []X) {
	tmp, right := s.cfg.Split(s.root, end)
	left, center := s.cfg.Split(tmp, start)
	s.cfg.np.release(center)
	for _, v := range values {
		left = s.cfg.Merge(left, s.cfg.NewNode(v))
	}
	s.root = s.cfg.Merge(left, right)
}

// cut detaches [start, end) and returns it as a standalone subtree.
func (s *Seq[X, M]) cut(start, end int) *Node[X, M] {
	tmp, right := s.cfg.Split(s.root, end)
	left, center := s.cfg.Split(tmp, start)
	s.root = s.cfg.Merge(left, right)
	return center
}

// Update composes m into every element of [start, end).
func (s *Seq[X, M]) Update(start, end int, m M) {
	tmp, right := s.cfg.Split(s.root, end)
	left, center := s.cfg.Split(tmp, start)
	if center != nil {
		center.lazy = s.cfg.Ops.Compose(center.lazy, m)
		s.cfg.Eval(center)
	}
	s.root = s.cfg.Merge(left, s.cfg.Merge(center, right))
}

// Query returns the aggregate of [start, end), the identity if it is empty.
func (s *Seq[X, M]) Query(start, end int) X {
	tmp, right := s.cfg.Split(s.root, end)
	left, center := s.cfg.Split(tmp, start)
	acc := s.cfg.Ops.Identity()
	if center != nil {
		s.cfg.Eval(center)
		acc = center.acc
	}
	s.root = s.cfg.Merge(s.cfg.Merge(left, center), right)
	return acc
}

// Copy returns a new Seq holding a structural copy of [start, end). The
// receiver is unchanged once Copy returns.
func (s *Seq[X, M]) Copy(start, end int) Seq[X, M] {
	tmp, right := s.cfg.Split(s.root, end)
	left, center := s.cfg.Split(tmp, start)
	c := Seq[X, M]{root: s.cfg.clone(center), cfg: s.cfg}
	s.root = s.cfg.Merge(s.cfg.Merge(left, center), right)
	return c
}

// SplitAt moves the first i elements into left and the rest into right. The
// receiver is left empty.
func (s *Seq[X, M]) SplitAt(i int) (left, right Seq[X, M]) {
	l, r := s.cfg.Split(s.root, i)
	s.root = nil
	return Seq[X, M]{root: l, cfg: s.cfg}, Seq[X, M]{root: r, cfg: s.cfg}
}

// Concat moves the elements of o after those of the receiver. o is left
// empty.
func (s *Seq[X, M]) Concat(o *Seq[X, M]) {
	s.root = s.cfg.Merge(s.root, o.root)
	o.root = nil
}

// Reset removes every element and returns the nodes to the node pool.
func (s *Seq[X, M]) Reset() {
	s.cfg.np.release(s.root)
	s.root = nil
}

// String returns the elements nested by tree shape: each subtree is written
// as (left)value(right). An empty Seq is written as ";".
func (s *Seq[X, M]) String() string {
	if s.root == nil {
		return ";"
	}
	var b strings.Builder
	s.root.writeString(s.cfg, &b)
	return b.String()
}

// Validate pushes every pending update down and checks that each node's
// length and aggregate agree with its children. It returns an
// ErrInvariantViolation error describing the first mismatch.
func (s *Seq[X, M]) Validate(equal func(a, b X) bool) error {
	_, _, err := s.validate(s.root, equal)
	return err
}

func (s *Seq[X, M]) validate(
	n *Node[X, M], equal func(a, b X) bool,
) (length int, acc X, err error) {
	if n == nil {
		return 0, s.cfg.Ops.Identity(), nil
	}
	s.cfg.Eval(n)
	ll, lacc, err := s.validate(n.left, equal)
	if err != nil {
		return 0, acc, err
	}
	rl, racc, err := s.validate(n.right, equal)
	if err != nil {
		return 0, acc, err
	}
	length = ll + rl + 1
	acc = s.cfg.Ops.Combine(s.cfg.Ops.Combine(lacc, n.value), racc)
	if length != n.length {
		return 0, acc, invariantViolation(
			"node %v: length %d, subtree holds %d", n.value, n.length, length)
	}
	if !equal(acc, n.acc) {
		return 0, acc, invariantViolation(
			"node %v: aggregate %v, subtree folds to %v", n.value, n.acc, acc)
	}
	for _, child := range [2]*Node[X, M]{n.left, n.right} {
		if child != nil && child.priority > n.priority {
			return 0, acc, invariantViolation(
				"node %v: child %v has higher priority", n.value, child.value)
		}
	}
	return length, acc, nil
}

func invariantViolation(format string, args ...interface{}) datastructure.Error {
	return datastructure.MakeError(datastructure.ErrInvariantViolation,
		fmt.Sprintf(format, args...))
}

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

// Eval applies the update pending at n to its value and aggregate and hands
// it down to the children, which are left unevaluated. It must be called on
// every node visited top-down before its value, aggregate or children are
// trusted. Evaluating a node with nothing pending is a no-op, so Eval is
// idempotent.
func (c *Config[X, M]) Eval(n *Node[X, M]) {
	if n == nil || !c.Pending(n.lazy) {
		return
	}
	if n.left != nil {
		n.left.lazy = c.Ops.Compose(n.left.lazy, n.lazy)
	}
	if n.right != nil {
		n.right.lazy = c.Ops.Compose(n.right.lazy, n.lazy)
	}
	n.value = c.Ops.Apply(n.value, n.lazy)
	n.acc = c.Ops.Apply(n.acc, c.Ops.Scale(n.lazy, n.length))
	n.lazy = c.noop
}

// pushup recomputes the length and aggregate of n from its own value and its
// children. The children are evaluated first so their aggregates are
// current. n itself must already be evaluated.
//
// The aggregate is folded in sequence order, left subtree first, so that
// non-commutative monoids see their operands in position order.
func (c *Config[X, M]) pushup(n *Node[X, M]) {
	n.length = 1
	n.acc = n.value
	if n.left != nil {
		c.Eval(n.left)
		n.length += n.left.length
		n.acc = c.Ops.Combine(n.left.acc, n.acc)
	}
	if n.right != nil {
		c.Eval(n.right)
		n.length += n.right.length
		n.acc = c.Ops.Combine(n.acc, n.right.acc)
	}
}

// Split divides the subtree rooted at n into its first k elements and the
// rest. It requires 0 <= k <= n.Len(). Ownership of every node moves to one
// of the two results.
func (c *Config[X, M]) Split(n *Node[X, M], k int) (left, right *Node[X, M]) {
	if n == nil {
		return nil, nil
	}
	c.Eval(n)
	if ll := n.leftLen(); ll < k {
		mid, r := c.Split(n.right, k-ll-1)
		n.right = mid
		c.pushup(n)
		return n, r
	}
	l, mid := c.Split(n.left, k)
	n.left = mid
	c.pushup(n)
	return l, n
}

// Merge concatenates the subtrees rooted at left and right, left first. Both
// operands are consumed. When left's priority is less than or equal to
// right's, right becomes the root, so equal priorities favour the right
// operand.
//
// Merge and Split recurse along one root-to-leaf path. The depth is expected
// to be logarithmic for independently drawn priorities and degrades to linear
// for adversarial ones.
func (c *Config[X, M]) Merge(left, right *Node[X, M]) *Node[X, M] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	c.Eval(left)
	c.Eval(right)
	if left.priority <= right.priority {
		right.left = c.Merge(left, right.left)
		c.pushup(right)
		return right
	}
	left.right = c.Merge(left.right, right)
	c.pushup(left)
	return left
}

// find returns the node at position i of the subtree rooted at n, evaluating
// every node on the way down so that the updates pending at its ancestors
// have reached it. It requires 0 <= i < n.Len().
func (c *Config[X, M]) find(n *Node[X, M], i int) *Node[X, M] {
	for n != nil {
		c.Eval(n)
		switch ll := n.leftLen(); {
		case i < ll:
			n = n.left
		case i == ll:
			return n
		default:
			i -= ll + 1
			n = n.right
		}
	}
	panic(invariantViolation("find: index %d not reachable", i))
}

// fix re-evaluates the aggregates along the path from n to position i after
// the node at i was changed in place.
func (c *Config[X, M]) fix(n *Node[X, M], i int) {
	if n == nil {
		return
	}
	c.Eval(n)
	switch ll := n.leftLen(); {
	case i < ll:
		c.fix(n.left, i)
	case i > ll:
		c.fix(n.right, i-ll-1)
	}
	c.pushup(n)
}

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
)

// Node is a vertex of an implicit-key treap. A node is owned by exactly one
// parent slot or tree root; Split and Merge move nodes between owners and
// never share them.
type Node[X any, M comparable] struct {
	value X
	acc   X
	lazy  M

	left, right *Node[X, M]

	// length is the number of nodes in the subtree rooted here.
	length int

	priority float64
}

// Value returns the value held by the node. It reflects pending updates only
// once the node has been evaluated.
func (n *Node[X, M]) Value() X { return n.value }

// Acc returns the aggregate of the subtree rooted at the node.
func (n *Node[X, M]) Acc() X { return n.acc }

// Lazy returns the update pending at the node.
func (n *Node[X, M]) Lazy() M { return n.lazy }

// Left returns the left child, which may be nil.
func (n *Node[X, M]) Left() *Node[X, M] { return n.left }

// Right returns the right child, which may be nil.
func (n *Node[X, M]) Right() *Node[X, M] { return n.right }

// Priority returns the heap priority of the node.
func (n *Node[X, M]) Priority() float64 { return n.priority }

// Len returns the size of the subtree rooted at n, zero for nil.
func (n *Node[X, M]) Len() int {
	if n == nil {
		return 0
	}
	return n.length
}

// leftLen returns the size of the left subtree.
func (n *Node[X, M]) leftLen() int {
	if n.left != nil {
		return n.left.length
	}
	return 0
}

func (n *Node[X, M]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *Node[X, M]) writeString(c *Config[X, M], b *strings.Builder) {
	c.Eval(n)
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(c, b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", n.value)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(c, b)
		b.WriteString(")")
	}
}

// clone returns a structural copy of the subtree rooted at n: same shape,
// priorities, values, aggregates and pending updates.
func (c *Config[X, M]) clone(n *Node[X, M]) *Node[X, M] {
	if n == nil {
		return nil
	}
	m := c.np.getNode()
	*m = Node[X, M]{
		value:    n.value,
		acc:      n.acc,
		lazy:     n.lazy,
		left:     c.clone(n.left),
		right:    c.clone(n.right),
		length:   n.length,
		priority: n.priority,
	}
	return m
}

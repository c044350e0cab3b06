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
	"math/rand"

	"github.com/fgshun/example-data-structure/monoid"
)

// Config is shared by every node of a tree and by every tree split off from
// it. It consists of the monoid describing aggregation and updates and the
// source of node priorities. A Config is not modified after construction.
type Config[X any, M comparable] struct {

	// Ops combines values and applies pending updates.
	Ops monoid.Lazy[X, M]

	rand Rand
	noop M
	np   *nodePool[X, M]
}

// MakeConfig returns a Config for ops. If r is nil, priorities are drawn from
// the process-seeded math/rand source.
func MakeConfig[X any, M comparable](ops monoid.Lazy[X, M], r Rand) *Config[X, M] {
	if r == nil {
		r = globalRand{}
	}
	return &Config[X, M]{
		Ops:  ops,
		rand: r,
		noop: ops.UpdateIdentity(),
		np:   getNodePool[X, M](),
	}
}

// Pending reports whether m is anything other than the identity update.
func (c *Config[X, M]) Pending(m M) bool { return m != c.noop }

// NewNode returns a detached node holding v with a freshly drawn priority.
func (c *Config[X, M]) NewNode(v X) *Node[X, M] {
	return c.NewNodeWithPriority(v, c.rand.Float64())
}

// NewNodeWithPriority returns a detached node holding v with the given
// priority.
func (c *Config[X, M]) NewNodeWithPriority(v X, priority float64) *Node[X, M] {
	n := c.np.getNode()
	n.value = v
	n.acc = v
	n.lazy = c.noop
	n.length = 1
	n.priority = priority
	return n
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

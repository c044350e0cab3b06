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

import "sync"

// nodePool recycles the nodes of erased elements. There is one pool per
// instantiation of Node, shared by every tree of that type.
type nodePool[X any, M comparable] struct {
	nodePool sync.Pool
}

var syncPoolMap sync.Map

func getNodePool[X any, M comparable]() *nodePool[X, M] {
	var nilNode *Node[X, M]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[X, M]())
	}
	return v.(*nodePool[X, M])
}

func newNodePool[X any, M comparable]() *nodePool[X, M] {
	np := nodePool[X, M]{}
	np.nodePool = sync.Pool{
		New: func() interface{} {
			return new(Node[X, M])
		},
	}
	return &np
}

func (np *nodePool[X, M]) getNode() *Node[X, M] {
	return np.nodePool.Get().(*Node[X, M])
}

func (np *nodePool[X, M]) putNode(n *Node[X, M]) {
	*n = Node[X, M]{}
	np.nodePool.Put(n)
}

// release returns every node of the subtree rooted at n to the pool. The
// caller must hold the only reference to the subtree.
func (np *nodePool[X, M]) release(n *Node[X, M]) {
	if n == nil {
		return
	}
	np.release(n.left)
	np.release(n.right)
	np.putNode(n)
}

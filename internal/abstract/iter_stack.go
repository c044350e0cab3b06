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

// iterStack represents the stack of ancestors of an Iterator's current node,
// root first.
type iterStack[X any, M comparable] struct {
	a    iterStackArr[X, M]
	aLen int16 // -1 when using s
	s    []*Node[X, M]
}

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[X any, M comparable] [staticDepth]*Node[X, M]

func (is *iterStack[X, M]) push(n *Node[X, M]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*Node[X, M], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

// pop removes the top node from the stack. It returns nil if the stack is
// empty.
func (is *iterStack[X, M]) pop() *Node[X, M] {
	if is.aLen == -1 {
		if len(is.s) == 0 {
			return nil
		}
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	if is.aLen == 0 {
		return nil
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[X, M]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

func (is *iterStack[X, M]) reset() {
	if is.aLen == -1 {
		is.s = is.s[:0]
	} else {
		is.aLen = 0
	}
}

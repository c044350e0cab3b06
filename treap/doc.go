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

/*
Package treap implements an ordered sequence backed by a treap with implicit
keys: a binary tree ordered by position and balanced by random priorities.

Besides the usual sequence operations (indexing, insertion, deletion, slicing
and iteration, each O(log n) expected) the treap maintains the aggregate of
every subtree under a monoid and supports range updates that are applied
lazily, so both Update(start, end, m) and Query(start, end) cost O(log n)
expected.  How values aggregate and how updates act on them is described by a
monoid.Lazy supplied at construction.

All operations decompose into split, merge and evaluation of pending updates.
The expected depth of the tree is logarithmic because priorities are drawn
independently; an adversarial priority source can degrade it to linear, and
the recursion depth of split and merge with it.

A Treap is not safe for concurrent use.
*/
package treap

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

// Rand is the source of node priorities. *math/rand.Rand satisfies it. A
// Rand is used by a single tree at a time and need not be safe for
// concurrent use.
type Rand interface {

	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// staticDepth is the size of the static array used to hold the path of an
// iterator. A treap's height is logarithmic with very high probability, so
// the overflow slice is almost never needed.
const staticDepth = 64

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

import (
	"fmt"

	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/internal/abstract"
)

// checkSlice validates a strided range and returns the number of positions
// start, start+step, ... below end.
func checkSlice(op string, start, end, step, n int) (int, error) {
	if step < 1 {
		str := fmt.Sprintf("%s: step %d must be positive", op, step)
		return 0, datastructure.MakeError(datastructure.ErrInvalidStep, str)
	}
	if err := datastructure.CheckRange(op, start, end, n); err != nil {
		return 0, err
	}
	return (end - start + step - 1) / step, nil
}

// Slice returns a new Treap holding the elements at positions start,
// start+step, ... below end. The result shares the receiver's monoid and
// priority source but no nodes: later changes to either are not seen by the
// other.
func (t *Treap[X, M]) Slice(start, end, step int) (*Treap[X, M], error) {
	count, err := checkSlice("Slice", start, end, step, t.Len())
	if err != nil {
		return nil, err
	}
	if step == 1 {
		return t.derive(t.s.Copy(start, end)), nil
	}
	log.Debugf("strided slice of %d elements from [%d, %d) step %d",
		count, start, end, step)
	s := abstract.MakeSeq(t.s.Config())
	for i := start; i < end; i += step {
		s.Append(t.s.At(i))
	}
	return t.derive(s), nil
}

// DeleteSlice removes the elements at positions start, start+step, ... below
// end.
func (t *Treap[X, M]) DeleteSlice(start, end, step int) error {
	count, err := checkSlice("DeleteSlice", start, end, step, t.Len())
	if err != nil {
		return err
	}
	if step == 1 {
		t.s.Erase(start, end)
		return nil
	}
	// Removing from the back keeps the positions still to visit stable.
	for k := count - 1; k >= 0; k-- {
		i := start + k*step
		t.s.Erase(i, i+1)
	}
	log.Tracef("deleted %d elements from [%d, %d) step %d", count, start, end, step)
	return nil
}

// SetSlice replaces the elements at positions start, start+step, ... below
// end with values. With a step of one the range may be replaced by any number
// of values, growing or shrinking the treap. Otherwise len(values) must match
// the number of positions addressed; on mismatch nothing is modified.
func (t *Treap[X, M]) SetSlice(start, end, step int, values []X) error {
	count, err := checkSlice("SetSlice", start, end, step, t.Len())
	if err != nil {
		return err
	}
	if step == 1 {
		t.s.Replace(start, end, values)
		return nil
	}
	if len(values) != count {
		str := fmt.Sprintf("SetSlice: %d values for %d positions", len(values), count)
		return datastructure.MakeError(datastructure.ErrLengthMismatch, str)
	}
	for k, v := range values {
		t.s.SetAt(start+k*step, v)
	}
	return nil
}

// QuerySlice returns the aggregate, in position order, of the elements at
// positions start, start+step, ... below end.
func (t *Treap[X, M]) QuerySlice(start, end, step int) (X, error) {
	if _, err := checkSlice("QuerySlice", start, end, step, t.Len()); err != nil {
		var zero X
		return zero, err
	}
	if step == 1 {
		return t.s.Query(start, end), nil
	}
	ops := t.s.Config().Ops
	acc := ops.Identity()
	for i := start; i < end; i += step {
		acc = ops.Combine(acc, t.s.At(i))
	}
	return acc, nil
}

// Package sparsetable answers range queries over an immutable sequence in
// O(1) after an O(n log n) build. The operator must be associative and
// idempotent (op(x, x) == x), such as min, max, bitwise and/or or gcd, since
// a query folds two possibly overlapping windows.
package sparsetable

import (
	"fmt"
	"math/bits"

	datastructure "github.com/fgshun/example-data-structure"
)

// Table is a sparse table. levels[k][i] folds the 1<<k elements starting at
// i.
type Table[X any] struct {
	op     func(a, b X) X
	levels [][]X
}

// New builds a Table over a copy of values.
func New[X any](values []X, op func(a, b X) X) *Table[X] {
	base := append([]X(nil), values...)
	t := &Table[X]{op: op, levels: [][]X{base}}
	for k := 1; 1<<k <= len(base); k++ {
		prev, half := t.levels[k-1], 1<<(k-1)
		level := make([]X, len(prev)-half)
		for i := range level {
			level[i] = op(prev[i], prev[i+half])
		}
		t.levels = append(t.levels, level)
	}
	log.Debugf("built sparse table of %d elements with %d levels",
		len(base), len(t.levels))
	return t
}

// Len returns the number of elements.
func (t *Table[X]) Len() int { return len(t.levels[0]) }

// Query returns the fold of [start, end). The range must be non-empty: there
// is no identity to return otherwise.
func (t *Table[X]) Query(start, end int) (X, error) {
	var zero X
	if err := datastructure.CheckRange("Query", start, end, t.Len()); err != nil {
		return zero, err
	}
	if start == end {
		str := fmt.Sprintf("Query: range [%d, %d) is empty", start, end)
		return zero, datastructure.MakeError(datastructure.ErrEmptyRange, str)
	}
	k := bits.Len(uint(end-start)) - 1
	level := t.levels[k]
	return t.op(level[start], level[end-1<<k]), nil
}

package fenwick

import (
	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/monoid"
)

// Sum is a binary indexed tree of numbers under addition.
type Sum[T monoid.Number] struct {
	data []T // data[0] is unused
}

// NewSum returns a Sum of n zeros.
func NewSum[T monoid.Number](n int) (*Sum[T], error) {
	if err := datastructure.CheckSize("NewSum", n); err != nil {
		return nil, err
	}
	return &Sum[T]{data: make([]T, n+1)}, nil
}

// NewSumFromSlice returns a Sum holding values. It is built in linear time.
func NewSumFromSlice[T monoid.Number](values []T) *Sum[T] {
	s := &Sum[T]{data: make([]T, len(values)+1)}
	copy(s.data[1:], values)
	for i := 1; i < len(s.data); i++ {
		if j := i + i&-i; j < len(s.data) {
			s.data[j] += s.data[i]
		}
	}
	log.Debugf("built fenwick sum of %d elements", len(values))
	return s
}

// Len returns the number of elements.
func (s *Sum[T]) Len() int { return len(s.data) - 1 }

// Add adds delta to the element at position i.
func (s *Sum[T]) Add(i int, delta T) error {
	if err := datastructure.CheckIndex("Add", i, s.Len()); err != nil {
		return err
	}
	s.add(i+1, delta)
	return nil
}

func (s *Sum[T]) add(i int, delta T) {
	for ; i < len(s.data); i += i & -i {
		s.data[i] += delta
	}
}

// Set replaces the element at position i with v.
func (s *Sum[T]) Set(i int, v T) error {
	if err := datastructure.CheckIndex("Set", i, s.Len()); err != nil {
		return err
	}
	s.add(i+1, v-s.rangeSum(i, i+1))
	return nil
}

// Get returns the element at position i.
func (s *Sum[T]) Get(i int) (T, error) {
	if err := datastructure.CheckIndex("Get", i, s.Len()); err != nil {
		return 0, err
	}
	return s.rangeSum(i, i+1), nil
}

// Prefix returns the sum of the first i elements, 0 <= i <= Len().
func (s *Sum[T]) Prefix(i int) (T, error) {
	if err := datastructure.CheckRange("Prefix", 0, i, s.Len()); err != nil {
		return 0, err
	}
	return s.prefix(i), nil
}

// Range returns the sum of [start, end).
func (s *Sum[T]) Range(start, end int) (T, error) {
	if err := datastructure.CheckRange("Range", start, end, s.Len()); err != nil {
		return 0, err
	}
	return s.rangeSum(start, end), nil
}

func (s *Sum[T]) rangeSum(start, end int) T {
	return s.prefix(end) - s.prefix(start)
}

func (s *Sum[T]) prefix(i int) T {
	var acc T
	for ; i > 0; i -= i & -i {
		acc += s.data[i]
	}
	return acc
}

package monoid

import "golang.org/x/exp/constraints"

// Number is the set of types the numeric presets operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds values.
type Sum[T Number] struct{}

func (Sum[T]) Combine(a, b T) T { return a + b }
func (Sum[T]) Identity() T { return 0 }

// Min keeps the smaller value.  Top must be at least as large as every value
// that is ever combined, it acts as the identity.
type Min[T constraints.Ordered] struct{ Top T }

func (Min[T]) Combine(a, b T) T { return min(a, b) }
func (m Min[T]) Identity() T { return m.Top }

// Max keeps the larger value.  Bottom acts as the identity.
type Max[T constraints.Ordered] struct{ Bottom T }

func (Max[T]) Combine(a, b T) T { return max(a, b) }
func (m Max[T]) Identity() T { return m.Bottom }

// AddSum maintains range sums under range additions.
type AddSum[T Number] struct{ Sum[T] }

var _ Lazy[int, int] = AddSum[int]{}

func (AddSum[T]) Apply(x, m T) T { return x + m }
func (AddSum[T]) Compose(prev, next T) T { return prev + next }
func (AddSum[T]) Scale(m T, length int) T { return m * T(length) }
func (AddSum[T]) UpdateIdentity() T { return 0 }

// AddMin maintains range minimums under range additions.
type AddMin[T Number] struct{ Min[T] }

var _ Lazy[int, int] = AddMin[int]{}

func (AddMin[T]) Apply(x, m T) T { return x + m }
func (AddMin[T]) Compose(prev, next T) T { return prev + next }
func (AddMin[T]) Scale(m T, _ int) T { return m }
func (AddMin[T]) UpdateIdentity() T { return 0 }

// AddMax maintains range maximums under range additions.
type AddMax[T Number] struct{ Max[T] }

var _ Lazy[int, int] = AddMax[int]{}

func (AddMax[T]) Apply(x, m T) T { return x + m }
func (AddMax[T]) Compose(prev, next T) T { return prev + next }
func (AddMax[T]) Scale(m T, _ int) T { return m }
func (AddMax[T]) UpdateIdentity() T { return 0 }

// AssignMin maintains range minimums under range assignments.  Top doubles as
// the "no assignment pending" sentinel, so it cannot itself be assigned.
type AssignMin[T constraints.Ordered] struct{ Min[T] }

var _ Lazy[int, int] = AssignMin[int]{}

func (AssignMin[T]) Apply(_, m T) T { return m }
func (AssignMin[T]) Compose(_, next T) T { return next }
func (AssignMin[T]) Scale(m T, _ int) T { return m }
func (a AssignMin[T]) UpdateIdentity() T { return a.Top }

// AssignMax maintains range maximums under range assignments.  Bottom doubles
// as the "no assignment pending" sentinel.
type AssignMax[T constraints.Ordered] struct{ Max[T] }

var _ Lazy[int, int] = AssignMax[int]{}

func (AssignMax[T]) Apply(_, m T) T { return m }
func (AssignMax[T]) Compose(_, next T) T { return next }
func (AssignMax[T]) Scale(m T, _ int) T { return m }
func (a AssignMax[T]) UpdateIdentity() T { return a.Bottom }

// NewAddMin returns an AddMin whose identity is top.
func NewAddMin[T Number](top T) AddMin[T] { return AddMin[T]{Min[T]{Top: top}} }

// NewAddMax returns an AddMax whose identity is bottom.
func NewAddMax[T Number](bottom T) AddMax[T] { return AddMax[T]{Max[T]{Bottom: bottom}} }

// NewAssignMin returns an AssignMin whose identities are top.
func NewAssignMin[T constraints.Ordered](top T) AssignMin[T] {
	return AssignMin[T]{Min[T]{Top: top}}
}

// NewAssignMax returns an AssignMax whose identities are bottom.
func NewAssignMax[T constraints.Ordered](bottom T) AssignMax[T] {
	return AssignMax[T]{Max[T]{Bottom: bottom}}
}

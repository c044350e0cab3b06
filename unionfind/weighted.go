package unionfind

import (
	datastructure "github.com/fgshun/example-data-structure"
	"github.com/fgshun/example-data-structure/monoid"
)

// Weighted is a disjoint-set forest in which every element carries a weight
// relative to the representative of its set. Uniting records the difference
// between two weights; the difference between any two elements of a set then
// follows.
type Weighted[T monoid.Number] struct {
	forest
	rank []int
	diff []T // weight relative to the parent
	path []int
}

// NewWeighted returns n singleton sets, every weight zero.
func NewWeighted[T monoid.Number](n int) (*Weighted[T], error) {
	f, err := makeForest("NewWeighted", n)
	if err != nil {
		return nil, err
	}
	return &Weighted[T]{forest: f, rank: make([]int, n), diff: make([]T, n)}, nil
}

// root compresses the path from x, rebasing each weight on the
// representative.
func (u *Weighted[T]) root(x int) int {
	u.path = u.path[:0]
	for u.parent[x] != x {
		u.path = append(u.path, x)
		x = u.parent[x]
	}
	r := x
	// The last element on the path is a child of r and already relative to it.
	for j := len(u.path) - 2; j >= 0; j-- {
		u.diff[u.path[j]] += u.diff[u.path[j+1]]
	}
	for _, y := range u.path {
		u.parent[y] = r
	}
	return r
}

// Find returns the representative of x's set.
func (u *Weighted[T]) Find(x int) (int, error) {
	if err := datastructure.CheckIndex("Find", x, u.Len()); err != nil {
		return 0, err
	}
	return u.root(x), nil
}

// Same reports whether x and y are in the same set.
func (u *Weighted[T]) Same(x, y int) (bool, error) {
	if err := u.check2("Same", x, y); err != nil {
		return false, err
	}
	return u.root(x) == u.root(y), nil
}

// Groups returns the sets, each sorted ascending, ordered by their smallest
// member.
func (u *Weighted[T]) Groups() [][]int {
	// Rebase every weight before the plain forest compresses paths.
	for i := range u.parent {
		u.root(i)
	}
	return u.forest.Groups()
}

func (u *Weighted[T]) weight(x int) T {
	u.root(x)
	return u.diff[x]
}

// Weight returns the weight of x relative to the representative of its set.
func (u *Weighted[T]) Weight(x int) (T, error) {
	if err := datastructure.CheckIndex("Weight", x, u.Len()); err != nil {
		return 0, err
	}
	return u.weight(x), nil
}

// Diff returns weight(y) - weight(x). It is meaningful only when x and y are
// in the same set.
func (u *Weighted[T]) Diff(x, y int) (T, error) {
	if err := u.check2("Diff", x, y); err != nil {
		return 0, err
	}
	return u.weight(y) - u.weight(x), nil
}

// Unite merges the sets of x and y so that weight(y) - weight(x) == w. It
// reports whether they were distinct; when they were not, nothing changes
// and w is not checked against the recorded difference.
func (u *Weighted[T]) Unite(x, y int, w T) (bool, error) {
	if err := u.check2("Unite", x, y); err != nil {
		return false, err
	}
	w += u.weight(x) - u.weight(y)
	x, y = u.root(x), u.root(y)
	if x == y {
		return false, nil
	}
	if u.rank[x] < u.rank[y] {
		x, y, w = y, x, -w
	}
	if u.rank[x] == u.rank[y] {
		u.rank[x]++
	}
	u.parent[y] = x
	u.diff[y] = w
	log.Tracef("united %d under %d with weight %v", y, x, w)
	return true, nil
}

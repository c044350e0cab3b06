// Package unionfind implements disjoint-set forests over the elements
// 0 .. n-1: united by rank (Rank), by size (Size), or carrying potential
// differences between elements (Weighted). Find compresses paths in every
// variant, so operations run in amortized near-constant time.
package unionfind

import (
	"sort"

	datastructure "github.com/fgshun/example-data-structure"
)

// forest holds the parent links shared by every variant.
type forest struct {
	parent []int
}

func makeForest(op string, n int) (forest, error) {
	if err := datastructure.CheckSize(op, n); err != nil {
		return forest{}, err
	}
	f := forest{parent: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f, nil
}

// Len returns the number of elements.
func (f *forest) Len() int { return len(f.parent) }

func (f *forest) root(x int) int {
	r := x
	for f.parent[r] != r {
		r = f.parent[r]
	}
	for f.parent[x] != r {
		f.parent[x], x = r, f.parent[x]
	}
	return r
}

// Find returns the representative of x's set.
func (f *forest) Find(x int) (int, error) {
	if err := datastructure.CheckIndex("Find", x, f.Len()); err != nil {
		return 0, err
	}
	return f.root(x), nil
}

// Same reports whether x and y are in the same set.
func (f *forest) Same(x, y int) (bool, error) {
	if err := f.check2("Same", x, y); err != nil {
		return false, err
	}
	return f.root(x) == f.root(y), nil
}

// Groups returns the sets, each sorted ascending, ordered by their smallest
// member.
func (f *forest) Groups() [][]int {
	byRoot := make(map[int][]int)
	for i := range f.parent {
		r := f.root(i)
		byRoot[r] = append(byRoot[r], i)
	}
	groups := make([][]int, 0, len(byRoot))
	for _, g := range byRoot {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

func (f *forest) check2(op string, x, y int) error {
	if err := datastructure.CheckIndex(op, x, f.Len()); err != nil {
		return err
	}
	return datastructure.CheckIndex(op, y, f.Len())
}

// Rank is a disjoint-set forest united by rank.
type Rank struct {
	forest
	rank []int
}

// NewRank returns n singleton sets.
func NewRank(n int) (*Rank, error) {
	f, err := makeForest("NewRank", n)
	if err != nil {
		return nil, err
	}
	return &Rank{forest: f, rank: make([]int, n)}, nil
}

// Unite merges the sets of x and y. It reports whether they were distinct.
func (u *Rank) Unite(x, y int) (bool, error) {
	if err := u.check2("Unite", x, y); err != nil {
		return false, err
	}
	x, y = u.root(x), u.root(y)
	if x == y {
		return false, nil
	}
	if u.rank[x] < u.rank[y] {
		x, y = y, x
	}
	u.parent[y] = x
	if u.rank[x] == u.rank[y] {
		u.rank[x]++
	}
	return true, nil
}

// Size is a disjoint-set forest united by size.
type Size struct {
	forest
	size []int
}

// NewSize returns n singleton sets.
func NewSize(n int) (*Size, error) {
	f, err := makeForest("NewSize", n)
	if err != nil {
		return nil, err
	}
	s := &Size{forest: f, size: make([]int, n)}
	for i := range s.size {
		s.size[i] = 1
	}
	return s, nil
}

// Unite merges the sets of x and y. It reports whether they were distinct.
func (u *Size) Unite(x, y int) (bool, error) {
	if err := u.check2("Unite", x, y); err != nil {
		return false, err
	}
	x, y = u.root(x), u.root(y)
	if x == y {
		return false, nil
	}
	if u.size[x] < u.size[y] {
		x, y = y, x
	}
	u.parent[y] = x
	u.size[x] += u.size[y]
	return true, nil
}

// Size returns the number of elements in x's set.
func (u *Size) Size(x int) (int, error) {
	if err := datastructure.CheckIndex("Size", x, u.Len()); err != nil {
		return 0, err
	}
	return u.size[u.root(x)], nil
}

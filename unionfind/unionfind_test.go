package unionfind

import (
	"testing"

	"github.com/stretchr/testify/require"

	datastructure "github.com/fgshun/example-data-structure"
)

// uniter is implemented by Rank and Size.
type uniter interface {
	Unite(x, y int) (bool, error)
	Same(x, y int) (bool, error)
	Groups() [][]int
}

func same(t *testing.T, u uniter, x, y int) bool {
	ok, err := u.Same(x, y)
	require.NoError(t, err)
	return ok
}

func checkUnite(t *testing.T, u uniter) {
	ok, err := u.Unite(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = u.Unite(1, 2)
	require.NoError(t, err)
	require.False(t, ok)

	require.False(t, same(t, u, 3, 5))
	require.False(t, same(t, u, 5, 8))
	require.False(t, same(t, u, 3, 8))
	_, err = u.Unite(3, 5)
	require.NoError(t, err)
	_, err = u.Unite(5, 8)
	require.NoError(t, err)
	require.True(t, same(t, u, 3, 5))
	require.True(t, same(t, u, 5, 8))
	require.True(t, same(t, u, 3, 8))

	require.Equal(t, [][]int{{0}, {1, 2}, {3, 5, 8}, {4}, {6}, {7}, {9}}, u.Groups())

	_, err = u.Unite(0, 10)
	require.ErrorIs(t, err, datastructure.ErrOutOfRange)
	_, err = u.Same(-1, 0)
	require.ErrorIs(t, err, datastructure.ErrOutOfRange)
}

func TestRank(t *testing.T) {
	u, err := NewRank(10)
	require.NoError(t, err)
	checkUnite(t, u)

	r, err := u.Find(8)
	require.NoError(t, err)
	r3, err := u.Find(3)
	require.NoError(t, err)
	require.Equal(t, r, r3)

	_, err = NewRank(-1)
	require.ErrorIs(t, err, datastructure.ErrInvalidSize)
}

func TestSize(t *testing.T) {
	u, err := NewSize(10)
	require.NoError(t, err)
	checkUnite(t, u)

	for x, want := range map[int]int{0: 1, 1: 2, 2: 2, 8: 3} {
		got, err := u.Size(x)
		require.NoError(t, err)
		require.Equalf(t, want, got, "size of %d", x)
	}
	_, err = u.Size(10)
	require.ErrorIs(t, err, datastructure.ErrOutOfRange)
}

func TestLongChain(t *testing.T) {
	const n = 1 << 16
	u, err := NewSize(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err := u.Unite(i-1, i)
		require.NoError(t, err)
	}
	size, err := u.Size(0)
	require.NoError(t, err)
	require.Equal(t, n, size)
	require.Len(t, u.Groups(), 1)
}

func TestWeighted(t *testing.T) {
	u, err := NewWeighted[int](6)
	require.NoError(t, err)

	ok, err := u.Unite(0, 1, 3) // w1 - w0 = 3
	require.NoError(t, err)
	require.True(t, ok)
	_, err = u.Unite(1, 2, 4) // w2 - w1 = 4
	require.NoError(t, err)
	_, err = u.Unite(4, 3, -2) // w3 - w4 = -2
	require.NoError(t, err)
	_, err = u.Unite(2, 4, 1) // w4 - w2 = 1
	require.NoError(t, err)

	for _, c := range []struct{ x, y, want int }{
		{0, 1, 3}, {0, 2, 7}, {1, 2, 4}, {0, 4, 8}, {0, 3, 6}, {3, 0, -6}, {2, 3, -1},
	} {
		got, err := u.Diff(c.x, c.y)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "diff(%d, %d)", c.x, c.y)
	}

	ok, err = u.Unite(0, 3, 100)
	require.NoError(t, err)
	require.False(t, ok)
	got, err := u.Diff(0, 3)
	require.NoError(t, err)
	require.Equal(t, 6, got)

	require.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5}}, u.Groups())
	got, err = u.Diff(0, 3)
	require.NoError(t, err)
	require.Equal(t, 6, got)

	r, err := u.Find(5)
	require.NoError(t, err)
	require.Equal(t, 5, r)
	w, err := u.Weight(5)
	require.NoError(t, err)
	require.Equal(t, 0, w)
	ok, err = u.Same(0, 5)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = u.Weight(6)
	require.ErrorIs(t, err, datastructure.ErrOutOfRange)
	_, err = u.Diff(0, 6)
	require.ErrorIs(t, err, datastructure.ErrOutOfRange)
}

func TestWeightedFloat(t *testing.T) {
	u, err := NewWeighted[float64](3)
	require.NoError(t, err)
	_, err = u.Unite(2, 1, 0.5)
	require.NoError(t, err)
	_, err = u.Unite(1, 0, 0.25)
	require.NoError(t, err)
	d, err := u.Diff(2, 0)
	require.NoError(t, err)
	require.Equal(t, 0.75, d)
}

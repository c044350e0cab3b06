package abstract

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/fgshun/example-data-structure/monoid"
)

func sumConfig(seed int64) *Config[int, int] {
	return MakeConfig[int, int](monoid.AddSum[int]{}, rand.New(rand.NewSource(seed)))
}

func intEq(a, b int) bool { return a == b }

func values[X any, M comparable](s *Seq[X, M]) []X {
	out := make([]X, 0, s.Len())
	it := s.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Cur())
	}
	return out
}

func TestMerge(t *testing.T) {
	cfg := sumConfig(0)

	a := cfg.NewNodeWithPriority(10, 0.5)
	b := cfg.NewNodeWithPriority(20, 0.25)
	c := cfg.Merge(a, b)

	require.NotNil(t, c)
	require.Equal(t, 2, c.Len())
	require.Equal(t, 10, c.Value())
	require.Nil(t, c.Left())
	require.NotNil(t, c.Right())
	require.Equal(t, 1, c.Right().Len())
	require.Equal(t, 20, c.Right().Value())

	d := cfg.NewNodeWithPriority(30, 0.75)
	e := cfg.Merge(c, d)

	require.Equal(t, 3, e.Len())
	require.Equal(t, 30, e.Value())
	require.NotNil(t, e.Left())
	require.Equal(t, 10, e.Left().Value())
	require.Nil(t, e.Right())
	require.Equal(t, 60, e.Acc())
}

func TestMergeEqualPriorityFavoursRight(t *testing.T) {
	cfg := sumConfig(0)
	l := cfg.NewNodeWithPriority(1, 0.5)
	r := cfg.NewNodeWithPriority(2, 0.5)
	root := cfg.Merge(l, r)
	require.Same(t, r, root)
	require.Same(t, l, root.Left())
}

func TestSplit(t *testing.T) {
	cfg := sumConfig(0)

	a := cfg.NewNodeWithPriority(10, 0.5)
	b := cfg.NewNodeWithPriority(20, 0.25)
	c := cfg.Merge(a, b)
	d := cfg.NewNodeWithPriority(30, 0.75)
	e := cfg.Merge(c, d)
	f, g := cfg.Split(e, 1)

	require.Equal(t, 1, f.Len())
	require.Equal(t, 10, f.Value())
	require.Equal(t, 10, f.Acc())
	require.Equal(t, 2, g.Len())
	require.Equal(t, 30, g.Value())
	require.Equal(t, 50, g.Acc())

	l, r := cfg.Split(nil, 0)
	require.Nil(t, l)
	require.Nil(t, r)
}

func TestSplitMergeIdentity(t *testing.T) {
	const n = 50
	for k := 0; k <= n; k++ {
		s := MakeSeq(sumConfig(int64(k)))
		for i := 0; i < n; i++ {
			s.Append(i)
		}
		s.Update(n/4, n/2, 7)
		want := values(&s)

		left, right := s.SplitAt(k)
		require.Equal(t, 0, s.Len())
		require.Equal(t, k, left.Len())
		require.Equal(t, n-k, right.Len())
		left.Concat(&right)
		require.Equal(t, 0, right.Len())
		require.Equal(t, want, values(&left), "k=%d", k)
		require.NoError(t, left.Validate(intEq))
	}
}

func TestEvalIdempotent(t *testing.T) {
	cfg := sumConfig(1)
	s := MakeSeq(cfg)
	for i := 0; i < 5; i++ {
		s.Append(i)
	}
	root := s.Root()
	cfg.Eval(root)
	root.lazy = 3

	cfg.Eval(root)
	once := *root
	var childLazies []int
	for _, c := range []*Node[int, int]{root.left, root.right} {
		if c != nil {
			childLazies = append(childLazies, c.lazy)
		}
	}

	cfg.Eval(root)
	require.Equal(t, once, *root)
	require.Equal(t, 0, root.Lazy())
	var again []int
	for _, c := range []*Node[int, int]{root.left, root.right} {
		if c != nil {
			again = append(again, c.lazy)
		}
	}
	require.Equal(t, childLazies, again)
	require.Equal(t, 10+3*5, root.Acc())
}

func TestSumScenario(t *testing.T) {
	s := MakeSeq(sumConfig(2))
	for i := 0; i < 10; i++ {
		s.Append(0)
	}
	s.Update(0, 3, 1)
	s.Update(1, 2, 2)
	s.Update(2, 4, 4)
	require.Equal(t, []int{1, 3, 5, 4, 0, 0, 0, 0, 0, 0}, values(&s))
	require.Equal(t, 13, s.Query(0, 4))
	require.Equal(t, 8, s.Query(1, 3))
	require.Equal(t, 0, s.Query(5, 5))
	require.NoError(t, s.Validate(intEq))
}

func TestAtAfterDeepUpdate(t *testing.T) {
	s := MakeSeq(sumConfig(3))
	const n = 200
	for i := 0; i < n; i++ {
		s.Append(i)
	}
	s.Update(0, n, 1)
	s.Update(10, 20, 100)
	for i := 0; i < n; i++ {
		want := i + 1
		if i >= 10 && i < 20 {
			want += 100
		}
		require.Equal(t, want, s.At(i), "position %d", i)
	}
}

func TestSetAt(t *testing.T) {
	s := MakeSeq(sumConfig(4))
	for i := 0; i < 10; i++ {
		s.Append(i)
	}
	s.Update(0, 10, 10)
	s.SetAt(3, 0)
	require.Equal(t, 0, s.At(3))
	require.Equal(t, 45+100-13, s.Query(0, 10))
	require.NoError(t, s.Validate(intEq))
}

func TestCopyIsIndependent(t *testing.T) {
	s := MakeSeq(sumConfig(5))
	for i := 0; i < 10; i++ {
		s.Append(i)
	}
	s.Update(2, 6, 1)
	c := s.Copy(1, 4)
	require.Equal(t, []int{1, 3, 4}, values(&c))
	require.Equal(t, 10, s.Len())

	s.Update(0, 10, 100)
	c.Update(0, 3, -1)
	require.Equal(t, []int{0, 2, 3}, values(&c))
	require.Equal(t, 101, s.At(1))
	require.NoError(t, s.Validate(intEq))
	require.NoError(t, c.Validate(intEq))
}

func TestReplaceAndErase(t *testing.T) {
	s := MakeSeq(sumConfig(6))
	for i := 0; i < 6; i++ {
		s.Append(i)
	}
	s.Replace(1, 3, []int{10, 11, 12})
	require.Equal(t, []int{0, 10, 11, 12, 3, 4, 5}, values(&s))
	s.Erase(2, 5)
	require.Equal(t, []int{0, 10, 4, 5}, values(&s))
	s.Replace(0, 4, nil)
	require.Equal(t, 0, s.Len())
}

func TestNonCommutativeOrder(t *testing.T) {
	concat := monoid.LazyFuncs[string, struct{}]{
		FX: func(a, b string) string { return a + b },
		FA: func(x string, _ struct{}) string { return x },
		FM: func(_, _ struct{}) struct{} { return struct{}{} },
		FP: func(m struct{}, _ int) struct{} { return m },
		EX: func() string { return "" },
		EM: func() struct{} { return struct{}{} },
	}
	cfg := MakeConfig[string, struct{}](concat, rand.New(rand.NewSource(7)))
	s := MakeSeq(cfg)
	letters := "abcdefghijklmnopqrstuvwxyz"
	for _, r := range letters {
		s.Append(string(r))
	}
	require.Equal(t, letters, s.Root().Acc())
	require.Equal(t, "defg", s.Query(3, 7))
	require.NoError(t, s.Validate(func(a, b string) bool { return a == b }))
}

func TestString(t *testing.T) {
	cfg := sumConfig(0)
	s := MakeSeq(cfg)
	require.Equal(t, ";", s.String())
	s.InsertNode(0, cfg.NewNodeWithPriority(2, 0.9))
	s.InsertNode(0, cfg.NewNodeWithPriority(1, 0.1))
	s.InsertNode(2, cfg.NewNodeWithPriority(3, 0.2))
	require.Equal(t, "(1)2(3)", s.String())
}

func TestValidateDetectsCorruption(t *testing.T) {
	s := MakeSeq(sumConfig(8))
	for i := 0; i < 10; i++ {
		s.Append(i)
	}
	s.Root().acc = -1
	err := s.Validate(intEq)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "aggregate"), err.Error())
}

func TestIterator(t *testing.T) {
	s := MakeSeq(sumConfig(9))
	it := s.MakeIter()
	it.First()
	require.False(t, it.Valid())

	const n = 300
	for i := 0; i < n; i++ {
		s.Append(i)
	}
	s.Update(100, 200, n)

	want := func(i int) int {
		if i >= 100 && i < 200 {
			return i + n
		}
		return i
	}

	it = s.MakeIter()
	var got int
	for it.First(); it.Valid(); it.Next() {
		require.Equal(t, got, it.Index())
		require.Equal(t, want(got), it.Cur())
		got++
	}
	require.Equal(t, n, got)

	for it.Last(); it.Valid(); it.Prev() {
		got--
		require.Equal(t, got, it.Index())
		require.Equal(t, want(got), it.Cur())
	}
	require.Equal(t, 0, got)

	for _, idx := range rand.New(rand.NewSource(1)).Perm(n) {
		it.SeekIndex(idx)
		require.True(t, it.Valid())
		require.Equal(t, want(idx), it.Cur())
		it.Next()
		if idx+1 < n {
			require.Equal(t, want(idx+1), it.Cur())
		} else {
			require.False(t, it.Valid())
		}
	}
	it.SeekIndex(n)
	require.False(t, it.Valid())
}

func TestIterStackOverflow(t *testing.T) {
	var is iterStack[int, int]
	cfg := sumConfig(0)
	nodes := make([]*Node[int, int], 2*staticDepth+3)
	for i := range nodes {
		nodes[i] = cfg.NewNodeWithPriority(i, 0)
		is.push(nodes[i])
	}
	require.Equal(t, len(nodes), is.len())
	for i := len(nodes) - 1; i >= 0; i-- {
		require.Same(t, nodes[i], is.pop())
	}
	require.Nil(t, is.pop())
	is.reset()
	require.Equal(t, 0, is.len())
}

// TestAgainstSlice runs random operations on a Seq and on a plain slice and
// compares them after each step.
func TestAgainstSlice(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := MakeSeq(sumConfig(seed))
		var ref []int
		for op := 0; op < 300; op++ {
			switch k := rng.Intn(6); {
			case k == 0 || len(ref) == 0:
				i := rng.Intn(len(ref) + 1)
				v := rng.Intn(100)
				s.Insert(i, v)
				ref = append(ref[:i], append([]int{v}, ref[i:]...)...)
			case k == 1:
				i := rng.Intn(len(ref))
				s.Erase(i, i+1)
				ref = append(ref[:i], ref[i+1:]...)
			case k == 2:
				l := rng.Intn(len(ref) + 1)
				r := l + rng.Intn(len(ref)-l+1)
				v := rng.Intn(21) - 10
				s.Update(l, r, v)
				for j := l; j < r; j++ {
					ref[j] += v
				}
			case k == 3:
				i := rng.Intn(len(ref))
				require.Equal(t, ref[i], s.At(i))
			default:
				l := rng.Intn(len(ref) + 1)
				r := l + rng.Intn(len(ref)-l+1)
				var want int
				for _, v := range ref[l:r] {
					want += v
				}
				if got := s.Query(l, r); got != want {
					t.Fatalf("seed %d op %d: Query(%d, %d) = %d, want %d\n%s",
						seed, op, l, r, got, want, spew.Sdump(ref))
				}
			}
			require.Equal(t, len(ref), s.Len())
		}
		require.Equal(t, ref, values(&s))
		require.NoError(t, s.Validate(intEq))
	}
}

func TestNodePoolReuse(t *testing.T) {
	cfg := sumConfig(10)
	s := MakeSeq(cfg)
	for i := 0; i < 100; i++ {
		s.Append(i)
	}
	s.Update(0, 100, 5)
	s.Reset()
	require.Equal(t, 0, s.Len())

	// Whatever the pool hands back must start from a clean slate.
	for i := 0; i < 100; i++ {
		s.Append(1)
	}
	require.Equal(t, 100, s.Query(0, 100))
	require.NoError(t, s.Validate(intEq))
}

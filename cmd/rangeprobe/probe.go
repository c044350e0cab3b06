package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/davecgh/go-spew/spew"

	"github.com/fgshun/example-data-structure/fenwick"
	"github.com/fgshun/example-data-structure/lazysegtree"
	"github.com/fgshun/example-data-structure/monoid"
	"github.com/fgshun/example-data-structure/segtree"
	"github.com/fgshun/example-data-structure/sparsetable"
	"github.com/fgshun/example-data-structure/treap"
)

// probeMonoids lists the monoids selectable with --monoid.
var probeMonoids = map[string]func() monoid.Lazy[int, int]{
	"addsum":    func() monoid.Lazy[int, int] { return monoid.AddSum[int]{} },
	"addmin":    func() monoid.Lazy[int, int] { return monoid.NewAddMin(math.MaxInt) },
	"addmax":    func() monoid.Lazy[int, int] { return monoid.NewAddMax(math.MinInt) },
	"assignmin": func() monoid.Lazy[int, int] { return monoid.NewAssignMin(math.MaxInt) },
	"assignmax": func() monoid.Lazy[int, int] { return monoid.NewAssignMax(math.MinInt) },
}

const valueRange = 1000

// report counts what a probe run did.
type report struct {
	Updates  int
	Queries  int
	Gets     int
	Sets     int
	Slices   int
	Splits   int
	Validate int
	Snapshot int
	Height   int
}

// prober drives a treap, a lazy segment tree and a plain slice with the same
// operations and reports the first disagreement.
type prober struct {
	rng *rand.Rand
	ops monoid.Lazy[int, int]

	tr  *treap.Treap[int, int]
	seg *lazysegtree.Tree[int, int]
	ref []int

	rep report
}

func newProber(cfg *config) *prober {
	ops := probeMonoids[cfg.Monoid]()
	rng := rand.New(rand.NewSource(cfg.Seed))
	values := make([]int, cfg.Size)
	for i := range values {
		values[i] = rng.Intn(valueRange)
	}
	// The treap draws priorities from its own source so that the shape of the
	// tree does not depend on the order of workload draws.
	prio := rand.New(rand.NewSource(cfg.Seed + 1))
	return &prober{
		rng: rng,
		ops: ops,
		tr:  treap.NewFromSlice[int, int](ops, values, treap.WithRand(prio)),
		seg: lazysegtree.New[int, int](ops, values),
		ref: append([]int(nil), values...),
	}
}

func (p *prober) span() (start, end int) {
	n := len(p.ref)
	start = p.rng.Intn(n + 1)
	end = start + p.rng.Intn(n-start+1)
	return start, end
}

func (p *prober) fold(start, end int) int {
	return monoid.Fold(monoid.Monoid[int](p.ops), p.ref[start:end]...)
}

func mismatch(op string, args []int, structure string, got, want int) error {
	return fmt.Errorf("%s%v: %s returned %d, reference %d", op, args, structure, got, want)
}

// step runs one random operation.
func (p *prober) step() error {
	n := len(p.ref)
	switch p.rng.Intn(6) {
	case 0:
		start, end := p.span()
		m := p.rng.Intn(2*valueRange) - valueRange
		if err := p.tr.Update(start, end, m); err != nil {
			return err
		}
		if err := p.seg.Update(start, end, m); err != nil {
			return err
		}
		for i := start; i < end; i++ {
			p.ref[i] = p.ops.Apply(p.ref[i], p.ops.Scale(m, 1))
		}
		p.rep.Updates++

	case 1:
		start, end := p.span()
		want := p.fold(start, end)
		got, err := p.tr.Query(start, end)
		if err != nil {
			return err
		}
		if got != want {
			return mismatch("Query", []int{start, end}, "treap", got, want)
		}
		got, err = p.seg.Query(start, end)
		if err != nil {
			return err
		}
		if got != want {
			return mismatch("Query", []int{start, end}, "lazy segment tree", got, want)
		}
		p.rep.Queries++

	case 2:
		if n == 0 {
			return nil
		}
		i := p.rng.Intn(n)
		got, err := p.tr.Get(i)
		if err != nil {
			return err
		}
		if got != p.ref[i] {
			return mismatch("Get", []int{i}, "treap", got, p.ref[i])
		}
		got, err = p.seg.Get(i)
		if err != nil {
			return err
		}
		if got != p.ref[i] {
			return mismatch("Get", []int{i}, "lazy segment tree", got, p.ref[i])
		}
		p.rep.Gets++

	case 3:
		if n == 0 {
			return nil
		}
		i, x := p.rng.Intn(n), p.rng.Intn(valueRange)
		if err := p.tr.Set(i, x); err != nil {
			return err
		}
		if err := p.seg.Set(i, x); err != nil {
			return err
		}
		p.ref[i] = x
		p.rep.Sets++

	case 4:
		start, end := p.span()
		step := 1 + p.rng.Intn(3)
		sub, err := p.tr.Slice(start, end, step)
		if err != nil {
			return err
		}
		k := 0
		var serr error
		sub.ForEach(func(x int) bool {
			if want := p.ref[start+k*step]; x != want {
				serr = mismatch("Slice", []int{start, end, step, k}, "treap", x, want)
				return false
			}
			k++
			return true
		})
		if serr != nil {
			return serr
		}
		p.rep.Slices++

	default:
		i := p.rng.Intn(n + 1)
		left, right, err := p.tr.Split(i)
		if err != nil {
			return err
		}
		if left.Len() != i || right.Len() != n-i {
			return fmt.Errorf("Split[%d]: lengths %d and %d", i, left.Len(), right.Len())
		}
		p.tr = left.Merge(right)
		p.rep.Splits++
	}
	return nil
}

// snapshot cross-checks the final values against the structures that cannot
// follow range updates, each built from the reference.
func (p *prober) snapshot(name string, checks int) error {
	seg := segtree.New[int](p.ref, p.ops)
	var sum *fenwick.Sum[int]
	if name == "addsum" {
		sum = fenwick.NewSumFromSlice(p.ref)
	}
	var table *sparsetable.Table[int]
	if name != "addsum" {
		table = sparsetable.New(p.ref, p.ops.Combine)
	}

	for c := 0; c < checks; c++ {
		start, end := p.span()
		want, err := p.tr.Query(start, end)
		if err != nil {
			return err
		}
		got, err := seg.Query(start, end)
		if err != nil {
			return err
		}
		if got != want {
			return mismatch("Snapshot", []int{start, end}, "segment tree", got, want)
		}
		if sum != nil {
			got, err := sum.Range(start, end)
			if err != nil {
				return err
			}
			if got != want {
				return mismatch("Snapshot", []int{start, end}, "fenwick sum", got, want)
			}
		}
		if table != nil && start < end {
			got, err := table.Query(start, end)
			if err != nil {
				return err
			}
			if got != want {
				return mismatch("Snapshot", []int{start, end}, "sparse table", got, want)
			}
		}
		p.rep.Snapshot++
	}
	return nil
}

// runProbe executes the workload described by cfg.
func runProbe(cfg *config) (*report, error) {
	p := newProber(cfg)
	log.Infof("Probing %d elements with %d operations under %s (seed %d)",
		cfg.Size, cfg.Ops, cfg.Monoid, cfg.Seed)

	for i := 0; i < cfg.Ops; i++ {
		if err := p.step(); err != nil {
			log.Errorf("Operation %d failed: %v", i, err)
			log.Debugf("Reference: %v", newLogClosure(func() string {
				return spew.Sdump(p.ref)
			}))
			return &p.rep, err
		}
		if cfg.CheckEvery > 0 && (i+1)%cfg.CheckEvery == 0 {
			if err := p.tr.Validate(func(a, b int) bool { return a == b }); err != nil {
				log.Errorf("Validation after operation %d failed: %v", i, err)
				return &p.rep, err
			}
			p.rep.Validate++
			log.Debugf("Validated after %d operations, height %d", i+1, p.tr.Height())
		}
	}

	if err := p.snapshot(cfg.Monoid, cfg.Size); err != nil {
		log.Errorf("Snapshot check failed: %v", err)
		return &p.rep, err
	}
	p.rep.Height = p.tr.Height()
	log.Infof("Probe finished: %d updates, %d queries, %d snapshot checks, "+
		"treap height %d", p.rep.Updates, p.rep.Queries, p.rep.Snapshot, p.rep.Height)
	return &p.rep, nil
}

// logClosure is used to provide a closure over expensive logging operations so
// they are not performed when the logging level doesn't warrant it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// newLogClosure returns a new closure over a function that returns a string
// which itself provides a Stringer interface so that it can be used with the
// logging system.
func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}

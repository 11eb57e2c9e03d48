// Package bench validates the range index against a brute-force linear
// scan over randomized interval collections, timing both sides.
package bench

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/rangemap"
)

// Config controls a harness run.
type Config struct {
	Cases    int   // number of random interval collections
	MaxValue int64 // interval coordinates drawn from [0, MaxValue)
	Workers  int   // parallel case runners; 0 means runtime.NumCPU()
	Seed     int64 // RNG seed; 0 means time-based

	Logger *zap.Logger
}

// Report summarizes a harness run.
type Report struct {
	Cases      int
	Probes     int
	Mismatches int
	IndexTime  time.Duration // total time in Query
	ScanTime   time.Duration // total time in the linear reference
}

// Generate draws n random intervals with coordinates in [0, maxV).
// Ends never precede starts; degenerate intervals are possible and
// deliberate, since the index must drop them.
func Generate(rng *rand.Rand, n int, maxV int64) (starts, ends []int64) {
	starts = make([]int64, n)
	ends = make([]int64, n)
	for i := 0; i < n; i++ {
		a := rng.Int63n(maxV)
		starts[i] = a
		ends[i] = a + rng.Int63n(maxV-a)
	}
	return starts, ends
}

// Scan is the brute-force reference: ids of all intervals with
// starts[i] <= p < ends[i], ascending.
func Scan(p int64, starts, ends []int64) []int {
	var ids []int
	for i := range starts {
		if starts[i] <= p && p < ends[i] {
			ids = append(ids, i)
		}
	}
	return ids
}

// runCase builds an index from one random collection and probes the domain
// extremes plus every point in [lo-1, hi+1], comparing against Scan.
func runCase(rng *rand.Rand, maxV int64, logger *zap.Logger) (Report, error) {
	n := rng.Intn(99) + 1
	starts, ends := Generate(rng, n, maxV)

	m := rangemap.New[int64](rangemap.Int64Bounds{})
	m.Build(starts, ends)
	if err := m.CheckInvariants(); err != nil {
		return Report{}, fmt.Errorf("invariant check: %w", err)
	}

	lo, hi := starts[0], ends[0]
	for i := 1; i < n; i++ {
		lo = min(lo, starts[i])
		hi = max(hi, ends[i])
	}

	probes := []int64{math.MinInt64, math.MaxInt64}
	for p := lo - 1; p <= hi+1; p++ {
		probes = append(probes, p)
	}

	var rep Report
	rep.Cases = 1
	for _, p := range probes {
		t0 := time.Now()
		got := m.Query(p)
		rep.IndexTime += time.Since(t0)

		t0 = time.Now()
		want := Scan(p, starts, ends)
		rep.ScanTime += time.Since(t0)

		rep.Probes++
		if !slices.Equal(got, want) {
			rep.Mismatches++
			logger.Warn("query mismatch",
				zap.Int64("point", p),
				zap.Ints("index", got),
				zap.Ints("scan", want))
		}
	}
	return rep, nil
}

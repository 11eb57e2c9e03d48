package rangemap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scan is the brute-force reference: ids of all intervals with
// starts[i] <= p < ends[i].
func scan(p int64, starts, ends []int64) []int {
	var ids []int
	for i := range starts {
		if starts[i] <= p && p < ends[i] {
			ids = append(ids, i)
		}
	}
	return ids
}

func TestMap_NeverBuilt(t *testing.T) {
	m := New[int64](Int64Bounds{})
	assert.Empty(t, m.Query(0))
	assert.Empty(t, m.Query(math.MinInt64))
	assert.Empty(t, m.Query(math.MaxInt64))
	assert.Equal(t, 0, m.Len())
}

func TestMap_ZeroIntervals(t *testing.T) {
	m := New[int64](Int64Bounds{})
	m.Build(nil, nil)
	require.NoError(t, m.CheckInvariants())
	assert.Empty(t, m.Query(42))
	assert.NotZero(t, m.Len(), "built index has a breakpoint table")
}

func TestMap_Overlapping(t *testing.T) {
	m := New[int64](Int64Bounds{})
	m.Build([]int64{0, 5}, []int64{10, 15})
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, []int{0, 1}, m.Query(7))
	assert.Equal(t, []int{1}, m.Query(12))
	assert.Empty(t, m.Query(20))
	assert.Empty(t, m.Query(-5))
}

func TestMap_HalfOpenBoundaries(t *testing.T) {
	// Adjacent intervals sharing coordinate 5: an interval ending at 5 no
	// longer covers it, one starting at 5 does.
	m := New[int64](Int64Bounds{})
	m.Build([]int64{0, 5}, []int64{5, 10})
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, []int{0}, m.Query(0), "start boundary inclusive")
	assert.Equal(t, []int{0}, m.Query(4))
	assert.Equal(t, []int{1}, m.Query(5), "shared coordinate belongs to the opener")
	assert.Equal(t, []int{1}, m.Query(9))
	assert.Empty(t, m.Query(10), "end boundary exclusive")
}

func TestMap_DegenerateFiltered(t *testing.T) {
	m := New[int64](Int64Bounds{})
	m.Build([]int64{0, 3, 3}, []int64{10, 3, 7})
	require.NoError(t, m.CheckInvariants())

	for p := int64(-1); p <= 11; p++ {
		for _, id := range m.Query(p) {
			assert.NotEqual(t, 1, id, "degenerate interval reported at p=%d", p)
		}
	}
	assert.Equal(t, []int{0, 2}, m.Query(3), "ids keep their input positions")
}

func TestMap_DuplicateIntervals(t *testing.T) {
	m := New[int64](Int64Bounds{})
	m.Build([]int64{1, 1}, []int64{5, 5})
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, []int{0, 1}, m.Query(3))
	assert.Empty(t, m.Query(5))
	assert.Empty(t, m.Query(0))
}

func TestMap_MismatchedLengths(t *testing.T) {
	// Count is min(len(starts), len(ends)); the extra start is ignored.
	m := New[int64](Int64Bounds{})
	m.Build([]int64{0, 100}, []int64{10})
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, []int{0}, m.Query(5))
	assert.Empty(t, m.Query(100))
}

func TestMap_SentinelProbes(t *testing.T) {
	m := New[int64](Int64Bounds{})
	m.Build([]int64{10}, []int64{20})
	require.NoError(t, m.CheckInvariants())

	assert.Empty(t, m.Query(math.MinInt64))
	assert.Empty(t, m.Query(math.MaxInt64))

	// An interval starting at the domain minimum covers it.
	m.Build([]int64{math.MinInt64}, []int64{0})
	require.NoError(t, m.CheckInvariants())
	assert.Equal(t, []int{0}, m.Query(math.MinInt64))
	assert.Empty(t, m.Query(0))
}

func TestMap_RebuildReplacesState(t *testing.T) {
	m := New[int64](Int64Bounds{})
	m.Build([]int64{0}, []int64{10})
	assert.Equal(t, []int{0}, m.Query(5))

	m.Build([]int64{100}, []int64{200})
	require.NoError(t, m.CheckInvariants())
	assert.Empty(t, m.Query(5), "old intervals discarded")
	assert.Equal(t, []int{0}, m.Query(150))

	// Rebuilding with zero intervals empties the index too.
	m.Build(nil, nil)
	assert.Empty(t, m.Query(150))
}

func TestMap_Idempotent(t *testing.T) {
	starts := []int64{0, 5, 5, 12}
	ends := []int64{10, 15, 5, 30}

	a := New[int64](Int64Bounds{})
	a.Build(starts, ends)
	b := New[int64](Int64Bounds{})
	b.Build(starts, ends)
	b.Build(starts, ends)

	for p := int64(-2); p <= 32; p++ {
		assert.Equal(t, a.Query(p), b.Query(p), "p=%d", p)
	}
}

func TestMap_Minimality(t *testing.T) {
	// CheckInvariants rejects consecutive set-equal snapshots; exercise it
	// on inputs that tempt redundant breakpoints: shared endpoints,
	// duplicates, nesting, and a gap.
	cases := [][2][]int64{
		{{0, 5}, {5, 10}},
		{{1, 1, 1}, {5, 5, 5}},
		{{0, 2, 4}, {10, 8, 6}},
		{{0, 20}, {10, 30}},
	}
	for _, c := range cases {
		m := New[int64](Int64Bounds{})
		m.Build(c[0], c[1])
		assert.NoError(t, m.CheckInvariants(), "starts=%v ends=%v", c[0], c[1])
	}
}

func TestMap_Float64Infinities(t *testing.T) {
	m := New[float64](Float64Bounds{})
	m.Build([]float64{0.5, 2.5}, []float64{2.5, 7.25})
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, []int{0}, m.Query(1.0))
	assert.Equal(t, []int{1}, m.Query(2.5))
	assert.Empty(t, m.Query(math.Inf(1)))
	assert.Empty(t, m.Query(math.Inf(-1)))

	// An interval open on the whole real line covers the -inf sentinel.
	m.Build([]float64{math.Inf(-1)}, []float64{math.Inf(1)})
	require.NoError(t, m.CheckInvariants())
	assert.Equal(t, []int{0}, m.Query(math.Inf(-1)))
	assert.Equal(t, []int{0}, m.Query(12345.6))
	assert.Empty(t, m.Query(math.Inf(1)))
}

func TestMap_StringDomain(t *testing.T) {
	m := New[string](MinMax[string]{Lo: "", Hi: "~"})
	m.Build([]string{"apple", "banana"}, []string{"cherry", "fig"})
	require.NoError(t, m.CheckInvariants())

	assert.Equal(t, []int{0}, m.Query("apricot"))
	assert.Equal(t, []int{0, 1}, m.Query("banana"))
	assert.Equal(t, []int{1}, m.Query("cherry"))
	assert.Empty(t, m.Query("grape"))
}

func TestMap_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for k := 0; k < 200; k++ {
		n := rng.Intn(99) + 1
		starts := make([]int64, n)
		ends := make([]int64, n)
		for i := range starts {
			a := rng.Int63n(1000)
			starts[i] = a
			ends[i] = a + rng.Int63n(1000-a)
		}

		m := New[int64](Int64Bounds{})
		m.Build(starts, ends)
		require.NoError(t, m.CheckInvariants())

		for p := int64(-1); p <= 1001; p++ {
			assert.Equal(t, scan(p, starts, ends), m.Query(p), "case=%d p=%d", k, p)
		}
		assert.Equal(t, scan(math.MinInt64, starts, ends), m.Query(math.MinInt64))
		assert.Equal(t, scan(math.MaxInt64, starts, ends), m.Query(math.MaxInt64))
	}
}

func BenchmarkBuild(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	const n = 10000
	starts := make([]int64, n)
	ends := make([]int64, n)
	for i := range starts {
		a := rng.Int63n(1 << 20)
		starts[i] = a
		ends[i] = a + 1 + rng.Int63n(1<<12)
	}
	m := New[int64](Int64Bounds{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Build(starts, ends)
	}
}

func BenchmarkQuery(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	const n = 10000
	starts := make([]int64, n)
	ends := make([]int64, n)
	for i := range starts {
		a := rng.Int63n(1 << 20)
		starts[i] = a
		ends[i] = a + 1 + rng.Int63n(1<<12)
	}
	m := New[int64](Int64Bounds{})
	m.Build(starts, ends)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Query(int64(i) % (1 << 20))
	}
}

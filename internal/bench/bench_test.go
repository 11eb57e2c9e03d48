package bench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	starts, ends := Generate(rng, 50, 1000)

	require.Len(t, starts, 50)
	require.Len(t, ends, 50)
	for i := range starts {
		assert.GreaterOrEqual(t, starts[i], int64(0))
		assert.Less(t, starts[i], int64(1000))
		assert.GreaterOrEqual(t, ends[i], starts[i])
		assert.Less(t, ends[i], int64(1000))
	}
}

func TestScan(t *testing.T) {
	starts := []int64{0, 5, 5}
	ends := []int64{10, 15, 5}

	assert.Equal(t, []int{0, 1}, Scan(7, starts, ends))
	assert.Equal(t, []int{1}, Scan(12, starts, ends))
	assert.Empty(t, Scan(20, starts, ends))
	assert.Empty(t, Scan(5, []int64{0}, []int64{5}))
}

func TestRun(t *testing.T) {
	rep, err := Run(Config{Cases: 25, MaxValue: 500, Seed: 11})
	require.NoError(t, err)
	assert.Equal(t, 25, rep.Cases)
	assert.Zero(t, rep.Mismatches)
	assert.Positive(t, rep.Probes)
}

func TestRun_Parallel(t *testing.T) {
	rep, err := Run(Config{Cases: 40, MaxValue: 500, Seed: 13, Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, 40, rep.Cases)
	assert.Zero(t, rep.Mismatches)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(Config{Cases: 10, MaxValue: 300, Seed: 5})
	require.NoError(t, err)
	b, err := Run(Config{Cases: 10, MaxValue: 300, Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, a.Probes, b.Probes, "same seed, same probe count")
}

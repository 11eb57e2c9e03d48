package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// caseResult carries one case's report back from a worker.
type caseResult struct {
	rep Report
	err error
}

// Run executes cfg.Cases randomized cases on a pool of workers and merges
// their reports. Each case owns its index, so cases are independent; only
// the aggregated report crosses goroutines.
func Run(cfg Config) (Report, error) {
	if cfg.Cases <= 0 {
		cfg.Cases = 1
	}
	if cfg.MaxValue <= 1 {
		cfg.MaxValue = 1000
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seeds := make(chan int64, cfg.Cases)
	for i := 0; i < cfg.Cases; i++ {
		seeds <- cfg.Seed + int64(i)
	}
	close(seeds)

	results := make(chan caseResult, 2*cfg.Workers)

	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go func() {
			defer wg.Done()
			for seed := range seeds {
				rng := rand.New(rand.NewSource(seed))
				rep, err := runCase(rng, cfg.MaxValue, logger)
				results <- caseResult{rep: rep, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var total Report
	var firstErr error
	for r := range results {
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		total.Cases += r.rep.Cases
		total.Probes += r.rep.Probes
		total.Mismatches += r.rep.Mismatches
		total.IndexTime += r.rep.IndexTime
		total.ScanTime += r.rep.ScanTime
	}
	if firstErr != nil {
		return total, firstErr
	}
	if total.Mismatches > 0 {
		return total, fmt.Errorf("%d of %d probes mismatched the linear scan", total.Mismatches, total.Probes)
	}

	logger.Info("bench complete",
		zap.Int("cases", total.Cases),
		zap.Int("probes", total.Probes),
		zap.Duration("index_time", total.IndexTime),
		zap.Duration("scan_time", total.ScanTime))

	return total, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/rangemap/internal/bench"
)

func newBenchCmd() *cobra.Command {
	var (
		cases    int
		maxValue int64
		workers  int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Validate and time the index against a linear scan",
		Long: `Run randomized interval collections through the index and a
brute-force linear scan, comparing every probe and accumulating
timings for both sides. Exits non-zero on any mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			rep, err := bench.Run(bench.Config{
				Cases:    cases,
				MaxValue: maxValue,
				Workers:  workers,
				Seed:     seed,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cases:    %d\n", rep.Cases)
			fmt.Fprintf(out, "Probes:   %d\n", rep.Probes)
			fmt.Fprintf(out, "Result:   PASS\n")
			fmt.Fprintf(out, "Time Elapsed:\n")
			fmt.Fprintf(out, "\tLinear Scan: %s\n", rep.ScanTime)
			fmt.Fprintf(out, "\tIndex:       %s\n", rep.IndexTime)
			return nil
		},
	}

	cmd.Flags().IntVar(&cases, "cases", viper.GetInt("bench.cases"), "Number of random cases")
	cmd.Flags().Int64Var(&maxValue, "max-value", viper.GetInt64("bench.max_value"), "Coordinate upper bound")
	cmd.Flags().IntVar(&workers, "workers", viper.GetInt("bench.workers"), "Parallel case runners (0 = NumCPU)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/rangemap/internal/source"
)

func newLoadCmd() *cobra.Command {
	var (
		dbPath  string
		setName string
	)

	cmd := &cobra.Command{
		Use:   "load --set <name> <intervals.tsv>",
		Short: "Import a TSV interval file into the DuckDB store",
		Example: `  rangemap load --db intervals.duckdb --set grch38 exons.tsv.gz
  rangemap query --db intervals.duckdb --set grch38 --points 1500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if setName == "" {
				return fmt.Errorf("--set is required")
			}
			if dbPath == "" {
				return fmt.Errorf("--db is required (or set store.path in config)")
			}

			ivs, err := source.LoadTSV(args[0])
			if err != nil {
				return err
			}

			s, err := source.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.WriteIntervals(setName, ivs); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d intervals into set %q (%s)\n", len(ivs), setName, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", viper.GetString("store.path"), "DuckDB store path")
	cmd.Flags().StringVar(&setName, "set", "", "Interval set name in the store")

	return cmd
}

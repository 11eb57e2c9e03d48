package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/rangemap"
	"github.com/inodb/rangemap/internal/source"
)

func newQueryCmd() *cobra.Command {
	var (
		points  []int64
		dbPath  string
		setName string
	)

	cmd := &cobra.Command{
		Use:   "query [flags] [intervals.tsv]",
		Short: "Answer stabbing queries against an interval collection",
		Long: `Load intervals from a TSV file (name<TAB>start<TAB>end) or from a
named set in the DuckDB store, build the index once, and report the
intervals containing each query point.`,
		Example: `  rangemap query --points 7,12,20 intervals.tsv
  rangemap query --db intervals.duckdb --set grch38 --points 1500`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(points) == 0 {
				return fmt.Errorf("at least one --points value is required")
			}

			ivs, err := loadIntervals(args, dbPath, setName)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			m := rangemap.New[int64](rangemap.Int64Bounds{})
			starts, ends := source.Split(ivs)
			m.Build(starts, ends)
			logger.Debug("index built",
				zap.Int("intervals", len(ivs)),
				zap.Int("breakpoints", m.Len()))

			out := cmd.OutOrStdout()
			for _, p := range points {
				fmt.Fprintf(out, "%d\t%s\n", p, formatHits(m.Query(p), ivs))
			}
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&points, "points", nil, "Query points (comma-separated)")
	cmd.Flags().StringVar(&dbPath, "db", viper.GetString("store.path"), "DuckDB store path")
	cmd.Flags().StringVar(&setName, "set", "", "Interval set name in the store")

	return cmd
}

// loadIntervals resolves the interval collection from either a TSV file
// argument or a store set, but not both.
func loadIntervals(args []string, dbPath, setName string) ([]source.Interval, error) {
	switch {
	case len(args) == 1 && setName != "":
		return nil, fmt.Errorf("pass either a TSV file or --set, not both")
	case len(args) == 1:
		return source.LoadTSV(args[0])
	case setName != "":
		if dbPath == "" {
			return nil, fmt.Errorf("--set requires --db (or store.path in config)")
		}
		s, err := source.OpenStore(dbPath)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.LoadIntervals(setName)
	default:
		return nil, fmt.Errorf("an interval TSV file or --set is required")
	}
}

// formatHits renders a query result as comma-separated "id:name" pairs,
// or "-" when nothing covers the point.
func formatHits(ids []int, ivs []source.Interval) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		if name := ivs[id].Name; name != "" {
			parts[i] = strconv.Itoa(id) + ":" + name
		} else {
			parts[i] = strconv.Itoa(id)
		}
	}
	return strings.Join(parts, ",")
}

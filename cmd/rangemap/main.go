// Package main provides the rangemap command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	initConfig()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rangemap",
		Short: "Stabbing queries over half-open intervals",
		Long: `rangemap builds a breakpoint index over a collection of half-open
intervals [start, end) and answers point queries against it: which
intervals contain a given point.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	root.AddCommand(newQueryCmd())
	root.AddCommand(newLoadCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.rangemap.yaml and registers defaults. A missing
// config file is fine; defaults apply.
func initConfig() {
	viper.SetConfigName(".rangemap")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetDefault("bench.cases", 333)
	viper.SetDefault("bench.max_value", 1000)
	viper.SetDefault("bench.workers", 0)
	viper.SetDefault("store.path", "")

	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger: human-readable debug output when
// verbose, silent otherwise.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hometap/smartfacts-dashboard/internal/aggregation"
	"github.com/hometap/smartfacts-dashboard/internal/extraction"
	"github.com/hometap/smartfacts-dashboard/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate counts for the current sources",
	RunE:  runStats,
}

var (
	statsConfigFile string
	statsCodebase   string
)

func init() {
	statsCmd.Flags().StringVarP(&statsConfigFile, "config", "c", "", "Path to YAML config file")
	statsCmd.Flags().StringVar(&statsCodebase, "codebase", "", "Codebase root containing the smart_facts sources (overrides CODEBASE_PATH)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(statsConfigFile)
	if err != nil {
		return err
	}
	if statsCodebase != "" {
		cfg.Codebase = statsCodebase
	}

	logger, err := observability.NewLogger(false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	root, err := extraction.ResolveCodebaseRoot(cfg.Codebase)
	if err != nil {
		return err
	}
	sources, err := extraction.LoadSources(root)
	if err != nil {
		return err
	}

	insights := extraction.New(logger).Extract(sources.Definitions, sources.DisplayTemplates)
	counts := aggregation.Count(insights)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtractionSummary(insights)
	printer.PrintAggregateCounts(counts)
	return nil
}

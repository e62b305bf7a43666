package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hometap/smartfacts-dashboard/internal/export"
	"github.com/hometap/smartfacts-dashboard/internal/extraction"
	"github.com/hometap/smartfacts-dashboard/internal/observability"
	"github.com/hometap/smartfacts-dashboard/internal/schemas"
	"github.com/hometap/smartfacts-dashboard/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the insight dataset without rendering the page",
	Long:  "Extract runs the extraction step only and emits the normalized dataset as JSON (validated against the dataset schema) or CSV.",
	RunE:  runExtract,
}

var (
	extractConfigFile string
	extractCodebase   string
	extractOutput     string
	extractFormat     string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractConfigFile, "config", "c", "", "Path to YAML config file")
	extractCmd.Flags().StringVar(&extractCodebase, "codebase", "", "Codebase root containing the smart_facts sources (overrides CODEBASE_PATH)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Output file path (stdout when omitted)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "Output format: json or csv")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed extraction information")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractFormat != "json" && extractFormat != "csv" {
		return fmt.Errorf("unsupported format %q (use json or csv)", extractFormat)
	}

	cfg, err := resolveConfig(extractConfigFile)
	if err != nil {
		return err
	}
	if extractCodebase != "" {
		cfg.Codebase = extractCodebase
	}

	logger, err := observability.NewLogger(extractVerbose || cfg.Verbose)
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

	var out io.Writer = os.Stdout
	if extractOutput != "" {
		f, err := os.Create(extractOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if extractFormat == "csv" {
		return export.WriteCSV(out, insights)
	}

	if insights == nil {
		insights = []types.Insight{}
	}
	data, err := json.MarshalIndent(types.InsightSet{Insights: insights}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := schemas.ValidateInsights(data); err != nil {
		return fmt.Errorf("extracted dataset does not conform to schema: %w", err)
	}

	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

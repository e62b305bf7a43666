package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hometap/smartfacts-dashboard/internal/observability"
	"github.com/hometap/smartfacts-dashboard/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the dashboard page from the codebase sources",
	Long:  "Build runs the full extract, aggregate, and render pipeline and writes the static dashboard HTML file, overwriting any previous output.",
	RunE:  runBuild,
}

var (
	buildConfigFile string
	buildCodebase   string
	buildOutput     string
	buildTitle      string
	buildTemplate   string
	buildVerbose    bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfigFile, "config", "c", "", "Path to YAML config file")
	buildCmd.Flags().StringVar(&buildCodebase, "codebase", "", "Codebase root containing the smart_facts sources (overrides CODEBASE_PATH)")
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "Output HTML file path")
	buildCmd.Flags().StringVar(&buildTitle, "title", "", "Dashboard page title")
	buildCmd.Flags().StringVar(&buildTemplate, "template", "", "Path to a dashboard template override")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed extraction information")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(buildConfigFile)
	if err != nil {
		return err
	}
	if buildCodebase != "" {
		cfg.Codebase = buildCodebase
	}
	if buildOutput != "" {
		cfg.Output = buildOutput
	}
	if buildTitle != "" {
		cfg.Title = buildTitle
	}
	if buildTemplate != "" {
		cfg.Template = buildTemplate
	}
	verbose := buildVerbose || cfg.Verbose

	logger, err := observability.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fmt.Println("Building Smart Facts dashboard...")
	result, err := pipeline.Run(pipeline.RunOptions{
		CodebaseRoot: cfg.Codebase,
		OutputPath:   cfg.Output,
		Title:        cfg.Title,
		TemplatePath: cfg.Template,
		Verbose:      verbose,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d insights\n", len(result.Insights))
	fmt.Printf("Dashboard written to %s\n", result.OutputPath)
	return nil
}

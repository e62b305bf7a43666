package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hometap/smartfacts-dashboard/internal/extraction"
	"github.com/hometap/smartfacts-dashboard/internal/observability"
	"github.com/hometap/smartfacts-dashboard/internal/pipeline"
	"github.com/hometap/smartfacts-dashboard/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the dashboard on source changes or a cron schedule",
	Long:  "Watch runs an initial build, then reruns the pipeline whenever the smart_facts sources change or a configured cron schedule fires. Stop with Ctrl-C.",
	RunE:  runWatch,
}

var (
	watchConfigFile string
	watchCodebase   string
	watchOutput     string
	watchTitle      string
	watchTemplate   string
	watchSchedule   string
	watchVerbose    bool
)

func init() {
	watchCmd.Flags().StringVarP(&watchConfigFile, "config", "c", "", "Path to YAML config file")
	watchCmd.Flags().StringVar(&watchCodebase, "codebase", "", "Codebase root containing the smart_facts sources (overrides CODEBASE_PATH)")
	watchCmd.Flags().StringVarP(&watchOutput, "out", "o", "", "Output HTML file path")
	watchCmd.Flags().StringVar(&watchTitle, "title", "", "Dashboard page title")
	watchCmd.Flags().StringVar(&watchTemplate, "template", "", "Path to a dashboard template override")
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "", "Cron expression for scheduled rebuilds")
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Print detailed extraction information")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(watchConfigFile)
	if err != nil {
		return err
	}
	if watchCodebase != "" {
		cfg.Codebase = watchCodebase
	}
	if watchOutput != "" {
		cfg.Output = watchOutput
	}
	if watchTitle != "" {
		cfg.Title = watchTitle
	}
	if watchTemplate != "" {
		cfg.Template = watchTemplate
	}
	if watchSchedule != "" {
		cfg.WatchSchedule = watchSchedule
	}
	verbose := watchVerbose || cfg.Verbose

	logger, err := observability.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	root, err := extraction.ResolveCodebaseRoot(cfg.Codebase)
	if err != nil {
		return err
	}

	rebuild := func() error {
		_, err := pipeline.Run(pipeline.RunOptions{
			CodebaseRoot: root,
			OutputPath:   cfg.Output,
			Title:        cfg.Title,
			TemplatePath: cfg.Template,
			Verbose:      verbose,
			Logger:       logger,
		})
		return err
	}

	// Initial build; a failure here is fatal rather than silently retried.
	if err := rebuild(); err != nil {
		return err
	}
	fmt.Printf("Initial build complete, watching for changes (output: %s)\n", cfg.Output)

	svc := watch.NewService(rebuild, watch.Options{
		Schedule: cfg.WatchSchedule,
		Paths: []string{
			filepath.Join(root, extraction.DefinitionsRelPath),
			filepath.Join(root, extraction.DisplayTemplatesRelPath),
		},
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return svc.Start(ctx)
}

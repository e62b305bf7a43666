package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hometap/smartfacts-dashboard/internal/dispatch"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Trigger a remote dashboard rebuild",
	Long:  "Trigger sends a repository_dispatch event to the dashboard repository so the hosted workflow rebuilds and redeploys the page.",
	RunE:  runTrigger,
}

var (
	triggerConfigFile string
	triggerRepo       string
	triggerEvent      string
	triggerToken      string
)

func init() {
	triggerCmd.Flags().StringVarP(&triggerConfigFile, "config", "c", "", "Path to YAML config file")
	triggerCmd.Flags().StringVar(&triggerRepo, "repo", "", "Target repository in owner/repo form")
	triggerCmd.Flags().StringVar(&triggerEvent, "event", "", "repository_dispatch event type")
	triggerCmd.Flags().StringVar(&triggerToken, "token", "", fmt.Sprintf("Access token (overrides %s env var)", dispatch.TokenEnv))

	rootCmd.AddCommand(triggerCmd)
}

func runTrigger(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(triggerConfigFile)
	if err != nil {
		return err
	}

	repo := triggerRepo
	if repo == "" {
		repo = cfg.DispatchRepo
	}
	if repo == "" {
		return fmt.Errorf("target repository is required (use --repo or set dispatch_repo in the config)")
	}
	event := triggerEvent
	if event == "" {
		event = cfg.DispatchEvent
	}
	token := triggerToken
	if token == "" {
		token = os.Getenv(dispatch.TokenEnv)
	}

	if err := dispatch.Trigger(context.Background(), repo, event, token, nil); err != nil {
		return err
	}
	fmt.Printf("Dispatched %q to %s\n", event, repo)
	return nil
}

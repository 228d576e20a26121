// Package commands defines the jsprint command tree.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/svanharmelen/jira/internal/config"
	"github.com/svanharmelen/jira/internal/jira"
)

var (
	cfg     = config.FromEnv()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "jsprint",
	Short:        "A small tool to help prepare, start and complete sprints in Jira",
	SilenceUsage: true,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfg.Organization, "organization", "o", cfg.Organization, "Jira organization (env JIRA_ORGANIZATION)")
	pf.StringVarP(&cfg.User, "user", "u", cfg.User, "Jira user (env JIRA_USER)")
	pf.StringVarP(&cfg.Token, "token", "t", cfg.Token, "Jira API token (env JIRA_TOKEN)")
	pf.StringVar(&cfg.PAT, "pat", cfg.PAT, "Jira personal access token for bearer auth (env JIRA_PAT)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	// Tables go to stdout, so keep the default logger quiet.
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return c.Build()
}

func newClient() (*jira.Client, *zap.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	client, err := jira.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, logger, nil
}

// resolveBoardID returns the explicit board ID, or the origin board of the
// selected sprint when only a sprint was given.
func resolveBoardID(ctx context.Context, client *jira.Client, boardID, sprintID int) (int, error) {
	if boardID != 0 {
		return boardID, nil
	}
	sprint, err := client.Sprint(ctx, sprintID)
	if err != nil {
		return 0, err
	}
	if sprint.OriginBoardID == 0 {
		return 0, fmt.Errorf("%w `board`", config.ErrMissingArgument)
	}
	return sprint.OriginBoardID, nil
}

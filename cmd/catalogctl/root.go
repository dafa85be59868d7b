package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logging"
)

type commandContext struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (c *commandContext) load(cmd *cobra.Command) error {
	if c.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logging.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	return nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Book catalog maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newEnrichCommand(ctx))
	rootCmd.AddCommand(newTokenCommand(ctx))

	return rootCmd
}

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"claimeval/internal/platform/config"
	"claimeval/internal/platform/logger"
)

type rootOptions struct {
	configFile       string
	logLevelOverride string

	cfg    config.Server
	logger *slog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "claimeval",
		Short:        "Insurance claim evaluation service",
		Long:         `claimeval decides whether an insurance claim is payable under a policy and how much to pay.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if opts.logLevelOverride != "" {
				level = opts.logLevelOverride
			}
			log, err := logger.New(level, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a config file (json|yaml|toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevelOverride, "log-level", "", "Override log level (debug|info|warn|error)")

	cmd.AddCommand(
		newServeCmd(opts),
		newEvaluateCmd(opts),
	)

	return cmd
}

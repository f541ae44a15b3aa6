package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/logger"
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand performs an install.
func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
		opts      installOptions
	)

	rootCmd := &cobra.Command{
		Use:   "mambastrap",
		Short: "Download micromamba and initialize your shell",
		Long: `mambastrap downloads the latest micromamba release for this machine,
writes it to the chosen location and optionally runs
"micromamba shell init" for your shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel, logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, &opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	addInstallFlags(rootCmd, &opts)

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// commandContext returns the command's context, or Background when the
// command was run with Execute rather than ExecuteContext.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

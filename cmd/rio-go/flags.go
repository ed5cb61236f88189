// ABOUTME: Cobra command tree: the root command runs a shell, version prints build info
// ABOUTME: Flags override the merged TOML/YAML configuration

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/rio-go/internal/config"
)

type cliArgs struct {
	configPath string
	headless   bool
	shell      string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var args cliArgs

	root := &cobra.Command{
		Use:   "rio-go [flags] [-- shell args]",
		Short: "Terminal emulator front end for a shell on a pseudo-terminal",
		Long: `rio-go runs a shell on a pseudo-terminal and relays events between the
shell and the host terminal. By default the shell is shown inside a
full-screen UI; --headless relays bytes directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, rest []string) error {
			return run(cmd.Context(), args, rest)
		},
	}

	f := root.Flags()
	f.StringVarP(&args.configPath, "config", "c", "", "config file (TOML or YAML); default merges ~/.rio-go and ./.rio-go")
	f.BoolVar(&args.headless, "headless", false, "relay bytes without the UI")
	f.StringVar(&args.shell, "shell", "", "shell to run (overrides config and "+config.EnvShell+")")
	f.StringVar(&args.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&args.logFile, "log-file", "", "log file path")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rio-go %s (%s) built %s\n", version, commit, date)
			return nil
		},
	}
}

// applyOverrides copies non-empty flag values onto cfg and validates it.
func applyOverrides(cfg *config.Config, args cliArgs, shellArgs []string) error {
	if args.shell != "" {
		cfg.Shell = args.shell
	}
	if len(shellArgs) > 0 {
		cfg.Args = shellArgs
	}
	if args.logLevel != "" {
		cfg.Log.Level = args.logLevel
	}
	if args.logFile != "" {
		cfg.Log.File = args.logFile
	}
	return cfg.Validate()
}

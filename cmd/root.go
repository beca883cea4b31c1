/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cristianoliveira/commentview/internal/colors"
	"github.com/cristianoliveira/commentview/internal/config"
	"github.com/cristianoliveira/commentview/internal/logging"
	"github.com/cristianoliveira/commentview/internal/storage"
	"github.com/cristianoliveira/commentview/internal/version"
	"github.com/spf13/cobra"
)

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	SourceDir  string
	BaseURL    string
	Timeout    int
	NoPersist  bool
	Debug      bool
	Quiet      bool
}

// Options holds the parsed global flags.
var Options GlobalOptions

// RootCmd represents the base command. Running it without a subcommand opens
// the interactive viewer; the binary's main package wires its RunE.
var RootCmd = &cobra.Command{
	Use:   "commentview",
	Short: "Browse, search, sort and page through comments in the terminal.",
	Long: `Browse, search, sort and page through comments in the terminal.

Records are fetched from a JSON service (or a local mirror of it) and shown
as a sortable, searchable, paginated table. The view you leave is restored
the next time you start.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug(fmt.Sprintf("failed to shut down logger: %v", err))
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&Options.ConfigPath, "config", "", "Config file (default is <config_dir>/config.toml)")
	flags.StringVar(&Options.SourceDir, "source-dir", "", "Read comments.json and users.json from this directory")
	flags.StringVar(&Options.BaseURL, "base-url", "", "Base URL of the JSON service")
	flags.IntVar(&Options.Timeout, "timeout", 0, "Fetch timeout in seconds (0 waits forever)")
	flags.BoolVar(&Options.NoPersist, "no-persist", false, "Keep preferences in memory for this run only")
	flags.BoolVar(&Options.Debug, "debug", false, "Print debug output and log at debug level")
	flags.BoolVarP(&Options.Quiet, "quiet", "q", false, "Suppress informational output")
}

// setup applies the global flags and loads configuration and logging.
func setup(cmd *cobra.Command, args []string) error {
	if Options.ConfigPath != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_PATH", Options.ConfigPath); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}
	applyOverrides(cmd)
	config.Load()

	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	logging.Info("command started", "command", cmd.CommandPath(), "version", version.String())
	return nil
}

// applyOverrides turns the flags the user actually passed into config overrides.
func applyOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("source-dir") {
		config.Set("source_dir", Options.SourceDir)
	}
	if flags.Changed("base-url") {
		config.Set("source_base_url", Options.BaseURL)
	}
	if flags.Changed("timeout") {
		config.Set("fetch_timeout_seconds", strconv.Itoa(Options.Timeout))
	}
	if Options.NoPersist {
		config.Set("storage_backend", storage.BackendMemory)
	}
	if Options.Debug {
		config.Set("debug", "true")
	}
	if Options.Quiet {
		config.Set("quiet", "true")
	}
}

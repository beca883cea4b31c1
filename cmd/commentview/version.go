package main

import (
	"fmt"

	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var format string
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of commentview.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			format, err := validateFormat(format, formatTable, formatJSON, formatYAML)
			if err != nil {
				return err
			}
			info := version.Current()
			switch format {
			case formatJSON:
				return writeJSON(c.OutOrStdout(), info)
			case formatYAML:
				return writeYAML(c.OutOrStdout(), info)
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "commentview version %s (%s, %s)\n", version.String(), info.Go, info.Platform())
			return err
		},
	}
	versionCmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json, yaml")
	return versionCmd
}

// versionCmd represents the version command
var versionCmd = NewVersionCmd()

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}

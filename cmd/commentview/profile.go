package main

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/logging"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/tui/render"
	"github.com/spf13/cobra"
)

type profileClient interface {
	sourceClient
	preferencesClient
}

const profileCommandLong = `Print the profile of the first user.

USAGE:
    commentview profile [OPTIONS]

OPTIONS:
    --format <format>    Output format: markdown (default), json, yaml
    -h, --help           Show this help

Markdown is rendered with the saved theme when writing to a terminal and
printed as plain markdown otherwise.`

// NewProfileCmd creates the profile command with explicit dependencies.
func NewProfileCmd(client profileClient) *cobra.Command {
	if client == nil {
		panic("NewProfileCmd: client dependency cannot be nil")
	}

	var format string
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the user profile",
		Long:  profileCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runProfile(c, client, format)
		},
	}
	profileCmd.Flags().StringVar(&format, "format", formatMarkdown, "Output format: markdown, json, yaml")
	return profileCmd
}

func runProfile(c *cobra.Command, client profileClient, format string) error {
	format, err := validateFormat(format, formatMarkdown, formatJSON, formatYAML)
	if err != nil {
		return err
	}
	src, err := client.Source()
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}
	profile, err := src.FetchProfile(c.Context())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	out := c.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(out, profile)
	case formatYAML:
		return writeYAML(out, profile)
	}

	width, tty := terminalWidth(out)
	if !tty {
		_, err := io.WriteString(out, render.ProfileMarkdown(profile))
		return err
	}
	dark := client.Defaults().DarkMode
	if store, err := client.Store(); err == nil {
		dark = settings.LoadDisplayTheme(c.Context(), store, client.Defaults())
	}
	text, err := render.Profile(profile, width, render.ThemeFor(dark))
	if err != nil {
		logging.Warn("profile printed as plain markdown", "error", err)
	}
	_, err = io.WriteString(out, text)
	return err
}

// profileCmd represents the profile command
var profileCmd = NewProfileCmd(client)

func init() {
	cmd.RootCmd.AddCommand(profileCmd)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/colors"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/spf13/cobra"
)

const (
	prefsCommandLong = `Manage the saved view and theme.

USAGE:
    commentview prefs <subcommand>

SUBCOMMANDS:
    show     Display the saved preferences
    reset    Forget the saved view and theme
    theme    Show or change the display theme

EXAMPLES:
    # Show preferences as yaml
    commentview prefs show --format yaml

    # Reset without confirmation
    commentview prefs reset --force

    # Switch to the dark theme
    commentview prefs theme dark`
	themeCommandLong = `Show or change the display theme.

USAGE:
    commentview prefs theme [light|dark|toggle]

Without an argument the current theme is printed.`
)

// NewPrefsCmd creates the prefs command with explicit dependencies.
func NewPrefsCmd(client preferencesClient) *cobra.Command {
	if client == nil {
		panic("NewPrefsCmd: client dependency cannot be nil")
	}

	prefsCmd := &cobra.Command{
		Use:     "prefs",
		Aliases: []string{"settings"},
		Short:   "Manage saved preferences",
		Long:    prefsCommandLong,
	}
	prefsCmd.AddCommand(newPrefsShowCmd(client))
	prefsCmd.AddCommand(newPrefsResetCmd(client))
	prefsCmd.AddCommand(newPrefsThemeCmd(client))
	return prefsCmd
}

func newPrefsShowCmd(client preferencesClient) *cobra.Command {
	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			format, err := validateFormat(format, formatJSON, formatYAML)
			if err != nil {
				return err
			}
			store, err := client.Store()
			if err != nil {
				return fmt.Errorf("failed to open preferences: %w", err)
			}
			prefs := settings.Load(c.Context(), store, client.Defaults())
			if format == formatYAML {
				return writeYAML(c.OutOrStdout(), prefs)
			}
			return writeJSON(c.OutOrStdout(), prefs)
		},
	}
	showCmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json, yaml")
	return showCmd
}

func newPrefsResetCmd(client preferencesClient) *cobra.Command {
	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved view and theme",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if !force && !confirmReset(c.InOrStdin(), c.OutOrStdout()) {
				colors.Info("Operation cancelled")
				return nil
			}
			store, err := client.Store()
			if err != nil {
				return fmt.Errorf("failed to open preferences: %w", err)
			}
			if err := settings.Reset(c.Context(), store); err != nil {
				return fmt.Errorf("failed to reset preferences: %w", err)
			}
			colors.Success("Preferences reset to defaults")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "Reset without confirmation")
	return resetCmd
}

func newPrefsThemeCmd(client preferencesClient) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the display theme",
		Long:      themeCommandLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{settings.ThemeLight, settings.ThemeDark, "toggle"},
		RunE: func(c *cobra.Command, args []string) error {
			store, err := client.Store()
			if err != nil {
				return fmt.Errorf("failed to open preferences: %w", err)
			}
			ctx := c.Context()
			dark := settings.LoadDisplayTheme(ctx, store, client.Defaults())
			if len(args) == 0 {
				_, err := fmt.Fprintln(c.OutOrStdout(), themeName(dark))
				return err
			}

			if strings.EqualFold(args[0], "toggle") {
				dark = !dark
			} else if dark, err = settings.ParseTheme(args[0]); err != nil {
				return err
			}
			if err := settings.SaveDisplayTheme(ctx, store, dark); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}
			colors.Success("Theme set to " + themeName(dark))
			return nil
		},
	}
}

func themeName(dark bool) string {
	return settings.Preferences{DarkMode: dark}.Theme()
}

// confirmReset asks for confirmation before resetting preferences.
func confirmReset(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Are you sure you want to reset preferences to defaults? (y/N): ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

// prefsCmd represents the prefs command
var prefsCmd = NewPrefsCmd(client)

func init() {
	cmd.RootCmd.AddCommand(prefsCmd)
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/logging"
	"github.com/cristianoliveira/commentview/internal/search"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/tui/state"
	"github.com/spf13/cobra"
)

type tuiClient interface {
	sourceClient
	preferencesClient
}

// programRunner runs a bubbletea model. Replaced in tests.
type programRunner func(ctx context.Context, model tea.Model) error

func runProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

const tuiCommandLong = `Open the interactive viewer.

KEY BINDINGS:
    /           Search name, email and body (Enter/Esc to finish)
    Esc         Clear the search
    1 2 3       Sort by group, name, email (asc, desc, off)
    s           Cycle page size (10, 50, 100)
    ←/→ h/l     Previous/next page
    g/G         First/last page
    :           Go to a page shown in the pager
    t           Toggle light/dark theme
    p           Show the profile (Esc to go back)
    q           Quit`

// newTUIRunE returns the RunE that opens the viewer with the saved preferences.
func newTUIRunE(client tuiClient, run programRunner) func(*cobra.Command, []string) error {
	if client == nil {
		panic("newTUIRunE: client dependency cannot be nil")
	}
	return func(c *cobra.Command, args []string) error {
		ctx := c.Context()
		src, err := client.Source()
		if err != nil {
			return fmt.Errorf("failed to create source: %w", err)
		}
		store, err := client.Store()
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}
		prefs := settings.Load(ctx, store, client.Defaults())
		logging.Info("starting viewer", "theme", prefs.Theme(), "page", prefs.View.CurrentPage, "pageSize", prefs.View.PageSize)

		model := state.NewModel(state.Options{
			Context:     ctx,
			Source:      src,
			Store:       store,
			Preferences: prefs,
			Search:      search.FromConfig(),
		})
		if err := run(ctx, model); err != nil {
			return fmt.Errorf("error running viewer: %w", err)
		}
		return nil
	}
}

func init() {
	cmd.RootCmd.Long += "\n\n" + tuiCommandLong
	cmd.RootCmd.Args = cobra.NoArgs
	cmd.RootCmd.RunE = newTUIRunE(client, runProgram)
}

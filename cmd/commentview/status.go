package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/colors"
	"github.com/cristianoliveira/commentview/internal/config"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/source"
	"github.com/cristianoliveira/commentview/internal/tui/render"
	"github.com/spf13/cobra"
)

type statusClient interface {
	sourceClient
	preferencesClient
}

const statusCommandLong = `Fetch records and profile together and print a short summary.

USAGE:
    commentview status

Exits with an error when either fetch fails.`

// statusReport is what the status command prints.
type statusReport struct {
	Source   string
	Records  int
	Groups   int
	Profile  string
	Theme    string
	PageSize int
	Elapsed  time.Duration
}

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "status",
		Short: "Check the data source and show counts",
		Long:  statusCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			report, err := collectStatus(c, client)
			if err != nil {
				return err
			}
			return writeStatus(c.OutOrStdout(), report)
		},
	}
}

func collectStatus(c *cobra.Command, client statusClient) (statusReport, error) {
	src, err := client.Source()
	if err != nil {
		return statusReport{}, fmt.Errorf("failed to create source: %w", err)
	}

	started := time.Now()
	snap, err := source.FetchAll(c.Context(), src)
	if err != nil {
		return statusReport{}, fmt.Errorf("source check failed: %w", err)
	}

	groups := make(map[int]struct{})
	for _, r := range snap.Records {
		groups[r.GroupID] = struct{}{}
	}

	prefs := settings.DefaultPreferences(client.Defaults())
	if store, err := client.Store(); err == nil {
		prefs = settings.Load(c.Context(), store, client.Defaults())
	} else {
		colors.Warning(fmt.Sprintf("preferences unavailable: %v", err))
	}

	profile := snap.Profile.Name
	if h := snap.Profile.Handle(); h != "" {
		profile += " (" + h + ")"
	}
	return statusReport{
		Source:   describeSource(),
		Records:  len(snap.Records),
		Groups:   len(groups),
		Profile:  profile,
		Theme:    prefs.Theme(),
		PageSize: prefs.View.PageSize,
		Elapsed:  time.Since(started),
	}, nil
}

func describeSource() string {
	if dir := config.Get("source_dir", ""); dir != "" {
		return dir
	}
	return config.Get("source_base_url", source.DefaultBaseURL)
}

func writeStatus(w io.Writer, r statusReport) error {
	lines := []string{
		fmt.Sprintf("source:    %s", r.Source),
		fmt.Sprintf("records:   %s in %s groups", render.Count(r.Records), render.Count(r.Groups)),
		fmt.Sprintf("profile:   %s", r.Profile),
		fmt.Sprintf("theme:     %s", r.Theme),
		fmt.Sprintf("page size: %d", r.PageSize),
		fmt.Sprintf("fetched in %s", r.Elapsed.Round(time.Millisecond)),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// statusCmd represents the status command
var statusCmd = NewStatusCmd(client)

func init() {
	cmd.RootCmd.AddCommand(statusCmd)
}

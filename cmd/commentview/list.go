package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/colors"
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/engine"
	"github.com/cristianoliveira/commentview/internal/logging"
	"github.com/cristianoliveira/commentview/internal/search"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/tui/render"
	"github.com/cristianoliveira/commentview/internal/viewstate"
	"github.com/spf13/cobra"
)

type listClient interface {
	sourceClient
	preferencesClient
}

const listCommandLong = `Print one page of comments without opening the viewer.

The page starts from the view saved by the viewer; flags change it for this
run only unless --save is given.

USAGE:
    commentview list [OPTIONS]

OPTIONS:
    --search <term>      Substring match on search_fields (name, email and body)
    --sort <field[:dir]> Sort by groupId, displayName or contactAddress; dir is asc or desc; none clears
    --page <n>           Page to show (1-based)
    --page-size <n>      Records per page: 10, 50 or 100
    --format <format>    Output format: table (default), tsv, json, yaml
    --fresh              Start from the default view instead of the saved one
    --save               Save the resulting view for the next session
    -h, --help           Show this help`

// listOptions are the flags of the list command.
type listOptions struct {
	Search   string
	Sort     string
	Page     int
	PageSize int
	Format   string
	Fresh    bool
	Save     bool
}

// listResult is the machine-readable list output.
type listResult struct {
	State         viewstate.ViewState `json:"state" yaml:"state"`
	TotalFiltered int                 `json:"totalFiltered" yaml:"totalFiltered"`
	TotalPages    int                 `json:"totalPages" yaml:"totalPages"`
	Records       []domain.Record     `json:"records" yaml:"records"`
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print a page of comments",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runList(c, client, opts)
		},
	}

	flags := listCmd.Flags()
	flags.StringVar(&opts.Search, "search", "", "Search name, email and body (substring match)")
	flags.StringVar(&opts.Sort, "sort", "", "Sort as field[:asc|desc], or none")
	flags.IntVar(&opts.Page, "page", 0, "Page to show (1-based)")
	flags.IntVar(&opts.PageSize, "page-size", 0, "Records per page: 10, 50 or 100")
	flags.StringVar(&opts.Format, "format", formatTable, "Output format: table, tsv, json, yaml")
	flags.BoolVar(&opts.Fresh, "fresh", false, "Ignore the saved view")
	flags.BoolVar(&opts.Save, "save", false, "Save the resulting view")
	return listCmd
}

func runList(c *cobra.Command, client listClient, opts listOptions) error {
	ctx := c.Context()
	format, err := validateFormat(opts.Format, formatTable, formatTSV, formatJSON, formatYAML)
	if err != nil {
		return err
	}

	prefs := settings.DefaultPreferences(client.Defaults())
	if !opts.Fresh {
		store, err := client.Store()
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}
		prefs = settings.Load(ctx, store, client.Defaults())
	}

	state, err := applyListFlags(c, prefs.View, opts)
	if err != nil {
		return err
	}

	src, err := client.Source()
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}
	records, err := src.FetchRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	view := engine.DeriveWith(search.FromConfig(), records, state)
	logging.Debug("list derived", "records", len(records), "filtered", view.TotalFiltered, "page", state.CurrentPage)

	if opts.Save {
		if err := saveListState(ctx, client, state); err != nil {
			return err
		}
	}

	out := c.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(out, newListResult(view, state))
	case formatYAML:
		return writeYAML(out, newListResult(view, state))
	case formatTSV:
		return writeTSV(out, view.Page)
	default:
		width, _ := terminalWidth(out)
		return writeListTable(out, view, state, len(records), width, render.ThemeFor(prefs.DarkMode))
	}
}

// applyListFlags applies the flags that were set, in the same transitions the
// viewer uses. The page flag is applied last since the others reset it.
func applyListFlags(c *cobra.Command, state viewstate.ViewState, opts listOptions) (viewstate.ViewState, error) {
	flags := c.Flags()
	if flags.Changed("search") {
		state = viewstate.OnSearchChanged(state, opts.Search)
	}
	if flags.Changed("sort") {
		s, err := viewstate.ParseSort(opts.Sort)
		if err != nil {
			return state, fmt.Errorf("invalid --sort: %w", err)
		}
		state.Sort = s
	}
	if flags.Changed("page-size") {
		if !viewstate.IsValidPageSize(opts.PageSize) {
			return state, fmt.Errorf("invalid --page-size: %d (must be 10, 50 or 100)", opts.PageSize)
		}
		state = viewstate.OnPageSizeChanged(state, opts.PageSize)
	}
	if flags.Changed("page") {
		if opts.Page < 1 {
			return state, fmt.Errorf("invalid --page: %d (must be 1 or greater)", opts.Page)
		}
		state = viewstate.OnPageRequested(state, opts.Page)
	}
	return state, nil
}

func saveListState(ctx context.Context, client listClient, state viewstate.ViewState) error {
	store, err := client.Store()
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	if err := settings.SaveViewState(ctx, store, state); err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}
	colors.Success("View saved")
	return nil
}

func newListResult(view engine.View, state viewstate.ViewState) listResult {
	records := view.Page
	if records == nil {
		records = []domain.Record{}
	}
	return listResult{
		State:         state,
		TotalFiltered: view.TotalFiltered,
		TotalPages:    view.TotalPages,
		Records:       records,
	}
}

func writeTSV(w io.Writer, records []domain.Record) error {
	var b strings.Builder
	b.WriteString("groupId\tid\tdisplayName\tcontactAddress\tbody\n")
	for _, r := range records {
		fields := []string{
			strconv.Itoa(r.GroupID),
			strconv.Itoa(r.ID),
			tsvField(r.DisplayName),
			tsvField(r.ContactAddress),
			tsvField(r.BodyText),
		}
		b.WriteString(strings.Join(fields, "\t"))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// tsvField collapses whitespace, tabs and newlines included, to single spaces.
func tsvField(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func writeListTable(w io.Writer, view engine.View, state viewstate.ViewState, total, width int, theme render.Theme) error {
	var b strings.Builder
	b.WriteString(render.Table(view.Page, state.Sort, width, theme))
	b.WriteString("\n\n")
	b.WriteString(render.Pager(engine.Window(state.CurrentPage, view.TotalPages), theme))
	b.WriteString("  ")
	b.WriteString(render.Summary(view, state, total))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// listCmd represents the list command
var listCmd = NewListCmd(client)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}

package render

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/commentview/internal/engine"
	"github.com/cristianoliveira/commentview/internal/errors"
	"github.com/cristianoliveira/commentview/internal/viewstate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Pager renders the pagination controls.
func Pager(p engine.Pager, theme Theme) string {
	items := p.Items()
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, pagerItem(item, theme))
	}
	return strings.Join(parts, " ")
}

func pagerItem(item engine.Item, theme Theme) string {
	switch item.Kind {
	case engine.ItemPrev:
		if item.Disabled {
			return theme.Disabled.Render("‹ Prev")
		}
		return theme.Link.Render("‹ Prev")
	case engine.ItemNext:
		if item.Disabled {
			return theme.Disabled.Render("Next ›")
		}
		return theme.Link.Render("Next ›")
	case engine.ItemEllipsis:
		return theme.Muted.Render(ellipsis)
	default:
		label := fmt.Sprintf(" %d ", item.Page)
		if item.Current {
			return theme.Current.Render(label)
		}
		return theme.Row.Render(label)
	}
}

// Summary renders the "Showing a–b of n" line. total is the size of the
// unfiltered collection; an active search appends "(filtered from total)"
// and an active sort appends the sort field and direction.
func Summary(view engine.View, state viewstate.ViewState, total int) string {
	var line string
	switch {
	case view.TotalFiltered == 0 && state.SearchTerm != "":
		line = printer.Sprintf("No records match %q", state.SearchTerm)
	case view.TotalFiltered == 0:
		line = "No records"
	case view.IsEmpty():
		line = printer.Sprintf("Nothing on page %d of %d (%d records)", state.CurrentPage, view.TotalPages, view.TotalFiltered)
	default:
		line = printer.Sprintf("Showing %d–%d of %d", view.Offset+1, view.Offset+len(view.Page), view.TotalFiltered)
	}
	if state.SearchTerm != "" {
		line += printer.Sprintf(" (filtered from %d total)", total)
	}
	if sorted := SortLabel(state.Sort); sorted != "" {
		line += " · " + sorted
	}
	return line
}

// SortLabel renders "Sorted by <column> ↑|↓", or "" when no sort is active.
func SortLabel(s viewstate.Sort) string {
	if !s.Active() {
		return ""
	}
	title := string(s.Field())
	for _, c := range Layout(defaultWidth) {
		if c.Field == s.Field() {
			title = c.Title
			break
		}
	}
	return fmt.Sprintf("Sorted by %s %s", title, SortIndicator(s, s.Field()))
}

// EmptyPageHint explains an empty page when records exist but the current
// page is outside the range. It returns "" otherwise.
func EmptyPageHint(view engine.View, state viewstate.ViewState, theme Theme) string {
	if !view.IsEmpty() || view.TotalFiltered == 0 {
		return ""
	}
	if view.TotalPages == 0 {
		return theme.Warning.Render(fmt.Sprintf("Page size %d shows nothing. Press s to pick 10, 50 or 100.", state.PageSize))
	}
	return theme.Warning.Render(fmt.Sprintf("Page %d is past the last page (%d). Press g for the first page or G for the last.", state.CurrentPage, view.TotalPages))
}

// Count formats n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	SearchMode bool
	// SearchInput is the rendered search input while searching.
	SearchInput string
	JumpMode    bool
	// JumpInput is the rendered page input while jumping.
	JumpInput  string
	SearchTerm string
	PageSize   int
	Width      int
}

// Footer renders the search line and key help.
func Footer(state FooterState, theme Theme) string {
	var help []string
	switch {
	case state.SearchMode:
		help = append(help, "Enter/Esc: done")
	case state.JumpMode:
		help = append(help, "Enter: go to page", "Esc: cancel")
	default:
		help = append(help,
			"/: search",
			"1/2/3: sort",
			fmt.Sprintf("s: page size (%d)", state.PageSize),
			"←/→: page",
			"g/G: first/last",
			":: go to page",
			"t: theme",
			"p: profile",
			"q: quit",
		)
	}
	line := theme.Muted.Render(truncate(strings.Join(help, "  |  "), footerWidth(state.Width)))

	switch {
	case state.SearchMode:
		return state.SearchInput + "\n" + line
	case state.JumpMode:
		return state.JumpInput + "\n" + line
	case state.SearchTerm != "":
		return theme.Info.Render(fmt.Sprintf("Search: %s", state.SearchTerm)) + "\n" + line
	default:
		return line
	}
}

func footerWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}

// StatusLine renders a flash message.
func StatusLine(msg errors.Message, theme Theme) string {
	if msg.Text == "" {
		return ""
	}
	switch msg.Type {
	case errors.MessageTypeError:
		return theme.Error.Render("Error: " + msg.Text)
	case errors.MessageTypeWarning:
		return theme.Warning.Render("Warning: " + msg.Text)
	case errors.MessageTypeSuccess:
		return theme.Success.Render("✓ " + msg.Text)
	default:
		return theme.Info.Render(msg.Text)
	}
}

// Loading renders a loading placeholder next to the spinner frame.
func Loading(spinner, what string, theme Theme) string {
	return spinner + " " + theme.Muted.Render(fmt.Sprintf("Loading %s…", what))
}

// LoadFailed renders the terminal failure message for a fetch.
func LoadFailed(what string, err error, theme Theme) string {
	text := fmt.Sprintf("Failed to load %s.", what)
	if err != nil {
		text += " " + err.Error()
	}
	return theme.Error.Render(text)
}

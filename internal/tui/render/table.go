// Package render turns engine output into styled terminal text. Every
// function is pure: the same inputs always produce the same string.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/viewstate"
)

const (
	defaultWidth   = 100
	groupWidth     = 9
	minColumnWidth = 8
	columnGap      = "  "
	ellipsis       = "…"

	indicatorUnsorted   = "↕"
	indicatorAscending  = "↑"
	indicatorDescending = "↓"
)

// Column describes one table column.
type Column struct {
	Title string
	// Field is the sort key, empty for unsortable columns.
	Field domain.Field
	Width int
}

// Layout returns the column set sized to fit width.
func Layout(width int) []Column {
	if width <= 0 {
		width = defaultWidth
	}
	rest := width - groupWidth - 3*len(columnGap)
	name := max(minColumnWidth, rest*22/100)
	email := max(minColumnWidth, rest*28/100)
	body := max(minColumnWidth, rest-name-email)
	return []Column{
		{Title: "Group", Field: domain.FieldGroupID, Width: groupWidth},
		{Title: "Name", Field: domain.FieldDisplayName, Width: name},
		{Title: "Email", Field: domain.FieldContactAddress, Width: email},
		{Title: "Body", Width: body},
	}
}

// SortIndicator returns the arrow shown next to a sortable column title.
func SortIndicator(s viewstate.Sort, field domain.Field) string {
	if !s.Active() || s.Field() != field {
		return indicatorUnsorted
	}
	if s.Direction() == viewstate.Descending {
		return indicatorDescending
	}
	return indicatorAscending
}

// Header renders the column titles with their sort indicators.
func Header(s viewstate.Sort, width int, theme Theme) string {
	cols := Layout(width)
	cells := make([]string, len(cols))
	for i, c := range cols {
		title := c.Title
		if c.Field != "" {
			title += " " + SortIndicator(s, c.Field)
		}
		cell := pad(truncate(title, c.Width), c.Width)
		if c.Field != "" && s.Active() && s.Field() == c.Field {
			cells[i] = theme.Sorted.Render(cell)
			continue
		}
		cells[i] = theme.Header.Render(cell)
	}
	return strings.Join(cells, columnGap)
}

// Row renders a single record. Newlines in the body are flattened.
func Row(r domain.Record, width int, alt bool, theme Theme) string {
	cols := Layout(width)
	values := []string{
		strconv.Itoa(r.GroupID),
		r.DisplayName,
		r.ContactAddress,
		flatten(r.BodyText),
	}
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = pad(truncate(values[i], c.Width), c.Width)
	}
	style := theme.Row
	if alt {
		style = theme.RowAlt
	}
	return style.Render(strings.Join(cells, columnGap))
}

// Table renders the header followed by one line per record.
func Table(records []domain.Record, s viewstate.Sort, width int, theme Theme) string {
	var b strings.Builder
	b.WriteString(Header(s, width, theme))
	for i, r := range records {
		b.WriteString("\n")
		b.WriteString(Row(r, width, i%2 == 1, theme))
	}
	return b.String()
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + ellipsis
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

package state

import (
	"strings"

	"github.com/cristianoliveira/commentview/internal/tui/render"
)

const appTitle = "Comments"

// View returns the rendered view as a string.
func (m *Model) View() string {
	if m.screen == screenProfile {
		return m.viewProfile()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(appTitle))
	b.WriteString("\n\n")

	switch m.recordsState {
	case loadPending:
		b.WriteString(render.Loading(m.spinner.View(), "records", m.theme))
		b.WriteString("\n")
		return b.String()
	case loadFailed:
		b.WriteString(render.LoadFailed("records", m.recordsErr, m.theme))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render("q: quit"))
		return b.String()
	}

	b.WriteString(render.Table(m.view.Page, m.prefs.View.Sort, m.width, m.theme))
	b.WriteString("\n")
	if hint := render.EmptyPageHint(m.view, m.prefs.View, m.theme); hint != "" {
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(render.Pager(m.pager(), m.theme))
	b.WriteString("  ")
	b.WriteString(m.theme.Muted.Render(render.Summary(m.view, m.prefs.View, len(m.records))))
	b.WriteString("\n")

	if status := render.StatusLine(m.status, m.theme); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(render.Footer(render.FooterState{
		SearchMode:  m.searching,
		SearchInput: m.input.View(),
		JumpMode:    m.jumping,
		JumpInput:   m.pageInput.View(),
		SearchTerm:  m.prefs.View.SearchTerm,
		PageSize:    m.prefs.View.PageSize,
		Width:       m.width,
	}, m.theme))
	return b.String()
}

func (m *Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Profile"))
	b.WriteString("\n")

	switch m.profileState {
	case loadPending:
		b.WriteString(render.Loading(m.spinner.View(), "profile", m.theme))
		b.WriteString("\n")
	case loadFailed:
		b.WriteString(render.LoadFailed("profile", m.profileErr, m.theme))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	if status := render.StatusLine(m.status, m.theme); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Muted.Render("Esc: back  |  ↑/↓: scroll  |  t: theme  |  q: quit"))
	return b.String()
}

package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/viewstate"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.jumping {
		return m.handleJumpKey(msg)
	}
	if m.screen == screenProfile {
		return m.handleProfileKey(msg)
	}
	return m.handleListKey(msg)
}

// handleSearchKey feeds the text input and applies the term on every change.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if term := m.input.Value(); term != before {
		return m, tea.Batch(cmd, m.setView(viewstate.OnSearchChanged(m.prefs.View, term)))
	}
	return m, cmd
}

// handleJumpKey reads a page number. Only pages the pager shows are accepted.
func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endJump()
		return m, nil
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.pageInput.Value())
		m.endJump()
		if raw == "" {
			return m, nil
		}
		page, err := strconv.Atoi(raw)
		if err != nil || !m.pager().Offers(page) {
			return m, m.flashError(fmt.Sprintf("page %s is not in the pager", raw))
		}
		return m, m.requestPage(page)
	}

	var cmd tea.Cmd
	m.pageInput, cmd = m.pageInput.Update(msg)
	return m, cmd
}

func (m *Model) endJump() {
	m.jumping = false
	m.pageInput.Blur()
	m.pageInput.SetValue("")
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.prefs.View
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.input.SetValue(view.SearchTerm)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		if view.SearchTerm == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.setView(viewstate.OnSearchChanged(view, ""))
	case key.Matches(msg, m.keys.SortGroup):
		return m, m.setView(viewstate.OnSortHeaderActivated(view, domain.FieldGroupID))
	case key.Matches(msg, m.keys.SortName):
		return m, m.setView(viewstate.OnSortHeaderActivated(view, domain.FieldDisplayName))
	case key.Matches(msg, m.keys.SortEmail):
		return m, m.setView(viewstate.OnSortHeaderActivated(view, domain.FieldContactAddress))
	case key.Matches(msg, m.keys.PageSize):
		return m, m.setView(viewstate.OnPageSizeChanged(view, viewstate.NextPageSize(view.PageSize)))
	case key.Matches(msg, m.keys.PrevPage):
		if m.pager().PrevDisabled {
			return m, nil
		}
		return m, m.setView(viewstate.OnPageRequested(view, view.CurrentPage-1))
	case key.Matches(msg, m.keys.NextPage):
		if m.pager().NextDisabled {
			return m, nil
		}
		return m, m.setView(viewstate.OnPageRequested(view, view.CurrentPage+1))
	case key.Matches(msg, m.keys.FirstPage):
		return m, m.requestPage(1)
	case key.Matches(msg, m.keys.LastPage):
		if m.view.TotalPages == 0 {
			return m, nil
		}
		return m, m.requestPage(m.view.TotalPages)
	case key.Matches(msg, m.keys.JumpPage):
		if m.view.TotalPages == 0 {
			return m, nil
		}
		m.jumping = true
		return m, m.pageInput.Focus()
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Profile):
		return m, m.openProfile()
	}
	return m, nil
}

func (m *Model) requestPage(page int) tea.Cmd {
	if page == m.prefs.View.CurrentPage {
		return nil
	}
	return m.setView(viewstate.OnPageRequested(m.prefs.View, page))
}

// openProfile switches to the profile screen. The profile is fetched the
// first time only; a failed fetch is retried on the next open.
func (m *Model) openProfile() tea.Cmd {
	m.screen = screenProfile
	switch m.profileState {
	case loadIdle, loadFailed:
		m.profileState = loadPending
		m.profileErr = nil
		return tea.Batch(m.spinner.Tick, fetchProfileCmd(m.ctx, m.src))
	}
	return nil
}

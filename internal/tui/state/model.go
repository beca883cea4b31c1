// Package state holds the bubbletea model for the interactive viewer.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/engine"
	"github.com/cristianoliveira/commentview/internal/errors"
	"github.com/cristianoliveira/commentview/internal/logging"
	"github.com/cristianoliveira/commentview/internal/search"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/source"
	"github.com/cristianoliveira/commentview/internal/storage"
	"github.com/cristianoliveira/commentview/internal/tui/render"
	"github.com/cristianoliveira/commentview/internal/viewstate"
)

const (
	defaultViewportWidth  = 100
	defaultViewportHeight = 24
	// chromeLines is the number of lines around the profile viewport.
	chromeLines        = 4
	statusClearTimeout = 4 * time.Second
)

type screen int

const (
	screenList screen = iota
	screenProfile
)

type loadState int

const (
	loadIdle loadState = iota
	loadPending
	loadDone
	loadFailed
)

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx    context.Context
	src    source.Source
	store  storage.Store
	search search.Provider

	prefs settings.Preferences
	theme render.Theme

	records      []domain.Record
	recordsState loadState
	recordsErr   error
	view         engine.View

	profile      domain.Profile
	profileState loadState
	profileErr   error

	keys      keyMap
	screen    screen
	searching bool
	input     textinput.Model
	jumping   bool
	pageInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	width     int
	height    int

	errorHandler *errors.TUIHandler
	status       errors.Message
	statusSeq    int
}

// Options configures NewModel.
type Options struct {
	Source      source.Source
	Store       storage.Store
	Preferences settings.Preferences
	// Search filters the records. Defaults to the case-insensitive
	// substring search over every text field.
	Search search.Provider
	// Context bounds the fetches. Defaults to context.Background.
	Context context.Context
}

// NewModel creates the model in its loading state.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	provider := opts.Search
	if provider == nil {
		provider = search.NewSubstringProvider()
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search name, email or body"
	input.CharLimit = 256

	pageInput := textinput.New()
	pageInput.Prompt = "page: "
	pageInput.CharLimit = 9
	pageInput.Width = 10

	m := &Model{
		ctx:          ctx,
		src:          opts.Source,
		store:        opts.Store,
		search:       provider,
		prefs:        opts.Preferences,
		theme:        render.ThemeFor(opts.Preferences.DarkMode),
		recordsState: loadPending,
		keys:         defaultKeyMap(),
		input:        input,
		pageInput:    pageInput,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:     viewport.New(defaultViewportWidth, defaultViewportHeight-chromeLines),
		width:        defaultViewportWidth,
		height:       defaultViewportHeight,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
		m.statusSeq++
	})
	m.derive()
	return m
}

// Init starts the record fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchRecordsCmd(m.ctx, m.src))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil
	case RecordsLoadedMsg:
		m.records = msg.Records
		m.recordsState = loadDone
		m.derive()
		logging.Info("records loaded", "count", len(msg.Records))
		return m, nil
	case RecordsFailedMsg:
		m.recordsState = loadFailed
		m.recordsErr = msg.Err
		m.records = nil
		m.derive()
		logging.Error("failed to load records", "error", msg.Err)
		return m, nil
	case ProfileLoadedMsg:
		m.profile = msg.Profile
		m.profileState = loadDone
		m.refreshProfile()
		return m, nil
	case ProfileFailedMsg:
		m.profileState = loadFailed
		m.profileErr = msg.Err
		logging.Error("failed to load profile", "error", msg.Err)
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = errors.Message{}
		}
		return m, nil
	}
	if m.screen == screenProfile {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Preferences returns the current preferences.
func (m *Model) Preferences() settings.Preferences {
	return m.prefs
}

// CurrentView returns the last derived view.
func (m *Model) CurrentView() engine.View {
	return m.view
}

func (m *Model) loading() bool {
	return m.recordsState == loadPending || m.profileState == loadPending
}

// derive recomputes the visible page from the records and view state.
func (m *Model) derive() {
	m.view = engine.DeriveWith(m.search, m.records, m.prefs.View)
}

func (m *Model) pager() engine.Pager {
	return engine.Window(m.prefs.View.CurrentPage, m.view.TotalPages)
}

// setView applies a view state transition, re-derives and persists it.
func (m *Model) setView(next viewstate.ViewState) tea.Cmd {
	m.prefs = m.prefs.WithView(next)
	m.derive()
	if m.store == nil {
		return nil
	}
	if err := settings.SaveViewState(m.ctx, m.store, next); err != nil {
		logging.Warn("failed to save view state", "error", err)
		return m.flashError(fmt.Sprintf("view not saved: %v", err))
	}
	return nil
}

func (m *Model) toggleTheme() tea.Cmd {
	m.prefs = m.prefs.ToggleTheme()
	m.theme = render.ThemeFor(m.prefs.DarkMode)
	m.refreshProfile()
	if m.store != nil {
		if err := settings.SaveDisplayTheme(m.ctx, m.store, m.prefs.DarkMode); err != nil {
			logging.Warn("failed to save theme", "error", err)
			return m.flashError(fmt.Sprintf("theme not saved: %v", err))
		}
	}
	m.errorHandler.Info("theme: " + m.prefs.Theme())
	return clearStatusAfter(statusClearTimeout, m.statusSeq)
}

func (m *Model) flashError(text string) tea.Cmd {
	m.errorHandler.Error(text)
	return clearStatusAfter(statusClearTimeout, m.statusSeq)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	if m.width <= 0 {
		m.width = defaultViewportWidth
	}
	m.height = msg.Height
	if m.height <= 0 {
		m.height = defaultViewportHeight
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-chromeLines)
	m.input.Width = max(10, m.width-len(m.input.Prompt)-1)
	m.refreshProfile()
}

// refreshProfile re-renders the profile into the viewport.
func (m *Model) refreshProfile() {
	if m.profileState != loadDone {
		return
	}
	content, err := render.Profile(m.profile, m.width, m.theme)
	if err != nil {
		logging.Warn("profile rendered as plain markdown", "error", err)
	}
	m.viewport.SetContent(content)
}

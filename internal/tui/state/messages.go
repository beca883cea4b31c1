package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/source"
)

// RecordsLoadedMsg is sent when the record collection has been fetched.
type RecordsLoadedMsg struct {
	Records []domain.Record
}

// RecordsFailedMsg is sent when fetching the record collection failed.
type RecordsFailedMsg struct {
	Err error
}

// ProfileLoadedMsg is sent when the profile has been fetched.
type ProfileLoadedMsg struct {
	Profile domain.Profile
}

// ProfileFailedMsg is sent when fetching the profile failed.
type ProfileFailedMsg struct {
	Err error
}

// clearStatusMsg clears the status line if no newer message replaced it.
type clearStatusMsg struct {
	seq int
}

func fetchRecordsCmd(ctx context.Context, src source.Source) tea.Cmd {
	return func() tea.Msg {
		records, err := src.FetchRecords(ctx)
		if err != nil {
			return RecordsFailedMsg{Err: err}
		}
		return RecordsLoadedMsg{Records: records}
	}
}

func fetchProfileCmd(ctx context.Context, src source.Source) tea.Cmd {
	return func() tea.Msg {
		profile, err := src.FetchProfile(ctx)
		if err != nil {
			return ProfileFailedMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

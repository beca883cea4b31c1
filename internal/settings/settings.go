// Package settings loads and saves the user's view preferences.
//
// Two values are persisted through a storage.Store:
//
//	dashboardState  {"searchTerm":"","currentPage":1,"pageSize":10,"sortField":null,"sortDirection":null}
//	darkMode        true | false
//
// Persistence is best-effort: unreadable values fall back to defaults and
// are logged, never surfaced.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/commentview/internal/config"
	"github.com/cristianoliveira/commentview/internal/logging"
	"github.com/cristianoliveira/commentview/internal/storage"
	"github.com/cristianoliveira/commentview/internal/viewstate"
)

// Storage keys.
const (
	KeyViewState = "dashboardState"
	KeyDarkMode  = "darkMode"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Defaults are the values used when nothing has been persisted.
type Defaults struct {
	PageSize int
	DarkMode bool
}

// DefaultsFromConfig reads default_page_size and default_theme.
func DefaultsFromConfig() Defaults {
	return Defaults{
		PageSize: config.GetInt("default_page_size", viewstate.DefaultPageSize),
		DarkMode: config.Get("default_theme", ThemeLight) == ThemeDark,
	}
}

// Preferences is everything the user can change that outlives a session.
type Preferences struct {
	View     viewstate.ViewState `json:"view" yaml:"view"`
	DarkMode bool                `json:"darkMode" yaml:"darkMode"`
}

// DefaultPreferences returns the preferences for a first run.
func DefaultPreferences(d Defaults) Preferences {
	return Preferences{
		View:     viewstate.WithDefaultPageSize(d.PageSize),
		DarkMode: d.DarkMode,
	}
}

// WithView returns p with its view state replaced.
func (p Preferences) WithView(v viewstate.ViewState) Preferences {
	p.View = v
	return p
}

// ToggleTheme returns p with the display theme flipped.
func (p Preferences) ToggleTheme() Preferences {
	p.DarkMode = !p.DarkMode
	return p
}

// Theme returns the theme name.
func (p Preferences) Theme() string {
	if p.DarkMode {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme converts "light" or "dark" to the dark-mode flag.
func ParseTheme(name string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		return false, nil
	case ThemeDark:
		return true, nil
	default:
		return false, fmt.Errorf("invalid theme %q: must be %s or %s", name, ThemeLight, ThemeDark)
	}
}

// Load reads both persisted values.
func Load(ctx context.Context, store storage.Store, d Defaults) Preferences {
	return Preferences{
		View:     LoadViewState(ctx, store, d),
		DarkMode: LoadDisplayTheme(ctx, store, d),
	}
}

// Save writes both values.
func Save(ctx context.Context, store storage.Store, p Preferences) error {
	if err := SaveViewState(ctx, store, p.View); err != nil {
		return err
	}
	return SaveDisplayTheme(ctx, store, p.DarkMode)
}

// Reset removes both values so the next Load returns defaults.
func Reset(ctx context.Context, store storage.Store) error {
	for _, key := range []string{KeyViewState, KeyDarkMode} {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// LoadViewState returns the persisted view state, or the defaults when it
// is absent or unreadable.
func LoadViewState(ctx context.Context, store storage.Store, d Defaults) viewstate.ViewState {
	fallback := viewstate.WithDefaultPageSize(d.PageSize)
	raw, found, err := store.Get(ctx, KeyViewState)
	if err != nil {
		logging.Warn("failed to read saved view state", "error", err)
		return fallback
	}
	if !found || raw == "" {
		return fallback
	}
	state, err := viewstate.Rehydrate([]byte(raw), true)
	if err != nil {
		logging.Warn("ignoring saved view state", "error", err)
		return fallback
	}
	return state
}

// SaveViewState overwrites the persisted view state.
func SaveViewState(ctx context.Context, store storage.Store, v viewstate.ViewState) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode view state: %w", err)
	}
	if err := store.Set(ctx, KeyViewState, string(data)); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

// LoadDisplayTheme returns the persisted dark-mode flag.
func LoadDisplayTheme(ctx context.Context, store storage.Store, d Defaults) bool {
	raw, found, err := store.Get(ctx, KeyDarkMode)
	if err != nil {
		logging.Warn("failed to read saved theme", "error", err)
		return d.DarkMode
	}
	if !found {
		return d.DarkMode
	}
	dark, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		logging.Warn("ignoring saved theme", "value", raw, "error", err)
		return d.DarkMode
	}
	return dark
}

// SaveDisplayTheme overwrites the persisted dark-mode flag.
func SaveDisplayTheme(ctx context.Context, store storage.Store, dark bool) error {
	if err := store.Set(ctx, KeyDarkMode, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefsCmdPanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewPrefsCmd(nil) })
}

func TestPrefsShowJSON(t *testing.T) {
	client := newFakeClient()
	ctx := context.Background()
	require.NoError(t, settings.SaveViewState(ctx, client.store, viewstate.OnSearchChanged(viewstate.Default(), "bo")))
	require.NoError(t, settings.SaveDisplayTheme(ctx, client.store, true))

	out, err := execute(t, NewPrefsCmd(client), "show")
	require.NoError(t, err)

	var prefs settings.Preferences
	require.NoError(t, json.Unmarshal([]byte(out), &prefs))
	assert.True(t, prefs.DarkMode)
	assert.Equal(t, "bo", prefs.View.SearchTerm)
}

func TestPrefsShowYAML(t *testing.T) {
	out, err := execute(t, NewPrefsCmd(newFakeClient()), "show", "--format", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "darkMode: false")
	assert.Contains(t, out, "pageSize: 10")
	assert.Contains(t, out, "sortField: null")
}

func TestPrefsResetForce(t *testing.T) {
	buf := captureColors(t)
	client := newFakeClient()
	require.NoError(t, settings.SaveDisplayTheme(context.Background(), client.store, true))

	_, err := execute(t, NewPrefsCmd(client), "reset", "--force")

	require.NoError(t, err)
	_, found, err := client.store.Get(context.Background(), settings.KeyDarkMode)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Contains(t, buf.String(), "Preferences reset to defaults")
}

func TestPrefsResetCancelled(t *testing.T) {
	buf := captureColors(t)
	client := newFakeClient()
	require.NoError(t, settings.SaveDisplayTheme(context.Background(), client.store, true))

	_, err := execute(t, NewPrefsCmd(client), "reset")

	require.NoError(t, err)
	_, found, _ := client.store.Get(context.Background(), settings.KeyDarkMode)
	assert.True(t, found)
	assert.Contains(t, buf.String(), "Operation cancelled")
}

func TestConfirmReset(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, confirmReset(bytes.NewBufferString(tt.input), &out))
			assert.Contains(t, out.String(), "(y/N)")
		})
	}
}

func TestPrefsTheme(t *testing.T) {
	captureColors(t)
	client := newFakeClient()
	ctx := context.Background()

	out, err := execute(t, NewPrefsCmd(client), "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = execute(t, NewPrefsCmd(client), "theme", "dark")
	require.NoError(t, err)
	assert.True(t, settings.LoadDisplayTheme(ctx, client.store, settings.Defaults{}))

	_, err = execute(t, NewPrefsCmd(client), "theme", "toggle")
	require.NoError(t, err)
	assert.False(t, settings.LoadDisplayTheme(ctx, client.store, settings.Defaults{}))
}

func TestPrefsThemeRejectsUnknown(t *testing.T) {
	_, err := execute(t, NewPrefsCmd(newFakeClient()), "theme", "sepia")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
}

func TestPrefsStoreUnavailable(t *testing.T) {
	client := newFakeClient()
	client.storeErr = errors.New("locked")

	_, err := execute(t, NewPrefsCmd(client), "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open preferences: locked")
}

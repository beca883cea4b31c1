package search

import (
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/commentview/internal/config"
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testRecord = domain.Record{
	GroupID:        1,
	ID:             1,
	DisplayName:    "id labore ex et quam laborum",
	ContactAddress: "Eliseo@gardner.biz",
	BodyText:       "laudantium enim quasi est quidem magnam voluptate",
}

// TestDefaultOptions verifies default option values.
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.CaseInsensitive)
	assert.Equal(t, []string{"displayName", "contactAddress", "bodyText"}, opts.Fields)
}

// TestOptions verifies option application.
func TestOptions(t *testing.T) {
	opts := applyOptions([]Option{
		WithCaseInsensitive(false),
		WithFields([]string{FieldDisplayName}),
	})

	assert.False(t, opts.CaseInsensitive)
	assert.Equal(t, []string{"displayName"}, opts.Fields)
}

func TestSubstringProvider(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		query string
		want  bool
	}{
		{"empty query matches", nil, "", true},
		{"name match", nil, "labore", true},
		{"email match ignores case", nil, "eliseo@GARDNER", true},
		{"body match", nil, "magnam", true},
		{"no match", nil, "zzz", false},
		{"case sensitive miss", []Option{WithCaseInsensitive(false)}, "ELISEO", false},
		{"case sensitive hit", []Option{WithCaseInsensitive(false)}, "Eliseo", true},
		{"restricted fields skip body", []Option{WithFields([]string{FieldDisplayName})}, "magnam", false},
		{"unknown field never matches", []Option{WithFields([]string{"postId"})}, "1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSubstringProvider(tt.opts...)
			assert.Equal(t, tt.want, p.Match(testRecord, tt.query))
		})
	}
}

func TestSubstringProviderName(t *testing.T) {
	assert.Equal(t, "substring", NewSubstringProvider().Name())
}

func TestMockProvider(t *testing.T) {
	mockProvider := new(MockProvider)
	mockProvider.On("Name").Return("mock-provider")
	mockProvider.On("Match", testRecord, "test").Return(true)
	mockProvider.On("Match", testRecord, "other").Return(func(domain.Record, string) bool { return false })

	assert.Equal(t, "mock-provider", mockProvider.Name())
	assert.True(t, mockProvider.Match(testRecord, "test"))
	assert.False(t, mockProvider.Match(testRecord, "other"))

	mockProvider.AssertExpectations(t)
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, []string{"displayName", "bodyText"}, ParseFields(" displayName, ,bodyText "))
	assert.Empty(t, ParseFields(""))
}

func loadSearchConfig(t *testing.T, fields, caseSensitive string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("COMMENTVIEW_ENV_FILE", "")
	t.Setenv("COMMENTVIEW_CONFIG_PATH", "")
	t.Cleanup(func() {
		config.ResetOverrides()
		config.Load()
	})
	config.Set("search_fields", fields)
	config.Set("search_case_sensitive", caseSensitive)
	config.Load()
}

func TestFromConfigDefaults(t *testing.T) {
	loadSearchConfig(t, "", "")

	p := FromConfig()

	assert.True(t, p.Match(testRecord, "ELISEO"))
	assert.True(t, p.Match(testRecord, "magnam"))
}

func TestFromConfigRestrictsFields(t *testing.T) {
	loadSearchConfig(t, "contactAddress", "true")

	p := FromConfig()

	assert.True(t, p.Match(testRecord, "Eliseo"))
	assert.False(t, p.Match(testRecord, "eliseo"))
	assert.False(t, p.Match(testRecord, "magnam"))
}

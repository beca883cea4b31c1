package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cristianoliveira/commentview/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreImplementations(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"toml": func(t *testing.T) Store {
			s, err := NewFileStore(filepath.Join(t.TempDir(), "preferences.toml"))
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) Store {
			s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "preferences.db"))
			require.NoError(t, err)
			return s
		},
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			defer s.Close()
			ctx := context.Background()

			_, ok, err := s.Get(ctx, "darkMode")
			require.NoError(t, err)
			assert.False(t, ok)

			state := `{"searchTerm":"a \"quoted\" term\n","currentPage":2}`
			require.NoError(t, s.Set(ctx, "dashboardState", state))
			require.NoError(t, s.Set(ctx, "darkMode", "true"))

			v, ok, err := s.Get(ctx, "dashboardState")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, state, v)

			require.NoError(t, s.Delete(ctx, "darkMode"))
			_, ok, err = s.Get(ctx, "darkMode")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.Error(t, s.Set(ctx, "", "x"))
		})
	}
}

func TestFileStoreCancelledContext(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, "darkMode", "true"), context.Canceled)
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), "darkMode")
	assert.Error(t, err)
}

func TestFileStoreConcurrentWrites(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	keys := []string{"a", "b", "c", "d", "e"}
	for _, k := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			assert.NoError(t, s.Set(ctx, k, k+"-value"))
		}(k)
	}
	wg.Wait()

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(keys))
}

func TestLockBlocksSecondHolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x.lock")
	first := NewLock(dir)
	require.NoError(t, first.Acquire())

	second := NewLock(dir)
	second.timeout = 0
	assert.Error(t, second.Acquire())

	require.NoError(t, first.Release())
	require.NoError(t, second.Acquire())
	require.NoError(t, second.Release())
}

func TestNewForBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := NewForBackend("sqlite", dir)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, s)
	require.NoError(t, s.Close())
	assert.FileExists(t, filepath.Join(dir, preferencesDBFileName))

	s, err = NewForBackend("TOML", dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = NewForBackend("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = NewForBackend("redis", dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = NewForBackend("sqlite", "")
	assert.Error(t, err)
}

func TestNewForBackendMigratesTOMLIntoSQLite(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	file, err := NewFileStore(filepath.Join(dir, preferencesTOMLFileName))
	require.NoError(t, err)
	require.NoError(t, file.Set(ctx, "darkMode", "true"))

	s, err := NewForBackend(BackendSQLite, dir)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

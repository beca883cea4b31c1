package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/commentview/internal/colors"
	"github.com/cristianoliveira/commentview/internal/config"
	"github.com/cristianoliveira/commentview/internal/storage/sqlite"
)

const (
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"
	// BackendTOML selects a single TOML file.
	BackendTOML = "toml"
	// BackendMemory keeps preferences for the current process only.
	BackendMemory = "memory"

	preferencesDBFileName   = "preferences.db"
	preferencesTOMLFileName = "preferences.toml"
)

var _ Store = (*sqlite.Store)(nil)

// NewFromConfig creates the store selected by storage_backend under state_dir.
func NewFromConfig() (Store, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite), config.Get("state_dir", ""))
}

// NewForBackend creates a store for backend rooted at stateDir. A SQLite
// store that cannot be opened falls back to the TOML file.
func NewForBackend(backend, stateDir string) (Store, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == BackendMemory {
		return NewMemoryStore(), nil
	}
	if strings.TrimSpace(stateDir) == "" {
		return nil, fmt.Errorf("storage: state_dir not configured")
	}
	if err := os.MkdirAll(stateDir, FileModeDir); err != nil {
		return nil, fmt.Errorf("storage: create state directory: %w", err)
	}
	tomlPath := filepath.Join(stateDir, preferencesTOMLFileName)

	switch backend {
	case "", BackendSQLite:
		dbPath := filepath.Join(stateDir, preferencesDBFileName)
		migrate, err := shouldMigrate(tomlPath, dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("unable to inspect preference files: %v", err))
		}
		store, err := sqlite.NewStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to toml: %v", err))
			return NewFileStore(tomlPath)
		}
		if migrate {
			if err := migrateFileToSQLite(tomlPath, store); err != nil {
				colors.Warning(fmt.Sprintf("preference migration failed: %v", err))
			}
		}
		return store, nil
	case BackendTOML:
		return NewFileStore(tomlPath)
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to toml", backend))
		return NewFileStore(tomlPath)
	}
}

// shouldMigrate reports whether TOML preferences exist and no database does yet.
func shouldMigrate(tomlPath, dbPath string) (bool, error) {
	dbExists, err := pathExists(dbPath)
	if err != nil || dbExists {
		return false, err
	}
	return fileHasContent(tomlPath)
}

func migrateFileToSQLite(tomlPath string, store *sqlite.Store) error {
	file, err := NewFileStore(tomlPath)
	if err != nil {
		return err
	}
	values, err := file.All(context.Background())
	if err != nil {
		return err
	}
	if err := store.Import(context.Background(), values); err != nil {
		return err
	}
	colors.Debug(fmt.Sprintf("migrated %d preferences from %s", len(values), tomlPath))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}

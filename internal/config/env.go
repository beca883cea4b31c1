package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the keys that can be overridden from the environment.
// Unset variables leave their field nil.
type envOverrides struct {
	ConfigDir           *string `env:"CONFIG_DIR"`
	StateDir            *string `env:"STATE_DIR"`
	SourceBaseURL       *string `env:"SOURCE_BASE_URL"`
	SourceDir           *string `env:"SOURCE_DIR"`
	FetchTimeoutSeconds *string `env:"FETCH_TIMEOUT_SECONDS"`
	StorageBackend      *string `env:"STORAGE_BACKEND"`
	DefaultPageSize     *string `env:"DEFAULT_PAGE_SIZE"`
	DefaultTheme        *string `env:"DEFAULT_THEME"`
	SearchFields        *string `env:"SEARCH_FIELDS"`
	SearchCaseSensitive *string `env:"SEARCH_CASE_SENSITIVE"`
	LoggingEnabled      *string `env:"LOGGING_ENABLED"`
	LoggingLevel        *string `env:"LOGGING_LEVEL"`
	LoggingMaxFiles     *string `env:"LOGGING_MAX_FILES"`
	Debug               *string `env:"DEBUG"`
	Quiet               *string `env:"QUIET"`
}

func (o envOverrides) values() map[string]string {
	fields := map[string]*string{
		"config_dir":            o.ConfigDir,
		"state_dir":             o.StateDir,
		"source_base_url":       o.SourceBaseURL,
		"source_dir":            o.SourceDir,
		"fetch_timeout_seconds": o.FetchTimeoutSeconds,
		"storage_backend":       o.StorageBackend,
		"default_page_size":     o.DefaultPageSize,
		"default_theme":         o.DefaultTheme,
		"search_fields":         o.SearchFields,
		"search_case_sensitive": o.SearchCaseSensitive,
		"logging_enabled":       o.LoggingEnabled,
		"logging_level":         o.LoggingLevel,
		"logging_max_files":     o.LoggingMaxFiles,
		"debug":                 o.Debug,
		"quiet":                 o.Quiet,
	}
	values := make(map[string]string, len(fields))
	for key, ptr := range fields {
		if ptr != nil {
			values[key] = *ptr
		}
	}
	return values
}

// parseEnvOverrides reads COMMENTVIEW_* variables into config keys.
func parseEnvOverrides() (map[string]string, error) {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return o.values(), nil
}

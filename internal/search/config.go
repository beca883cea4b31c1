package search

import (
	"strings"

	"github.com/cristianoliveira/commentview/internal/config"
)

// ConfigOptions reads search_fields and search_case_sensitive.
func ConfigOptions() []Option {
	opts := []Option{
		WithCaseInsensitive(!config.GetBool("search_case_sensitive", false)),
	}
	if fields := ParseFields(config.Get("search_fields", "")); len(fields) > 0 {
		opts = append(opts, WithFields(fields))
	}
	return opts
}

// FromConfig returns the substring provider configured by search_fields and
// search_case_sensitive.
func FromConfig() Provider {
	return NewSubstringProvider(ConfigOptions()...)
}

// ParseFields splits a comma-separated field list, dropping blanks.
func ParseFields(raw string) []string {
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

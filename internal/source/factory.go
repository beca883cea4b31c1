package source

import (
	"time"

	"github.com/cristianoliveira/commentview/internal/config"
)

// NewFromConfig creates the configured source. A non-empty source_dir selects
// the file source; otherwise source_base_url is fetched over HTTP.
func NewFromConfig() (Source, error) {
	if dir := config.Get("source_dir", ""); dir != "" {
		return NewFileSource(dir)
	}
	timeout := time.Duration(config.GetInt("fetch_timeout_seconds", 0)) * time.Second
	return NewHTTPSource(config.Get("source_base_url", DefaultBaseURL), timeout)
}

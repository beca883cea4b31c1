// Package search provides the search abstraction used to filter comments.
// Providers decide whether a record matches a query; the record view engine
// applies the configured provider to every record.
package search

import (
	"github.com/cristianoliveira/commentview/internal/domain"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the record matches the search query.
	Match(record domain.Record, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Searchable field names.
const (
	FieldDisplayName    = "displayName"
	FieldContactAddress = "contactAddress"
	FieldBodyText       = "bodyText"
)

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case
	Fields          []string // Fields to search in
}

// DefaultOptions returns the default search options: every text field,
// case-insensitive.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldDisplayName, FieldContactAddress, FieldBodyText},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "displayName", "contactAddress", "bodyText".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValue returns the searchable text of a record field.
func fieldValue(record domain.Record, field string) string {
	switch field {
	case FieldDisplayName:
		return record.DisplayName
	case FieldContactAddress:
		return record.ContactAddress
	case FieldBodyText:
		return record.BodyText
	default:
		return ""
	}
}

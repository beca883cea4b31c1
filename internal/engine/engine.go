// Package engine derives the visible page of records from a record collection
// and a view state. The pipeline is filter, then sort, then paginate; every
// function here is pure and never mutates its input.
package engine

import (
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/search"
	"github.com/cristianoliveira/commentview/internal/viewstate"
)

// View is the result of a derivation.
type View struct {
	// Page holds the visible records.
	Page []domain.Record
	// Offset is the index of the first visible record within the filtered set.
	Offset int
	// TotalFiltered is the number of records left after filtering.
	TotalFiltered int
	// TotalPages is ceil(TotalFiltered / PageSize); 0 when nothing matches.
	TotalPages int
}

// IsEmpty reports whether no record is visible.
func (v View) IsEmpty() bool {
	return len(v.Page) == 0
}

var defaultProvider = search.NewSubstringProvider()

// Derive runs the full pipeline with the default case-insensitive substring
// search over display name, contact address and body text.
func Derive(records []domain.Record, state viewstate.ViewState) View {
	return DeriveWith(defaultProvider, records, state)
}

// DeriveWith runs the full pipeline using provider for the filter step.
func DeriveWith(provider search.Provider, records []domain.Record, state viewstate.ViewState) View {
	filtered := Filter(provider, records, state.SearchTerm)
	sorted := Sort(filtered, state.Sort)
	page, offset := Paginate(sorted, state.CurrentPage, state.PageSize)
	return View{
		Page:          page,
		Offset:        offset,
		TotalFiltered: len(sorted),
		TotalPages:    TotalPages(len(sorted), state.PageSize),
	}
}

// Filter returns the records matching term, in input order. An empty term
// returns a copy of the whole collection.
func Filter(provider search.Provider, records []domain.Record, term string) []domain.Record {
	filtered := make([]domain.Record, 0, len(records))
	if term == "" {
		return append(filtered, records...)
	}
	for _, r := range records {
		if provider.Match(r, term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// TotalPages returns ceil(total / pageSize). A non-positive page size yields 0.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// Paginate returns the records of page (1-based) and the offset of its first
// record. A page outside 1..TotalPages yields an empty slice; the bounds are
// checked before any multiplication so huge persisted values cannot wrap.
func Paginate(records []domain.Record, page, pageSize int) ([]domain.Record, int) {
	if page < 1 || page > TotalPages(len(records), pageSize) {
		return []domain.Record{}, 0
	}
	start := (page - 1) * pageSize
	end := len(records)
	if pageSize < end-start {
		end = start + pageSize
	}
	visible := make([]domain.Record, end-start)
	copy(visible, records[start:end])
	return visible, start
}

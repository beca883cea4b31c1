package viewstate

import "github.com/cristianoliveira/commentview/internal/domain"

// OnSearchChanged sets the search term and returns to the first page.
func OnSearchChanged(s ViewState, term string) ViewState {
	s.SearchTerm = term
	s.CurrentPage = 1
	return s
}

// OnPageSizeChanged sets the page size and returns to the first page.
func OnPageSizeChanged(s ViewState, size int) ViewState {
	s.PageSize = size
	s.CurrentPage = 1
	return s
}

// OnSortHeaderActivated advances the tri-state sort cycle for field:
// a different (or no) field starts ascending, ascending becomes descending,
// descending clears the sort. The current page is kept.
func OnSortHeaderActivated(s ViewState, field domain.Field) ViewState {
	if !s.Sort.Active() || s.Sort.Field() != field {
		s.Sort = SortBy(field, Ascending)
		return s
	}
	switch s.Sort.Direction() {
	case Ascending:
		s.Sort = SortBy(field, Descending)
	default:
		s.Sort = NoSort()
	}
	return s
}

// OnPageRequested sets the current page verbatim. Callers only pass page
// numbers produced by the pager.
func OnPageRequested(s ViewState, page int) ViewState {
	s.CurrentPage = page
	return s
}

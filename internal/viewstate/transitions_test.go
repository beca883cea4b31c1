package viewstate

import (
	"testing"

	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOnSearchChangedResetsPage(t *testing.T) {
	start := ViewState{
		SearchTerm:  "old",
		CurrentPage: 7,
		PageSize:    50,
		Sort:        SortBy(domain.FieldGroupID, Descending),
	}

	next := OnSearchChanged(start, "new")

	assert.Equal(t, "new", next.SearchTerm)
	assert.Equal(t, 1, next.CurrentPage)
	assert.Equal(t, 50, next.PageSize)
	assert.Equal(t, start.Sort, next.Sort)
	// input is untouched
	assert.Equal(t, "old", start.SearchTerm)
	assert.Equal(t, 7, start.CurrentPage)
}

func TestOnPageSizeChangedResetsPage(t *testing.T) {
	start := ViewState{SearchTerm: "q", CurrentPage: 4, PageSize: 10}

	next := OnPageSizeChanged(start, 100)

	assert.Equal(t, 100, next.PageSize)
	assert.Equal(t, 1, next.CurrentPage)
	assert.Equal(t, "q", next.SearchTerm)
}

func TestOnSortHeaderActivatedTriStateCycle(t *testing.T) {
	s := Default()
	s.CurrentPage = 3

	s = OnSortHeaderActivated(s, domain.FieldDisplayName)
	assert.Equal(t, SortBy(domain.FieldDisplayName, Ascending), s.Sort)

	s = OnSortHeaderActivated(s, domain.FieldDisplayName)
	assert.Equal(t, SortBy(domain.FieldDisplayName, Descending), s.Sort)

	s = OnSortHeaderActivated(s, domain.FieldDisplayName)
	assert.Equal(t, NoSort(), s.Sort)
	assert.False(t, s.Sort.Active())

	assert.Equal(t, 3, s.CurrentPage, "sort changes keep the page position")
}

func TestOnSortHeaderActivatedDifferentFieldRestartsAscending(t *testing.T) {
	starts := []Sort{
		NoSort(),
		SortBy(domain.FieldDisplayName, Ascending),
		SortBy(domain.FieldDisplayName, Descending),
	}
	for _, sort := range starts {
		t.Run(sort.String(), func(t *testing.T) {
			s := ViewState{CurrentPage: 5, PageSize: 10, Sort: sort}

			next := OnSortHeaderActivated(s, domain.FieldContactAddress)

			assert.Equal(t, SortBy(domain.FieldContactAddress, Ascending), next.Sort)
			assert.Equal(t, 5, next.CurrentPage)
		})
	}
}

func TestOnPageRequestedIsVerbatim(t *testing.T) {
	s := Default()

	assert.Equal(t, 42, OnPageRequested(s, 42).CurrentPage)
	assert.Equal(t, 0, OnPageRequested(s, 0).CurrentPage)
}

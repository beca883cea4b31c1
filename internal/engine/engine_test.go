package engine

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/search"
	"github.com/cristianoliveira/commentview/internal/viewstate"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func scenarioRecords() []domain.Record {
	return []domain.Record{
		{ID: 1, GroupID: 2, DisplayName: "Bob", ContactAddress: "bob@example.com", BodyText: "first"},
		{ID: 2, GroupID: 1, DisplayName: "ann", ContactAddress: "ann@example.com", BodyText: "second"},
		{ID: 3, GroupID: 1, DisplayName: "Cid", ContactAddress: "cid@example.com", BodyText: "third"},
	}
}

// generatedRecords builds n records with deliberately repeated keys.
func generatedRecords(n int) []domain.Record {
	names := []string{"alpha", "Bravo", "charlie", "ALPHA", "delta"}
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			ID:             i + 1,
			GroupID:        (i % 7) + 1,
			DisplayName:    names[i%len(names)],
			ContactAddress: fmt.Sprintf("user%d@Mail%d.org", i%4, i%3),
			BodyText:       fmt.Sprintf("body %d", i),
		}
	}
	return records
}

func ids(records []domain.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestDeriveSortsByGroupAscendingWithStableTies(t *testing.T) {
	state := viewstate.ViewState{
		CurrentPage: 1,
		PageSize:    10,
		Sort:        viewstate.SortBy(domain.FieldGroupID, viewstate.Ascending),
	}

	view := Derive(scenarioRecords(), state)

	assert.Equal(t, []int{2, 3, 1}, ids(view.Page))
	assert.Equal(t, 3, view.TotalFiltered)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 0, view.Offset)
}

func TestDeriveFiltersCaseInsensitively(t *testing.T) {
	state := viewstate.OnSearchChanged(viewstate.Default(), "bo")

	view := Derive(scenarioRecords(), state)

	assert.Equal(t, []int{1}, ids(view.Page))
	assert.Equal(t, 1, view.TotalFiltered)
	assert.Equal(t, 1, view.TotalPages)
}

func TestDeriveIsIdempotent(t *testing.T) {
	records := generatedRecords(137)
	state := viewstate.ViewState{
		SearchTerm:  "mail1",
		CurrentPage: 2,
		PageSize:    10,
		Sort:        viewstate.SortBy(domain.FieldDisplayName, viewstate.Descending),
	}

	first := Derive(records, state)
	second := Derive(records, state)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Derive is not referentially transparent (-first +second):\n%s", diff)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	records := scenarioRecords()
	before := ids(records)

	view := Derive(records, viewstate.ViewState{
		CurrentPage: 1,
		PageSize:    10,
		Sort:        viewstate.SortBy(domain.FieldDisplayName, viewstate.Descending),
	})
	view.Page[0].DisplayName = "changed"

	assert.Equal(t, before, ids(records))
	assert.Equal(t, "Bob", records[0].DisplayName)
}

func TestFilterCorrectness(t *testing.T) {
	records := generatedRecords(60)
	provider := search.NewSubstringProvider()

	for _, term := range []string{"alpha", "MAIL2", "body 1", "bravo", "nothing-here"} {
		t.Run(term, func(t *testing.T) {
			filtered := Filter(provider, records, term)

			kept := make(map[int]bool, len(filtered))
			for _, r := range filtered {
				kept[r.ID] = true
			}
			lower := strings.ToLower(term)
			for _, r := range records {
				matches := strings.Contains(strings.ToLower(r.DisplayName), lower) ||
					strings.Contains(strings.ToLower(r.ContactAddress), lower) ||
					strings.Contains(strings.ToLower(r.BodyText), lower)
				assert.Equal(t, matches, kept[r.ID], "record %d", r.ID)
			}
		})
	}
}

func TestFilterEmptyTermKeepsInput(t *testing.T) {
	records := generatedRecords(25)

	filtered := Filter(search.NewSubstringProvider(), records, "")

	assert.Equal(t, records, filtered)
}

func TestFilterUsesProvider(t *testing.T) {
	records := scenarioRecords()
	provider := new(search.MockProvider)
	provider.On("Match", records[0], "q").Return(false)
	provider.On("Match", records[1], "q").Return(true)
	provider.On("Match", records[2], "q").Return(true)

	view := DeriveWith(provider, records, viewstate.OnSearchChanged(viewstate.Default(), "q"))

	assert.Equal(t, []int{2, 3}, ids(view.Page))
	provider.AssertExpectations(t)
}

func TestSortStability(t *testing.T) {
	records := generatedRecords(90)

	for _, field := range domain.SortableFields {
		for _, dir := range []viewstate.Direction{viewstate.Ascending, viewstate.Descending} {
			t.Run(fmt.Sprintf("%s_%s", field, dir), func(t *testing.T) {
				sorted := Sort(records, viewstate.SortBy(field, dir))
				require.Len(t, sorted, len(records))

				for i := 1; i < len(sorted); i++ {
					c := compareByField(sorted[i-1], sorted[i], field)
					if dir == viewstate.Ascending {
						require.LessOrEqual(t, c, 0, "out of order at %d", i)
					} else {
						require.GreaterOrEqual(t, c, 0, "out of order at %d", i)
					}
					if c == 0 {
						// generated IDs follow input order
						require.Less(t, sorted[i-1].ID, sorted[i].ID, "tie reordered at %d", i)
					}
				}
			})
		}
	}
}

func TestSortTextFieldsIgnoreCase(t *testing.T) {
	records := []domain.Record{
		{ID: 1, DisplayName: "beta"},
		{ID: 2, DisplayName: "Alpha"},
		{ID: 3, DisplayName: "alpha"},
		{ID: 4, DisplayName: "Beta"},
	}

	asc := Sort(records, viewstate.SortBy(domain.FieldDisplayName, viewstate.Ascending))
	desc := Sort(records, viewstate.SortBy(domain.FieldDisplayName, viewstate.Descending))

	assert.Equal(t, []int{2, 3, 1, 4}, ids(asc))
	assert.Equal(t, []int{1, 4, 2, 3}, ids(desc))
}

func TestSortNoSortKeepsOrder(t *testing.T) {
	records := scenarioRecords()

	assert.Equal(t, []int{1, 2, 3}, ids(Sort(records, viewstate.NoSort())))
	assert.Equal(t, []int{1, 2, 3}, ids(Sort(records, viewstate.SortBy("bogus", viewstate.Ascending))))
}

func TestPaginationCompleteness(t *testing.T) {
	records := generatedRecords(237)

	for _, size := range viewstate.PageSizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			state := viewstate.ViewState{
				SearchTerm: "a",
				PageSize:   size,
				Sort:       viewstate.SortBy(domain.FieldContactAddress, viewstate.Ascending),
			}
			expected := Sort(Filter(search.NewSubstringProvider(), records, "a"), state.Sort)

			first := Derive(records, viewstate.OnPageRequested(state, 1))
			var all []domain.Record
			for page := 1; page <= first.TotalPages; page++ {
				view := Derive(records, viewstate.OnPageRequested(state, page))
				assert.Equal(t, (page-1)*size, view.Offset)
				all = append(all, view.Page...)
			}

			assert.Equal(t, ids(expected), ids(all))
			assert.Equal(t, len(expected), first.TotalFiltered)
		})
	}
}

func TestDeriveNoMatchesHasZeroPages(t *testing.T) {
	view := Derive(scenarioRecords(), viewstate.OnSearchChanged(viewstate.Default(), "zzz"))

	assert.Equal(t, 0, view.TotalFiltered)
	assert.Equal(t, 0, view.TotalPages)
	assert.True(t, view.IsEmpty())
	assert.NotNil(t, view.Page)
}

func TestDeriveOutOfRangeStateYieldsEmptyPage(t *testing.T) {
	records := generatedRecords(30)
	tests := []struct {
		name       string
		state      viewstate.ViewState
		totalPages int
	}{
		{"page beyond total", viewstate.ViewState{CurrentPage: 9, PageSize: 10}, 3},
		{"page zero", viewstate.ViewState{CurrentPage: 0, PageSize: 10}, 3},
		{"negative page", viewstate.ViewState{CurrentPage: -2, PageSize: 10}, 3},
		{"zero page size", viewstate.ViewState{CurrentPage: 1, PageSize: 0}, 0},
		{"negative page size", viewstate.ViewState{CurrentPage: 1, PageSize: -10}, 0},
		{"product wraps around", viewstate.ViewState{CurrentPage: 1<<32 + 1, PageSize: 1 << 32}, 1},
		{"max page", viewstate.ViewState{CurrentPage: math.MaxInt, PageSize: 10}, 3},
		{"max page and size", viewstate.ViewState{CurrentPage: math.MaxInt, PageSize: math.MaxInt}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Derive(records, tt.state)

			assert.Empty(t, view.Page)
			assert.Equal(t, 0, view.Offset)
			assert.Equal(t, 30, view.TotalFiltered)
			assert.Equal(t, tt.totalPages, view.TotalPages)
		})
	}
}

func TestDeriveRehydratedHugeValuesYieldsEmptyPage(t *testing.T) {
	state, err := viewstate.Rehydrate([]byte(`{"currentPage":4294967297,"pageSize":4294967296}`), true)
	require.NoError(t, err)

	view := Derive(scenarioRecords(), state)

	assert.Empty(t, view.Page)
	assert.Equal(t, 3, view.TotalFiltered)
	assert.Equal(t, 1, view.TotalPages)
}

func TestPaginateHugePageSizeShowsEverything(t *testing.T) {
	records := generatedRecords(5)

	page, offset := Paginate(records, 1, math.MaxInt)

	assert.Len(t, page, 5)
	assert.Equal(t, 0, offset)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(500, 100))
	assert.Equal(t, 0, TotalPages(5, 0))
	assert.Equal(t, 1, TotalPages(5, math.MaxInt))
	assert.Equal(t, math.MaxInt, TotalPages(math.MaxInt, 1))
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowMiddleOfManyPages(t *testing.T) {
	p := Window(7, 12)

	assert.Equal(t, []int{5, 6, 7, 8, 9}, p.Pages())
	assert.True(t, p.ShowFirst)
	assert.True(t, p.LeadingEllipsis)
	assert.True(t, p.ShowLast)
	assert.True(t, p.TrailingEllipsis)
	assert.False(t, p.PrevDisabled)
	assert.False(t, p.NextDisabled)

	assert.Equal(t, []Item{
		{Kind: ItemPrev, Page: 6},
		{Kind: ItemPage, Page: 1},
		{Kind: ItemEllipsis, Disabled: true},
		{Kind: ItemPage, Page: 5},
		{Kind: ItemPage, Page: 6},
		{Kind: ItemPage, Page: 7, Current: true},
		{Kind: ItemPage, Page: 8},
		{Kind: ItemPage, Page: 9},
		{Kind: ItemEllipsis, Disabled: true},
		{Kind: ItemPage, Page: 12},
		{Kind: ItemNext, Page: 8},
	}, p.Items())
}

func TestWindowEdges(t *testing.T) {
	tests := []struct {
		name             string
		current, total   int
		pages            []int
		first, leading   bool
		last, trailing   bool
		prevOff, nextOff bool
	}{
		{"first page", 1, 12, []int{1, 2, 3, 4, 5}, false, false, true, true, true, false},
		{"last page shifts window left", 12, 12, []int{8, 9, 10, 11, 12}, true, true, false, false, false, true},
		{"near end", 11, 12, []int{8, 9, 10, 11, 12}, true, true, false, false, false, false},
		{"start 2 has no leading ellipsis", 4, 12, []int{2, 3, 4, 5, 6}, true, false, true, true, false, false},
		{"end one before last has no trailing ellipsis", 9, 12, []int{7, 8, 9, 10, 11}, true, true, true, false, false, false},
		{"fewer pages than window", 2, 3, []int{1, 2, 3}, false, false, false, false, false, false},
		{"single page", 1, 1, []int{1}, false, false, false, false, true, true},
		{"no pages", 1, 0, nil, false, false, false, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Window(tt.current, tt.total)

			assert.Equal(t, tt.pages, p.Pages())
			assert.Equal(t, tt.first, p.ShowFirst, "first")
			assert.Equal(t, tt.leading, p.LeadingEllipsis, "leading ellipsis")
			assert.Equal(t, tt.last, p.ShowLast, "last")
			assert.Equal(t, tt.trailing, p.TrailingEllipsis, "trailing ellipsis")
			assert.Equal(t, tt.prevOff, p.PrevDisabled, "prev disabled")
			assert.Equal(t, tt.nextOff, p.NextDisabled, "next disabled")
		})
	}
}

func TestWindowIsBounded(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			p := Window(current, total)
			pages := p.Pages()
			assert.LessOrEqual(t, len(pages), WindowWidth)
			assert.Contains(t, pages, current)
			// prev, next, first, last and two ellipses at most
			assert.LessOrEqual(t, len(p.Items()), WindowWidth+6)
		}
	}
}

func TestWindowPageBeyondTotal(t *testing.T) {
	p := Window(9, 3)

	assert.Equal(t, []int{1, 2, 3}, p.Pages())
	assert.True(t, p.NextDisabled)
	assert.False(t, p.PrevDisabled)
}

func TestPagerOffers(t *testing.T) {
	p := Window(7, 12)

	for _, page := range []int{1, 5, 7, 9, 12} {
		assert.True(t, p.Offers(page), "page %d", page)
	}
	for _, page := range []int{0, 2, 4, 10, 11, 13, -1} {
		assert.False(t, p.Offers(page), "page %d", page)
	}
	assert.False(t, Window(1, 0).Offers(1))
}

package engine

// WindowWidth is the number of page controls shown around the current page.
const WindowWidth = 5

// Pager describes the bounded pagination control for a view.
type Pager struct {
	Current int
	Total   int
	// Start and End bound the window of numbered pages (inclusive).
	// End < Start when there are no pages.
	Start int
	End   int

	ShowFirst        bool
	LeadingEllipsis  bool
	ShowLast         bool
	TrailingEllipsis bool

	PrevDisabled bool
	NextDisabled bool
}

// Window computes the pager for current page out of total pages.
func Window(current, total int) Pager {
	start := max(1, current-WindowWidth/2)
	end := min(total, start+WindowWidth-1)
	if end-start+1 < WindowWidth {
		start = max(1, end-WindowWidth+1)
	}

	return Pager{
		Current:          current,
		Total:            total,
		Start:            start,
		End:              end,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		ShowLast:         end < total,
		TrailingEllipsis: end < total-1,
		PrevDisabled:     current <= 1,
		NextDisabled:     current >= total,
	}
}

// Pages returns the numbered pages of the window.
func (p Pager) Pages() []int {
	if p.End < p.Start {
		return nil
	}
	pages := make([]int, 0, p.End-p.Start+1)
	for i := p.Start; i <= p.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

// ItemKind identifies a pager control.
type ItemKind int

const (
	ItemPrev ItemKind = iota
	ItemPage
	ItemEllipsis
	ItemNext
)

// Item is a single pager control in display order.
type Item struct {
	Kind ItemKind
	// Page is the page requested when the control is activated.
	Page     int
	Current  bool
	Disabled bool
}

// Items flattens the pager into controls: previous, optional first page and
// ellipsis, the window, optional ellipsis and last page, next.
func (p Pager) Items() []Item {
	items := []Item{{Kind: ItemPrev, Page: p.Current - 1, Disabled: p.PrevDisabled}}

	if p.ShowFirst {
		items = append(items, p.pageItem(1))
		if p.LeadingEllipsis {
			items = append(items, Item{Kind: ItemEllipsis, Disabled: true})
		}
	}
	for _, page := range p.Pages() {
		items = append(items, p.pageItem(page))
	}
	if p.ShowLast {
		if p.TrailingEllipsis {
			items = append(items, Item{Kind: ItemEllipsis, Disabled: true})
		}
		items = append(items, p.pageItem(p.Total))
	}

	return append(items, Item{Kind: ItemNext, Page: p.Current + 1, Disabled: p.NextDisabled})
}

func (p Pager) pageItem(page int) Item {
	return Item{Kind: ItemPage, Page: page, Current: page == p.Current}
}

// Offers reports whether the pager shows a numbered control for page.
func (p Pager) Offers(page int) bool {
	for _, item := range p.Items() {
		if item.Kind == ItemPage && item.Page == page {
			return true
		}
	}
	return false
}

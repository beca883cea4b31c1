// Package viewstate holds the user-controlled view parameters (search,
// sort, paging) and the transition functions that derive a new state from a
// user action. A ViewState is a value: transitions never mutate their input.
package viewstate

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/commentview/internal/domain"
)

// Direction is the sort direction of an active sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// IsValid checks if the direction is valid.
func (d Direction) IsValid() bool {
	return d == Ascending || d == Descending
}

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// Sort is either NoSort or SortBy(field, direction). Field and direction are
// set and cleared together; the zero value is NoSort.
type Sort struct {
	field     domain.Field
	direction Direction
}

// NoSort returns the inactive sort.
func NoSort() Sort {
	return Sort{}
}

// SortBy returns an active sort. An empty field or direction yields NoSort.
func SortBy(field domain.Field, direction Direction) Sort {
	if field == "" || direction == "" {
		return Sort{}
	}
	return Sort{field: field, direction: direction}
}

// Active reports whether a sort field is selected.
func (s Sort) Active() bool {
	return s.field != ""
}

// Field returns the sort field, or "" for NoSort.
func (s Sort) Field() domain.Field {
	return s.field
}

// Direction returns the sort direction, or "" for NoSort.
func (s Sort) Direction() Direction {
	return s.direction
}

// String returns "none" or "field:direction".
func (s Sort) String() string {
	if !s.Active() {
		return "none"
	}
	return fmt.Sprintf("%s:%s", s.field, s.direction)
}

// ParseSort parses "none", "field" (ascending) or "field:asc|desc".
func ParseSort(raw string) (Sort, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" || raw == "none" {
		return NoSort(), nil
	}
	name, dir, hasDir := strings.Cut(raw, ":")
	field, err := domain.ParseField(canonicalFieldName(name))
	if err != nil {
		return Sort{}, err
	}
	direction := Ascending
	if hasDir {
		direction = Direction(dir)
		if !direction.IsValid() {
			return Sort{}, fmt.Errorf("invalid sort direction: %s", dir)
		}
	}
	return SortBy(field, direction), nil
}

// canonicalFieldName restores the camel case of lower-cased Go field names.
func canonicalFieldName(name string) string {
	switch name {
	case "groupid":
		return "groupId"
	case "displayname":
		return "displayName"
	case "contactaddress":
		return "contactAddress"
	case "postid":
		return "postId"
	default:
		return name
	}
}

// Page size options offered by the page-size selector.
const (
	PageSizeSmall   = 10
	PageSizeMedium  = 50
	PageSizeLarge   = 100
	DefaultPageSize = PageSizeSmall
)

// PageSizes lists the selectable page sizes in cycle order.
var PageSizes = []int{PageSizeSmall, PageSizeMedium, PageSizeLarge}

// IsValidPageSize reports whether size is one of PageSizes.
func IsValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// NextPageSize returns the page size following current in PageSizes.
// Unknown sizes restart the cycle at the first option.
func NextPageSize(current int) int {
	for i, s := range PageSizes {
		if s == current {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}

// ViewState is the full set of user-controlled parameters that determine
// which records are visible.
type ViewState struct {
	SearchTerm  string
	CurrentPage int
	PageSize    int
	Sort        Sort
}

// Default returns the state used at session start.
func Default() ViewState {
	return ViewState{
		SearchTerm:  "",
		CurrentPage: 1,
		PageSize:    DefaultPageSize,
		Sort:        NoSort(),
	}
}

// WithDefaultPageSize returns the default state using size when it is a
// selectable page size.
func WithDefaultPageSize(size int) ViewState {
	s := Default()
	if IsValidPageSize(size) {
		s.PageSize = size
	}
	return s
}

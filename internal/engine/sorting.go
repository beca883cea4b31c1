package engine

import (
	"sort"
	"strings"

	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/viewstate"
)

// Sort returns a stably sorted copy of records. Records with equal keys keep
// their relative order in both directions. NoSort returns an unchanged copy.
func Sort(records []domain.Record, s viewstate.Sort) []domain.Record {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	if !s.Active() || len(sorted) < 2 {
		return sorted
	}

	field := s.Field()
	descending := s.Direction() == viewstate.Descending
	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareByField(sorted[i], sorted[j], field)
		if descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

// compareByField returns -1, 0 or 1. Text fields compare case-insensitively.
// Unknown fields compare equal, leaving the order untouched.
func compareByField(a, b domain.Record, field domain.Field) int {
	switch field {
	case domain.FieldGroupID:
		return compareInts(a.GroupID, b.GroupID)
	case domain.FieldDisplayName:
		return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
	case domain.FieldContactAddress:
		return strings.Compare(strings.ToLower(a.ContactAddress), strings.ToLower(b.ContactAddress))
	default:
		return 0
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package viewstate

import (
	"encoding/json"
	"fmt"

	"github.com/cristianoliveira/commentview/internal/domain"
)

// persistedState is the stored shape of a ViewState. Sort fields use the
// source's wire names and null when no sort is active.
type persistedState struct {
	SearchTerm    string  `json:"searchTerm" yaml:"searchTerm"`
	CurrentPage   int     `json:"currentPage" yaml:"currentPage"`
	PageSize      int     `json:"pageSize" yaml:"pageSize"`
	SortField     *string `json:"sortField" yaml:"sortField"`
	SortDirection *string `json:"sortDirection" yaml:"sortDirection"`
}

func (s ViewState) toPersisted() persistedState {
	p := persistedState{
		SearchTerm:  s.SearchTerm,
		CurrentPage: s.CurrentPage,
		PageSize:    s.PageSize,
	}
	if s.Sort.Active() {
		field := s.Sort.Field().WireName()
		dir := s.Sort.Direction().String()
		p.SortField = &field
		p.SortDirection = &dir
	}
	return p
}

func (p persistedState) toViewState() ViewState {
	s := ViewState{
		SearchTerm:  p.SearchTerm,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
	}
	if p.SortField != nil && p.SortDirection != nil {
		dir := Direction(*p.SortDirection)
		if !dir.IsValid() {
			dir = Ascending
		}
		s.Sort = SortBy(domain.FieldFromWire(*p.SortField), dir)
	}
	return s
}

// MarshalJSON encodes the state in its persisted form.
func (s ViewState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toPersisted())
}

// UnmarshalJSON decodes a persisted state. Keys missing from data keep their
// default values; present keys are taken verbatim.
func (s *ViewState) UnmarshalJSON(data []byte) error {
	p := Default().toPersisted()
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = p.toViewState()
	return nil
}

// MarshalYAML encodes the state in its persisted form.
func (s ViewState) MarshalYAML() (interface{}, error) {
	return s.toPersisted(), nil
}

// Rehydrate rebuilds the session state from a persisted value. An absent value
// yields the default state. A value that fails to decode also yields the
// default state, together with the decode error so the caller can log it.
// Decoded values are not validated, except that an unknown sort direction
// reads as ascending.
func Rehydrate(data []byte, found bool) (ViewState, error) {
	if !found || len(data) == 0 {
		return Default(), nil
	}
	var s ViewState
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse saved view state: %w", err)
	}
	return s, nil
}

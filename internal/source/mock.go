package source

import (
	"context"

	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of Source for testing.
//
// Example usage:
//
//	src := new(MockSource)
//	src.On("FetchRecords", mock.Anything).Return([]domain.Record{{ID: 1}}, nil)
//	src.On("FetchProfile", mock.Anything).Return(domain.Profile{}, errors.New("offline"))
type MockSource struct {
	mock.Mock
}

// FetchRecords returns mocked records.
func (m *MockSource) FetchRecords(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.Record)
	return records, args.Error(1)
}

// FetchProfile returns a mocked profile.
func (m *MockSource) FetchProfile(ctx context.Context) (domain.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Profile), args.Error(1)
}

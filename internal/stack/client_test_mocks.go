package stack

import (
	"github.com/stretchr/testify/mock"

	"github.com/risperss/anist/internal/arc"
)

type MockArcClient struct {
	mock.Mock
}

// List implements ArcClient.
func (m *MockArcClient) List() ([]arc.Revision, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]arc.Revision), args.Error(1)
}

// Diff implements ArcClient.
func (m *MockArcClient) Diff(base string, updateID string, message string) error {
	args := m.Called(base, updateID, message)
	return args.Error(0)
}

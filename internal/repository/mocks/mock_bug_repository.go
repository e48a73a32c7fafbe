package mocks

import (
	"context"

	"bugtracker/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBugRepository struct {
	mock.Mock
}

func (m *MockBugRepository) List(ctx context.Context) ([]model.Bug, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bug), args.Error(1)
}

func (m *MockBugRepository) Append(ctx context.Context, bug model.Bug) (*model.Bug, error) {
	args := m.Called(ctx, bug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bug), args.Error(1)
}

func (m *MockBugRepository) Len(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

package mocks

import (
	"context"

	"bugtracker/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBugService struct {
	mock.Mock
}

func (m *MockBugService) List(ctx context.Context) ([]model.Bug, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bug), args.Error(1)
}

func (m *MockBugService) Create(ctx context.Context, in model.Bug) (*model.Bug, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bug), args.Error(1)
}

func (m *MockBugService) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

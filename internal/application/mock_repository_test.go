package application

import (
	"context"

	"payment-registry/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LoadAll(ctx context.Context) (domain.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Table), args.Error(1)
}

func (m *MockRepository) SaveAll(ctx context.Context, table domain.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRepository) LoadOne(ctx context.Context, id string) (domain.Payment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SaveOne(ctx context.Context, id string, payment domain.Payment) error {
	args := m.Called(ctx, id, payment)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.TransitionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

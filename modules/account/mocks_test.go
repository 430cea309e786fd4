package account_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shadowbay/marketkit/modules/account"
)

// MockStorage is a mock implementation of account.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Create(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockStorage) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockStorage) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockStorage) Update(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockStorage) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	args := m.Called(ctx, id, version)
	return args.Error(0)
}

func (m *MockStorage) ExpiredBans(ctx context.Context, now time.Time) ([]account.Account, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.Account), args.Error(1)
}

func (m *MockStorage) EnsureRole(ctx context.Context, name string) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

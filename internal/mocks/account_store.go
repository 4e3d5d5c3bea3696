package mocks

import (
	"context"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockAccountStore is a mock of store.AccountStore for use with testify/mock.
type MockAccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*MockAccountStore)(nil)

// Create is a mock implementation of store.AccountStore.Create
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// GetByID is a mock implementation of store.AccountStore.GetByID
func (m *MockAccountStore) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAll is a mock implementation of store.AccountStore.GetAll
func (m *MockAccountStore) GetAll(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if accounts, ok := args.Get(0).([]*domain.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByUsername is a mock implementation of store.AccountStore.GetByUsername
func (m *MockAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// UsernameExists is a mock implementation of store.AccountStore.UsernameExists
func (m *MockAccountStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// Update is a mock implementation of store.AccountStore.Update
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

// Delete is a mock implementation of store.AccountStore.Delete
func (m *MockAccountStore) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

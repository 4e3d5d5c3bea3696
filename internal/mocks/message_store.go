package mocks

import (
	"context"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockMessageStore is a mock of store.MessageStore for use with testify/mock.
type MockMessageStore struct {
	mock.Mock
}

var _ store.MessageStore = (*MockMessageStore)(nil)

// Create is a mock implementation of store.MessageStore.Create
func (m *MockMessageStore) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// GetByID is a mock implementation of store.MessageStore.GetByID
func (m *MockMessageStore) GetByID(ctx context.Context, id int) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if message, ok := args.Get(0).(*domain.Message); ok {
		return message, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAll is a mock implementation of store.MessageStore.GetAll
func (m *MockMessageStore) GetAll(ctx context.Context) ([]*domain.Message, error) {
	args := m.Called(ctx)
	if messages, ok := args.Get(0).([]*domain.Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByAccountID is a mock implementation of store.MessageStore.GetByAccountID
func (m *MockMessageStore) GetByAccountID(ctx context.Context, accountID int) ([]*domain.Message, error) {
	args := m.Called(ctx, accountID)
	if messages, ok := args.Get(0).([]*domain.Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.MessageStore.Update
func (m *MockMessageStore) Update(ctx context.Context, message *domain.Message) (bool, error) {
	args := m.Called(ctx, message)
	return args.Bool(0), args.Error(1)
}

// Delete is a mock implementation of store.MessageStore.Delete
func (m *MockMessageStore) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

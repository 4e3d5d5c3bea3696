package mocks

import (
	"context"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock of service.AccountService for use with testify/mock.
type MockAccountService struct {
	mock.Mock
}

var _ service.AccountService = (*MockAccountService)(nil)

// Register is a mock implementation of service.AccountService.Register
func (m *MockAccountService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	args := m.Called(ctx, username, password)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// Login is a mock implementation of service.AccountService.Login
func (m *MockAccountService) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	args := m.Called(ctx, username, password)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of service.AccountService.GetByID
func (m *MockAccountService) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAll is a mock implementation of service.AccountService.GetAll
func (m *MockAccountService) GetAll(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if accounts, ok := args.Get(0).([]*domain.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of service.AccountService.Update
func (m *MockAccountService) Update(ctx context.Context, account *domain.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

// Delete is a mock implementation of service.AccountService.Delete
func (m *MockAccountService) Delete(ctx context.Context, account *domain.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

// MockMessageService is a mock of service.MessageService for use with testify/mock.
type MockMessageService struct {
	mock.Mock
}

var _ service.MessageService = (*MockMessageService)(nil)

// Create is a mock implementation of service.MessageService.Create
func (m *MockMessageService) Create(
	ctx context.Context,
	message *domain.Message,
	actor *domain.Account,
) (*domain.Message, error) {
	args := m.Called(ctx, message, actor)
	if created, ok := args.Get(0).(*domain.Message); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of service.MessageService.GetByID
func (m *MockMessageService) GetByID(ctx context.Context, id int) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if message, ok := args.Get(0).(*domain.Message); ok {
		return message, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAll is a mock implementation of service.MessageService.GetAll
func (m *MockMessageService) GetAll(ctx context.Context) ([]*domain.Message, error) {
	args := m.Called(ctx)
	if messages, ok := args.Get(0).([]*domain.Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByAccountID is a mock implementation of service.MessageService.GetByAccountID
func (m *MockMessageService) GetByAccountID(ctx context.Context, accountID int) ([]*domain.Message, error) {
	args := m.Called(ctx, accountID)
	if messages, ok := args.Get(0).([]*domain.Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of service.MessageService.Update
func (m *MockMessageService) Update(
	ctx context.Context,
	message *domain.Message,
	actor *domain.Account,
) (*domain.Message, error) {
	args := m.Called(ctx, message, actor)
	if updated, ok := args.Get(0).(*domain.Message); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of service.MessageService.Delete
func (m *MockMessageService) Delete(ctx context.Context, id int, actor *domain.Account) (*domain.Message, error) {
	args := m.Called(ctx, id, actor)
	if deleted, ok := args.Get(0).(*domain.Message); ok {
		return deleted, args.Error(1)
	}
	return nil, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/store"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// Function fields for customizable behavior
	RegisterFn   func(ctx context.Context, name, email, password string) (*domain.User, error)
	GetByIDFn    func(ctx context.Context, userID int64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	IsAdminFn    func(ctx context.Context, userID int64) (bool, error)

	// Data for default implementation, keyed by email
	Users      map[string]*domain.User
	LastUserID int64
}

// NewMockUserService creates a new mock service with initialized defaults
func NewMockUserService() *MockUserService {
	return &MockUserService{
		Users: make(map[string]*domain.User),
	}
}

// Register implements the UserService interface
func (m *MockUserService) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}

	if _, exists := m.Users[email]; exists {
		return nil, store.ErrEmailExists
	}

	m.LastUserID++
	user := &domain.User{
		ID:             m.LastUserID,
		Name:           name,
		Email:          email,
		HashedPassword: "mock-hash:" + password,
	}
	m.Users[email] = user
	return user, nil
}

// GetByID implements the UserService interface
func (m *MockUserService) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID)
	}

	for _, user := range m.Users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserService interface
func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// IsAdmin implements the UserService interface
func (m *MockUserService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if m.IsAdminFn != nil {
		return m.IsAdminFn(ctx, userID)
	}

	user, err := m.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

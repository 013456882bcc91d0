package mocks

import (
	"context"

	"github.com/seu-repo/voxdesk/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc                func(ctx context.Context, user *domain.User) error
	FindByIDFunc            func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	FindByFullNameFunc      func(ctx context.Context, name string) (*domain.User, error)
	FindByRoleFunc          func(ctx context.Context, role domain.Role) ([]domain.User, error)
	FindPendingApprovalFunc func(ctx context.Context) ([]domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByFullName(ctx context.Context, name string) (*domain.User, error) {
	if m.FindByFullNameFunc != nil {
		return m.FindByFullNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *MockUserRepository) FindPendingApproval(ctx context.Context) ([]domain.User, error) {
	if m.FindPendingApprovalFunc != nil {
		return m.FindPendingApprovalFunc(ctx)
	}
	return nil, nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	SaveFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Project, error)
	FindByNameFunc     func(ctx context.Context, name string) (*domain.Project, error)
	FindByClientIDFunc func(ctx context.Context, clientID string) ([]domain.Project, error)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *domain.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByName(ctx context.Context, name string) (*domain.Project, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error) {
	if m.FindByClientIDFunc != nil {
		return m.FindByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	SaveFunc       func(ctx context.Context, client *domain.Client) error
	FindByIDFunc   func(ctx context.Context, id string) (*domain.Client, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Client, error)
	FindAllFunc    func(ctx context.Context) ([]domain.Client, error)
}

func (m *MockClientRepository) Save(ctx context.Context, client *domain.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, client)
	}
	return nil
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockClientRepository) FindByName(ctx context.Context, name string) (*domain.Client, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockIntentConfigRepository is a mock implementation of IntentConfigRepository
type MockIntentConfigRepository struct {
	SaveFunc         func(ctx context.Context, cfg *domain.IntentConfig) error
	FindByIntentFunc func(ctx context.Context, intent string) (*domain.IntentConfig, error)
	FindAllFunc      func(ctx context.Context) ([]domain.IntentConfig, error)
}

func (m *MockIntentConfigRepository) Save(ctx context.Context, cfg *domain.IntentConfig) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cfg)
	}
	return nil
}

func (m *MockIntentConfigRepository) FindByIntent(ctx context.Context, intent string) (*domain.IntentConfig, error) {
	if m.FindByIntentFunc != nil {
		return m.FindByIntentFunc(ctx, intent)
	}
	return nil, nil
}

func (m *MockIntentConfigRepository) FindAll(ctx context.Context) ([]domain.IntentConfig, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

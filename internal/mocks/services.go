package mocks

import (
	"context"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// MockIntentRegistry is a mock implementation of IntentRegistry
type MockIntentRegistry struct {
	GetByIntentFunc func(ctx context.Context, intent string) (*domain.IntentConfig, error)
}

func (m *MockIntentRegistry) GetByIntent(ctx context.Context, intent string) (*domain.IntentConfig, error) {
	if m.GetByIntentFunc != nil {
		return m.GetByIntentFunc(ctx, intent)
	}
	return nil, nil
}

// MockReferenceResolver is a mock implementation of ReferenceResolver
type MockReferenceResolver struct {
	ResolveFunc func(ctx context.Context, field, label string) (string, error)
}

func (m *MockReferenceResolver) Resolve(ctx context.Context, field, label string) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, field, label)
	}
	return "", nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	CreateFunc            func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error)
	CreateForApprovalFunc func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error)
	ApproveFunc           func(ctx context.Context, actor domain.ActingUser, userID string) (*domain.User, error)
	GetUserFunc           func(ctx context.Context, id string) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return nil, nil
}

func (m *MockUserService) CreateForApproval(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
	if m.CreateForApprovalFunc != nil {
		return m.CreateForApprovalFunc(ctx, actor, in)
	}
	return nil, nil
}

func (m *MockUserService) Approve(ctx context.Context, actor domain.ActingUser, userID string) (*domain.User, error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, actor, userID)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	CreateFunc     func(ctx context.Context, actor domain.ActingUser, in ports.CreateProjectInput) (*domain.Project, error)
	GetProjectFunc func(ctx context.Context, id string) (*domain.Project, error)
}

func (m *MockProjectService) Create(ctx context.Context, actor domain.ActingUser, in ports.CreateProjectInput) (*domain.Project, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, id)
	}
	return nil, nil
}

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	CreateFunc    func(ctx context.Context, actor domain.ActingUser, in ports.CreateClientInput) (*domain.Client, error)
	GetClientFunc func(ctx context.Context, id string) (*domain.Client, error)
}

func (m *MockClientService) Create(ctx context.Context, actor domain.ActingUser, in ports.CreateClientInput) (*domain.Client, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return nil, nil
}

func (m *MockClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	if m.GetClientFunc != nil {
		return m.GetClientFunc(ctx, id)
	}
	return nil, nil
}

// MockEmailService is a mock implementation of EmailService
type MockEmailService struct {
	SendFunc                func(ctx context.Context, to, subject, body string) error
	SendWelcomeFunc         func(ctx context.Context, user *domain.User, tempPassword string) error
	SendApprovalRequestFunc func(ctx context.Context, approver *domain.User, pending *domain.User) error
}

func (m *MockEmailService) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
}

func (m *MockEmailService) SendWelcome(ctx context.Context, user *domain.User, tempPassword string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, user, tempPassword)
	}
	return nil
}

func (m *MockEmailService) SendApprovalRequest(ctx context.Context, approver *domain.User, pending *domain.User) error {
	if m.SendApprovalRequestFunc != nil {
		return m.SendApprovalRequestFunc(ctx, approver, pending)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc         func(ctx context.Context, email, password string) (string, string, error)
	RefreshTokenFunc  func(ctx context.Context, token string) (string, error)
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.User, error)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", "", nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, token string) (string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, token)
	}
	return "", nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}

package user

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/mocks"
	"github.com/seu-repo/voxdesk/internal/ports"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func validInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		FullName:   "Maria Silva",
		Email:      "maria@acme.io",
		Role:       domain.RoleEmployee,
		HourlyRate: 30,
		IsActive:   true,
	}
}

func TestCreate_Success(t *testing.T) {
	// Arrange
	var saved *domain.User
	repo := &mocks.MockUserRepository{
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	}
	var welcomed bool
	email := &mocks.MockEmailService{
		SendWelcomeFunc: func(ctx context.Context, u *domain.User, tempPassword string) error {
			welcomed = true
			if tempPassword == "" {
				t.Error("expected a temporary password")
			}
			if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(tempPassword)) != nil {
				t.Error("stored hash must match the temporary password")
			}
			return nil
		},
	}
	mq := mocks.NewMockMessageQueue()
	service := NewService(repo, mq, email, newTestLogger())
	actor := domain.ActingUser{ID: "admin-1", Role: domain.RoleSuperAdmin}

	// Act
	u, err := service.Create(context.Background(), actor, validInput())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !u.IsApprovedBySuperAdmin {
		t.Error("direct creation must approve immediately")
	}
	if saved == nil {
		t.Fatal("expected user to be saved")
	}
	if saved.CreatedBy != "admin-1" {
		t.Errorf("expected creator recorded, got %q", saved.CreatedBy)
	}
	if !welcomed {
		t.Error("expected a welcome email")
	}
	if len(mq.GetPublishedMessages("user.created")) != 1 {
		t.Error("expected a user.created event")
	}
}

func TestCreateForApproval_NotifiesSuperAdmins(t *testing.T) {
	// Arrange
	repo := &mocks.MockUserRepository{
		FindByRoleFunc: func(ctx context.Context, role domain.Role) ([]domain.User, error) {
			if role != domain.RoleSuperAdmin {
				t.Errorf("expected super_admin lookup, got %s", role)
			}
			return []domain.User{{ID: "sa-1"}, {ID: "sa-2"}}, nil
		},
	}
	var notified []string
	email := &mocks.MockEmailService{
		SendApprovalRequestFunc: func(ctx context.Context, approver *domain.User, pending *domain.User) error {
			notified = append(notified, approver.ID)
			return nil
		},
	}
	service := NewService(repo, mocks.NewMockMessageQueue(), email, newTestLogger())
	actor := domain.ActingUser{ID: "mgr-1", Role: domain.RoleManager}

	// Act
	u, err := service.CreateForApproval(context.Background(), actor, validInput())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.IsApprovedBySuperAdmin {
		t.Error("approval-path creation must not be pre-approved")
	}
	if len(notified) != 2 {
		t.Errorf("expected both super admins notified, got %v", notified)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "existing", Email: email}, nil
		},
	}
	service := NewService(repo, mocks.NewMockMessageQueue(), &mocks.MockEmailService{}, newTestLogger())

	_, err := service.Create(context.Background(), domain.ActingUser{ID: "a", Role: domain.RoleSuperAdmin}, validInput())

	if err == nil {
		t.Fatal("expected duplicate email error")
	}
}

func TestCreate_MissingIdentityFields(t *testing.T) {
	service := NewService(&mocks.MockUserRepository{}, mocks.NewMockMessageQueue(), &mocks.MockEmailService{}, newTestLogger())

	_, err := service.Create(context.Background(), domain.ActingUser{ID: "a", Role: domain.RoleSuperAdmin}, ports.CreateUserInput{Email: "x@y.io"})

	if !errors.Is(err, domain.ErrInvalidField) {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}
}

func TestApprove_RequiresSuperAdmin(t *testing.T) {
	service := NewService(&mocks.MockUserRepository{}, mocks.NewMockMessageQueue(), &mocks.MockEmailService{}, newTestLogger())

	_, err := service.Approve(context.Background(), domain.ActingUser{ID: "mgr", Role: domain.RoleManagement}, "user-1")

	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestApprove_Success(t *testing.T) {
	// Arrange
	pending := &domain.User{ID: "user-1", IsApprovedBySuperAdmin: false}
	var saved *domain.User
	repo := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return pending, nil
		},
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	}
	mq := mocks.NewMockMessageQueue()
	service := NewService(repo, mq, &mocks.MockEmailService{}, newTestLogger())

	// Act
	u, err := service.Approve(context.Background(), domain.ActingUser{ID: "sa", Role: domain.RoleSuperAdmin}, "user-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !u.IsApprovedBySuperAdmin {
		t.Error("expected user to be approved")
	}
	if saved == nil {
		t.Error("expected approval to be persisted")
	}
	if len(mq.GetPublishedMessages("user.approved")) != 1 {
		t.Error("expected a user.approved event")
	}
}

func TestApprove_Idempotent(t *testing.T) {
	repo := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, IsApprovedBySuperAdmin: true}, nil
		},
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			t.Error("already-approved users must not be re-saved")
			return nil
		},
	}
	service := NewService(repo, mocks.NewMockMessageQueue(), &mocks.MockEmailService{}, newTestLogger())

	u, err := service.Approve(context.Background(), domain.ActingUser{ID: "sa", Role: domain.RoleSuperAdmin}, "user-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !u.IsApprovedBySuperAdmin {
		t.Error("expected approved user returned")
	}
}

func TestApprove_UnknownUser(t *testing.T) {
	service := NewService(&mocks.MockUserRepository{}, mocks.NewMockMessageQueue(), &mocks.MockEmailService{}, newTestLogger())

	_, err := service.Approve(context.Background(), domain.ActingUser{ID: "sa", Role: domain.RoleSuperAdmin}, "ghost")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

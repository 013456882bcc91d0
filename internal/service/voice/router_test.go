package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/mocks"
	"github.com/seu-repo/voxdesk/internal/ports"
)

func TestDispatch_SuperAdminCreatesUserDirectly(t *testing.T) {
	// Arrange
	var directCalls, approvalCalls int
	users := &mocks.MockUserService{
		CreateFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
			directCalls++
			return &domain.User{ID: "user-1", FullName: in.FullName, IsActive: true, IsApprovedBySuperAdmin: true}, nil
		},
		CreateForApprovalFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
			approvalCalls++
			return &domain.User{ID: "user-1"}, nil
		},
	}
	router := NewRouter(users, &mocks.MockProjectService{}, &mocks.MockClientService{}, newTestLogger())
	actor := domain.ActingUser{ID: "admin-1", Role: domain.RoleSuperAdmin}

	// Act
	result := router.Dispatch(context.Background(), actor, IntentCreateUser, map[string]interface{}{
		"full_name": "Maria Silva",
		"email":     "maria@acme.io",
	})

	// Assert
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if directCalls != 1 {
		t.Errorf("expected 1 direct create, got %d", directCalls)
	}
	if approvalCalls != 0 {
		t.Errorf("expected no approval create, got %d", approvalCalls)
	}
	created, ok := result.Data.(*domain.User)
	if !ok {
		t.Fatalf("expected *domain.User in result data, got %T", result.Data)
	}
	if !created.IsActive || !created.IsApprovedBySuperAdmin {
		t.Error("super admin creation must produce an active, approved user")
	}
}

func TestDispatch_ManagerCreatesUserForApproval(t *testing.T) {
	// Arrange
	var directCalls, approvalCalls int
	users := &mocks.MockUserService{
		CreateFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
			directCalls++
			return &domain.User{ID: "user-1"}, nil
		},
		CreateForApprovalFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
			approvalCalls++
			return &domain.User{ID: "user-1", IsActive: true, IsApprovedBySuperAdmin: false}, nil
		},
	}
	router := NewRouter(users, &mocks.MockProjectService{}, &mocks.MockClientService{}, newTestLogger())
	actor := domain.ActingUser{ID: "mgr-1", Role: domain.RoleManager}

	// Act
	result := router.Dispatch(context.Background(), actor, IntentCreateUser, map[string]interface{}{
		"full_name": "Maria Silva",
	})

	// Assert
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if approvalCalls != 1 || directCalls != 0 {
		t.Errorf("expected only the approval path, got direct=%d approval=%d", directCalls, approvalCalls)
	}
}

func TestDispatch_ProjectHasNoRoleBranching(t *testing.T) {
	// Arrange
	var calls int
	projects := &mocks.MockProjectService{
		CreateFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateProjectInput) (*domain.Project, error) {
			calls++
			return &domain.Project{ID: "proj-1", Name: in.Name}, nil
		},
	}
	router := NewRouter(&mocks.MockUserService{}, projects, &mocks.MockClientService{}, newTestLogger())

	// Act: both role classes land on the same operation.
	for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleManager} {
		result := router.Dispatch(context.Background(), domain.ActingUser{ID: "u", Role: role}, IntentCreateProject, map[string]interface{}{
			"project_name": "Atlas",
		})
		if !result.Success {
			t.Fatalf("role %s: expected success, got %q", role, result.Error)
		}
	}

	// Assert
	if calls != 2 {
		t.Errorf("expected 2 invocations of the same operation, got %d", calls)
	}
}

func TestDispatch_FieldsReachBackendInput(t *testing.T) {
	var got ports.CreateUserInput
	users := &mocks.MockUserService{
		CreateFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
			got = in
			return &domain.User{ID: "user-1"}, nil
		},
	}
	router := NewRouter(users, &mocks.MockProjectService{}, &mocks.MockClientService{}, newTestLogger())

	router.Dispatch(context.Background(), domain.ActingUser{ID: "admin", Role: domain.RoleSuperAdmin}, IntentCreateUser, map[string]interface{}{
		"full_name":   "Maria Silva",
		"email":       "maria@acme.io",
		"role":        "lead",
		"hourly_rate": 40.0,
		"manager":     "user-7",
		"is_active":   true,
	})

	if got.FullName != "Maria Silva" || got.Email != "maria@acme.io" {
		t.Errorf("unexpected identity fields: %+v", got)
	}
	if got.Role != domain.RoleLead {
		t.Errorf("expected role lead, got %s", got.Role)
	}
	if got.HourlyRate != 40.0 {
		t.Errorf("expected hourly_rate 40, got %v", got.HourlyRate)
	}
	if got.ManagerID != "user-7" {
		t.Errorf("expected resolved manager ID, got %q", got.ManagerID)
	}
}

func TestDispatch_UnknownIntentFails(t *testing.T) {
	router := NewRouter(&mocks.MockUserService{}, &mocks.MockProjectService{}, &mocks.MockClientService{}, newTestLogger())

	result := router.Dispatch(context.Background(), domain.ActingUser{ID: "u", Role: domain.RoleManager}, "teleport_user", nil)

	if result.Success {
		t.Fatal("expected failure for unregistered intent")
	}
	if result.Error == "" {
		t.Error("expected an error message")
	}
}

func TestDispatch_BackendErrorConvertsToResult(t *testing.T) {
	clients := &mocks.MockClientService{
		CreateFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateClientInput) (*domain.Client, error) {
			return nil, errors.New("client with this name already exists")
		},
	}
	router := NewRouter(&mocks.MockUserService{}, &mocks.MockProjectService{}, clients, newTestLogger())

	result := router.Dispatch(context.Background(), domain.ActingUser{ID: "u", Role: domain.RoleManagement}, IntentCreateClient, map[string]interface{}{
		"client_name": "Acme Corp",
	})

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "client with this name already exists" {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestDispatch_PanicConvertsToResult(t *testing.T) {
	users := &mocks.MockUserService{
		CreateFunc: func(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
			panic("nil pointer somewhere deep")
		},
	}
	router := NewRouter(users, &mocks.MockProjectService{}, &mocks.MockClientService{}, newTestLogger())

	result := router.Dispatch(context.Background(), domain.ActingUser{ID: "admin", Role: domain.RoleSuperAdmin}, IntentCreateUser, map[string]interface{}{})

	if result.Success {
		t.Fatal("expected failure after panic")
	}
	if result.Error == "" {
		t.Error("expected an error message after panic")
	}
}

package project

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/mocks"
	"github.com/seu-repo/voxdesk/internal/ports"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestCreate_Success(t *testing.T) {
	// Arrange
	clients := &mocks.MockClientRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Client, error) {
			return &domain.Client{ID: id, Name: "Acme Corp"}, nil
		},
	}
	var saved *domain.Project
	repo := &mocks.MockProjectRepository{
		SaveFunc: func(ctx context.Context, p *domain.Project) error {
			saved = p
			return nil
		},
	}
	mq := mocks.NewMockMessageQueue()
	service := NewService(repo, clients, mq, newTestLogger())
	actor := domain.ActingUser{ID: "mgr-1", Role: domain.RoleManager}

	// Act
	p, err := service.Create(context.Background(), actor, ports.CreateProjectInput{
		Name:     "Atlas",
		ClientID: "client-1",
		LeadID:   "user-9",
		Budget:   50000,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Status != domain.ProjectStatusActive {
		t.Errorf("expected active status, got %s", p.Status)
	}
	if saved == nil || saved.ClientID != "client-1" {
		t.Errorf("expected project saved with client ID, got %+v", saved)
	}
	if len(mq.GetPublishedMessages("project.created")) != 1 {
		t.Error("expected a project.created event")
	}
}

func TestCreate_UnknownClient(t *testing.T) {
	service := NewService(&mocks.MockProjectRepository{}, &mocks.MockClientRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Create(context.Background(), domain.ActingUser{ID: "mgr"}, ports.CreateProjectInput{
		Name:     "Atlas",
		ClientID: "ghost",
	})

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	clients := &mocks.MockClientRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Client, error) {
			return &domain.Client{ID: id}, nil
		},
	}
	repo := &mocks.MockProjectRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Project, error) {
			return &domain.Project{ID: "existing", Name: name}, nil
		},
	}
	service := NewService(repo, clients, mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Create(context.Background(), domain.ActingUser{ID: "mgr"}, ports.CreateProjectInput{
		Name:     "Atlas",
		ClientID: "client-1",
	})

	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestCreate_MissingMandatoryFields(t *testing.T) {
	service := NewService(&mocks.MockProjectRepository{}, &mocks.MockClientRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Create(context.Background(), domain.ActingUser{ID: "mgr"}, ports.CreateProjectInput{Name: "Atlas"})

	if !errors.Is(err, domain.ErrInvalidField) {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}
}

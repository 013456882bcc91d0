package project

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/adapter/queue"
	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/observability/telemetry"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// Service is the backend collaborator for project-creation intents. Every
// allowed role invokes the same creation operation; there is no approval
// variant for projects.
type Service struct {
	repo    ports.ProjectRepository
	clients ports.ClientRepository
	mq      queue.MessageQueue
	log     *zap.Logger
}

func NewService(repo ports.ProjectRepository, clients ports.ClientRepository, mq queue.MessageQueue, log *zap.Logger) ports.ProjectService {
	return &Service{
		repo:    repo,
		clients: clients,
		mq:      mq,
		log:     log,
	}
}

func (s *Service) Create(ctx context.Context, actor domain.ActingUser, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, fmt.Errorf("project_name and client are mandatory: %w", domain.ErrInvalidField)
	}

	client, err := s.clients.FindByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %q: %w", in.ClientID, domain.ErrNotFound)
	}

	existing, err := s.repo.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a project named %q already exists", in.Name)
	}

	now := time.Now()
	p := &domain.Project{
		ID:        uuid.NewString(),
		Name:      in.Name,
		ClientID:  in.ClientID,
		LeadID:    in.LeadID,
		Budget:    in.Budget,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    domain.ProjectStatusActive,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	telemetry.EntitiesCreatedTotal.WithLabelValues("project", "active").Inc()

	if payload, err := json.Marshal(p); err == nil {
		if err := s.mq.Publish("project.created", payload); err != nil {
			s.log.Warn("failed to publish event", zap.String("subject", "project.created"), zap.Error(err))
		}
	}

	s.log.Info("project created",
		zap.String("project_id", p.ID),
		zap.String("client_id", p.ClientID),
		zap.String("created_by", actor.ID),
	)
	return p, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

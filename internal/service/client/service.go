package client

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

// Service is the backend collaborator for client-creation intents.
type Service struct {
	repo ports.ClientRepository
	mq   queue.MessageQueue
	log  *zap.Logger
}

func NewService(repo ports.ClientRepository, mq queue.MessageQueue, log *zap.Logger) ports.ClientService {
	return &Service{
		repo: repo,
		mq:   mq,
		log:  log,
	}
}

func (s *Service) Create(ctx context.Context, actor domain.ActingUser, in ports.CreateClientInput) (*domain.Client, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("client_name is mandatory: %w", domain.ErrInvalidField)
	}

	existing, err := s.repo.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a client named %q already exists", in.Name)
	}

	now := time.Now()
	c := &domain.Client{
		ID:            uuid.NewString(),
		Name:          in.Name,
		ContactEmail:  in.ContactEmail,
		ContactPerson: in.ContactPerson,
		IsActive:      true,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	telemetry.EntitiesCreatedTotal.WithLabelValues("client", "active").Inc()

	if payload, err := json.Marshal(c); err == nil {
		if err := s.mq.Publish("client.created", payload); err != nil {
			s.log.Warn("failed to publish event", zap.String("subject", "client.created"), zap.Error(err))
		}
	}

	s.log.Info("client created", zap.String("client_id", c.ID), zap.String("created_by", actor.ID))
	return c, nil
}

func (s *Service) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %q: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

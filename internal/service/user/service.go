package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/voxdesk/internal/adapter/queue"
	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/observability/telemetry"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// Service implements the user-creation backend operations the voice router
// dispatches to. It owns the difference between direct creation and
// creation-pending-approval; the caller has already decided which to invoke.
type Service struct {
	repo  ports.UserRepository
	mq    queue.MessageQueue
	email ports.EmailService
	log   *zap.Logger
}

func NewService(repo ports.UserRepository, mq queue.MessageQueue, email ports.EmailService, log *zap.Logger) ports.UserService {
	return &Service{
		repo:  repo,
		mq:    mq,
		email: email,
		log:   log,
	}
}

// Create persists a user that is active and approved immediately.
func (s *Service) Create(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
	u, tempPassword, err := s.create(ctx, actor, in, true)
	if err != nil {
		return nil, err
	}
	telemetry.EntitiesCreatedTotal.WithLabelValues("user", "approved").Inc()

	if err := s.email.SendWelcome(ctx, u, tempPassword); err != nil {
		s.log.Warn("failed to send welcome email", zap.String("user_id", u.ID), zap.Error(err))
	}
	return u, nil
}

// CreateForApproval persists a user flagged pending super-admin approval and
// notifies every super admin.
func (s *Service) CreateForApproval(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput) (*domain.User, error) {
	u, _, err := s.create(ctx, actor, in, false)
	if err != nil {
		return nil, err
	}
	telemetry.EntitiesCreatedTotal.WithLabelValues("user", "pending_approval").Inc()

	approvers, err := s.repo.FindByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		s.log.Warn("could not list approvers for notification", zap.Error(err))
		return u, nil
	}
	for i := range approvers {
		if err := s.email.SendApprovalRequest(ctx, &approvers[i], u); err != nil {
			s.log.Warn("failed to send approval request",
				zap.String("approver", approvers[i].ID),
				zap.Error(err),
			)
		}
	}
	return u, nil
}

// Approve marks a pending user as approved. Only super admins may approve.
func (s *Service) Approve(ctx context.Context, actor domain.ActingUser, userID string) (*domain.User, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("role %q may not approve users: %w", actor.Role, domain.ErrNotAuthorized)
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", userID, domain.ErrNotFound)
	}
	if u.IsApprovedBySuperAdmin {
		return u, nil
	}

	u.IsApprovedBySuperAdmin = true
	u.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	s.publish("user.approved", u)
	s.log.Info("user approved",
		zap.String("user_id", u.ID),
		zap.String("approved_by", actor.ID),
	)
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (s *Service) create(ctx context.Context, actor domain.ActingUser, in ports.CreateUserInput, approved bool) (*domain.User, string, error) {
	if in.FullName == "" || in.Email == "" {
		return nil, "", fmt.Errorf("full_name and email are mandatory: %w", domain.ErrInvalidField)
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("a user with email %q already exists", in.Email)
	}

	tempPassword := uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	u := &domain.User{
		ID:                     uuid.NewString(),
		FullName:               in.FullName,
		Email:                  in.Email,
		Phone:                  in.Phone,
		Password:               string(hashed),
		Role:                   in.Role,
		HourlyRate:             in.HourlyRate,
		ManagerID:              in.ManagerID,
		IsActive:               in.IsActive,
		IsApprovedBySuperAdmin: approved,
		CreatedBy:              actor.ID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, "", err
	}

	s.publish("user.created", u)
	s.log.Info("user created",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
		zap.Bool("approved", approved),
		zap.String("created_by", actor.ID),
	)
	return u, tempPassword, nil
}

func (s *Service) publish(subject string, u *domain.User) {
	payload, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := s.mq.Publish(subject, payload); err != nil {
		s.log.Warn("failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}

package ports

import (
	"context"
	"time"

	"github.com/seu-repo/voxdesk/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // token, refresh, err
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// IntentRegistry looks up the schema of a voice intent. Callers must treat
// every call as possibly slow or failing; there is no caching guarantee.
type IntentRegistry interface {
	GetByIntent(ctx context.Context, intent string) (*domain.IntentConfig, error)
}

// ReferenceResolver resolves a human-readable label for a reference-typed
// field to a backend entity ID. Returns domain.ErrNotFound (wrapped) when no
// entity matches the label exactly.
type ReferenceResolver interface {
	Resolve(ctx context.Context, field, label string) (string, error)
}

// CreateUserInput carries the typed fields of a user-creation action.
type CreateUserInput struct {
	FullName   string
	Email      string
	Phone      string
	Role       domain.Role
	HourlyRate float64
	ManagerID  string
	IsActive   bool
}

// UserService is the backend collaborator for user-creation intents. Create
// persists an immediately active and approved user; CreateForApproval
// persists a user flagged pending super-admin approval.
type UserService interface {
	Create(ctx context.Context, actor domain.ActingUser, in CreateUserInput) (*domain.User, error)
	CreateForApproval(ctx context.Context, actor domain.ActingUser, in CreateUserInput) (*domain.User, error)
	Approve(ctx context.Context, actor domain.ActingUser, userID string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// CreateProjectInput carries the typed fields of a project-creation action.
type CreateProjectInput struct {
	Name      string
	ClientID  string
	LeadID    string
	Budget    float64
	StartDate *time.Time
	EndDate   *time.Time
}

type ProjectService interface {
	Create(ctx context.Context, actor domain.ActingUser, in CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
}

// CreateClientInput carries the typed fields of a client-creation action.
type CreateClientInput struct {
	Name          string
	ContactEmail  string
	ContactPerson string
}

type ClientService interface {
	Create(ctx context.Context, actor domain.ActingUser, in CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
}

// EmailService sends transactional notifications.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendWelcome(ctx context.Context, user *domain.User, tempPassword string) error
	SendApprovalRequest(ctx context.Context, approver *domain.User, pending *domain.User) error
}

// VoicePipeline is the top-level entry point of the voice-command
// validation-and-dispatch pipeline.
type VoicePipeline interface {
	ExecuteActions(ctx context.Context, actions []domain.VoiceAction, actor domain.ActingUser) []domain.ActionResult
	ValidateVoiceCommand(ctx context.Context, intent string, role domain.Role, data map[string]interface{}) *domain.ValidationResult
}

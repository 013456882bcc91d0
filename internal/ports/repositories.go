package ports

import (
	"context"
	"time"

	"github.com/seu-repo/voxdesk/internal/domain"
)

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByFullName resolves a human-readable name to a user.
	// Returns (nil, nil) when no user matches.
	FindByFullName(ctx context.Context, name string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	FindPendingApproval(ctx context.Context) ([]domain.User, error)
}

type ProjectRepository interface {
	Save(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindByName(ctx context.Context, name string) (*domain.Project, error)
	FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error)
}

type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// FindByName resolves a human-readable client name.
	// Returns (nil, nil) when no client matches.
	FindByName(ctx context.Context, name string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
}

// IntentConfigRepository is the persistence boundary of the intent
// configuration registry.
type IntentConfigRepository interface {
	Save(ctx context.Context, cfg *domain.IntentConfig) error
	FindByIntent(ctx context.Context, intent string) (*domain.IntentConfig, error)
	FindAll(ctx context.Context) ([]domain.IntentConfig, error)
}

// Cache is a generic string cache (Redis in production, in-memory in tests).
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}

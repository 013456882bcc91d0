package voice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// Resolver resolves reference-field labels to entity IDs using exact
// (case-insensitive) matching against the backing stores. No fuzzy matching.
type Resolver struct {
	users   ports.UserRepository
	clients ports.ClientRepository
	log     *zap.Logger
}

func NewResolver(users ports.UserRepository, clients ports.ClientRepository, log *zap.Logger) *Resolver {
	return &Resolver{
		users:   users,
		clients: clients,
		log:     log,
	}
}

// Resolve maps (field, label) to the matching entity ID. A label with no
// match returns a wrapped domain.ErrNotFound; store failures return the
// underlying error untouched so the validator classifies them as system.
func (r *Resolver) Resolve(ctx context.Context, field, label string) (string, error) {
	switch field {
	case "client":
		c, err := r.clients.FindByName(ctx, label)
		if err != nil {
			return "", err
		}
		if c == nil {
			return "", fmt.Errorf("client %q: %w", label, domain.ErrNotFound)
		}
		return c.ID, nil

	case "manager", "lead":
		u, err := r.users.FindByFullName(ctx, label)
		if err != nil {
			return "", err
		}
		if u == nil {
			return "", fmt.Errorf("%s %q: %w", field, label, domain.ErrNotFound)
		}
		return u.ID, nil

	default:
		return "", fmt.Errorf("no resolver registered for reference field %q", field)
	}
}

package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/observability/telemetry"
	"github.com/seu-repo/voxdesk/internal/ports"
)

const cacheTTL = 5 * time.Minute

// Registry serves intent configurations from the backing store, fronted by
// a cache and a circuit breaker. Callers must treat every lookup as possibly
// slow or failing.
type Registry struct {
	repo    ports.IntentConfigRepository
	cache   ports.Cache
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func NewRegistry(repo ports.IntentConfigRepository, cache ports.Cache, log *zap.Logger) *Registry {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "intent-config-store",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("intent config breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Registry{
		repo:    repo,
		cache:   cache,
		breaker: breaker,
		log:     log,
	}
}

// GetByIntent returns the schema for the intent. Unknown intents and store
// failures both surface as errors; classifying them is the caller's concern.
func (r *Registry) GetByIntent(ctx context.Context, intent string) (*domain.IntentConfig, error) {
	cacheKey := "intent_config:" + intent

	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var cfg domain.IntentConfig
		if err := json.Unmarshal([]byte(cached), &cfg); err == nil {
			telemetry.IntentConfigLookups.WithLabelValues("cache", "hit").Inc()
			return &cfg, nil
		}
		// Corrupt cache entry; fall through to the store.
		_ = r.cache.Delete(ctx, cacheKey)
	}

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.repo.FindByIntent(ctx, intent)
	})
	if err != nil {
		telemetry.IntentConfigLookups.WithLabelValues("store", "error").Inc()
		return nil, fmt.Errorf("intent config lookup: %w", err)
	}

	cfg, _ := result.(*domain.IntentConfig)
	if cfg == nil {
		telemetry.IntentConfigLookups.WithLabelValues("store", "miss").Inc()
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownIntent, intent)
	}
	telemetry.IntentConfigLookups.WithLabelValues("store", "hit").Inc()

	if data, err := json.Marshal(cfg); err == nil {
		if err := r.cache.Set(ctx, cacheKey, string(data), cacheTTL); err != nil {
			r.log.Warn("failed to cache intent config", zap.String("intent", intent), zap.Error(err))
		}
	}

	return cfg, nil
}

// SeedDefaults installs the built-in intent configurations, overwriting any
// existing entry with the same intent name. Called once at startup.
func (r *Registry) SeedDefaults(ctx context.Context) error {
	for _, cfg := range DefaultConfigs() {
		cfg := cfg
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := r.repo.Save(ctx, &cfg); err != nil {
			return fmt.Errorf("seed intent %q: %w", cfg.Intent, err)
		}
	}
	r.log.Info("intent configs seeded", zap.Int("count", len(DefaultConfigs())))
	return nil
}

// DefaultConfigs returns the built-in intent schemas.
func DefaultConfigs() []domain.IntentConfig {
	return []domain.IntentConfig{
		{
			Intent:         "create_user",
			AllowedRoles:   []domain.Role{domain.RoleSuperAdmin, domain.RoleManagement},
			RequiredFields: []string{"full_name", "email"},
			OptionalFields: []string{"role", "hourly_rate", "phone", "is_active", "manager"},
			FieldTypes: map[string]domain.FieldType{
				"full_name":   domain.FieldTypeString,
				"email":       domain.FieldTypeString,
				"role":        domain.FieldTypeEnum,
				"hourly_rate": domain.FieldTypeNumber,
				"phone":       domain.FieldTypeString,
				"is_active":   domain.FieldTypeBoolean,
				"manager":     domain.FieldTypeReference,
			},
		},
		{
			Intent:         "create_project",
			AllowedRoles:   []domain.Role{domain.RoleSuperAdmin, domain.RoleManagement, domain.RoleManager},
			RequiredFields: []string{"project_name", "client"},
			OptionalFields: []string{"budget", "start_date", "end_date", "lead"},
			FieldTypes: map[string]domain.FieldType{
				"project_name": domain.FieldTypeString,
				"client":       domain.FieldTypeReference,
				"budget":       domain.FieldTypeNumber,
				"start_date":   domain.FieldTypeDate,
				"end_date":     domain.FieldTypeDate,
				"lead":         domain.FieldTypeReference,
			},
		},
		{
			Intent:         "create_client",
			AllowedRoles:   []domain.Role{domain.RoleSuperAdmin, domain.RoleManagement},
			RequiredFields: []string{"client_name"},
			OptionalFields: []string{"contact_email", "contact_person"},
			FieldTypes: map[string]domain.FieldType{
				"client_name":    domain.FieldTypeString,
				"contact_email":  domain.FieldTypeString,
				"contact_person": domain.FieldTypeString,
			},
		},
	}
}

package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

type IntentConfigRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewIntentConfigRepository(db *gorm.DB, log *zap.Logger) ports.IntentConfigRepository {
	return &IntentConfigRepository{
		db:  db,
		log: log,
	}
}

func (r *IntentConfigRepository) Save(ctx context.Context, cfg *domain.IntentConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *IntentConfigRepository) FindByIntent(ctx context.Context, intent string) (*domain.IntentConfig, error) {
	var cfg domain.IntentConfig
	err := r.db.WithContext(ctx).First(&cfg, "intent = ?", intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *IntentConfigRepository) FindAll(ctx context.Context) ([]domain.IntentConfig, error) {
	var cfgs []domain.IntentConfig
	err := r.db.WithContext(ctx).Order("intent").Find(&cfgs).Error
	return cfgs, err
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// IntentHandler exposes read-only access to intent schemas so the UI can
// render forms matching the pipeline's expectations.
type IntentHandler struct {
	registry ports.IntentRegistry
	log      *zap.Logger
}

func NewIntentHandler(registry ports.IntentRegistry, log *zap.Logger) *IntentHandler {
	return &IntentHandler{
		registry: registry,
		log:      log,
	}
}

func (h *IntentHandler) GetConfig(c *fiber.Ctx) error {
	intent := c.Params("intent")

	cfg, err := h.registry.GetByIntent(c.Context(), intent)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownIntent) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown intent"})
		}
		h.log.Error("intent config lookup failed", zap.String("intent", intent), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load intent config"})
	}

	return c.JSON(cfg)
}

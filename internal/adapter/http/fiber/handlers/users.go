package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// UserHandler exposes the approval workflow for users created pending
// super-admin review.
type UserHandler struct {
	service ports.UserService
	repo    ports.UserRepository
	log     *zap.Logger
}

func NewUserHandler(service ports.UserService, repo ports.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		repo:    repo,
		log:     log,
	}
}

func (h *UserHandler) ListPendingApproval(c *fiber.Ctx) error {
	users, err := h.repo.FindPendingApproval(c.Context())
	if err != nil {
		h.log.Error("failed to list pending users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list pending users"})
	}
	return c.JSON(users)
}

func (h *UserHandler) Approve(c *fiber.Ctx) error {
	actor := actingUserFromLocals(c)

	user, err := h.service.Approve(c.Context(), actor, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			h.log.Error("approve failed", zap.String("user_id", c.Params("id")), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve user"})
		}
	}

	return c.JSON(user)
}

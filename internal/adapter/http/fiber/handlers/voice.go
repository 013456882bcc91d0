package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/adapter/websocket"
	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// VoiceHandler exposes the voice-command pipeline over HTTP. The NLU runs
// upstream; requests arrive as already-structured actions.
type VoiceHandler struct {
	pipeline ports.VoicePipeline
	stream   *websocket.ResultsStreamHandler
	log      *zap.Logger
}

func NewVoiceHandler(pipeline ports.VoicePipeline, stream *websocket.ResultsStreamHandler, log *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		pipeline: pipeline,
		stream:   stream,
		log:      log,
	}
}

type ExecuteActionsRequest struct {
	Actions []domain.VoiceAction `json:"actions"`
}

type ExecuteActionsResponse struct {
	Results []domain.ActionResult `json:"results"`
}

// ExecuteActions runs a batch of voice actions for the authenticated user.
// The response always carries one result per action, in input order.
func (h *VoiceHandler) ExecuteActions(c *fiber.Ctx) error {
	var req ExecuteActionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if len(req.Actions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No actions provided"})
	}

	actor := actingUserFromLocals(c)
	results := h.pipeline.ExecuteActions(c.Context(), req.Actions, actor)

	if h.stream != nil {
		h.stream.PublishResults(actor.ID, results)
	}

	return c.JSON(ExecuteActionsResponse{Results: results})
}

type ValidateCommandRequest struct {
	Intent string                 `json:"intent"`
	Data   map[string]interface{} `json:"data"`
}

// ValidateCommand validates a single command without dispatching it, so the
// UI can show field-level feedback before execution.
func (h *VoiceHandler) ValidateCommand(c *fiber.Ctx) error {
	var req ValidateCommandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Intent == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing intent"})
	}

	actor := actingUserFromLocals(c)
	result := h.pipeline.ValidateVoiceCommand(c.Context(), req.Intent, actor.Role, req.Data)
	return c.JSON(result)
}

func actingUserFromLocals(c *fiber.Ctx) domain.ActingUser {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(domain.Role)
	return domain.ActingUser{ID: userID, Role: role}
}

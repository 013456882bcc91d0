package voice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/observability/telemetry"
)

// Pipeline is the top-level batch dispatcher: it runs each voice action
// through mapping, validation and routing, isolating failures per action.
type Pipeline struct {
	validator *Validator
	router    *Router
	log       *zap.Logger
}

func NewPipeline(validator *Validator, router *Router, log *zap.Logger) *Pipeline {
	return &Pipeline{
		validator: validator,
		router:    router,
		log:       log,
	}
}

// ExecuteActions processes the batch sequentially in input order. The result
// list always has the same length and order as the input; one action's
// failure never stops processing of its siblings. Dispatch is serialized
// because earlier actions may create entities that later actions reference.
func (p *Pipeline) ExecuteActions(ctx context.Context, actions []domain.VoiceAction, actor domain.ActingUser) []domain.ActionResult {
	results := make([]domain.ActionResult, 0, len(actions))

	for i, action := range actions {
		start := time.Now()
		result := p.executeOne(ctx, action, actor)
		results = append(results, result)

		status := "success"
		if !result.Success {
			status = "failure"
		}
		telemetry.VoiceCommandsTotal.WithLabelValues(action.Intent, status).Inc()
		telemetry.VoiceDispatchLatency.Observe(time.Since(start).Seconds())

		p.log.Info("voice action processed",
			zap.Int("index", i),
			zap.String("intent", action.Intent),
			zap.Float64("confidence", action.Confidence),
			zap.String("actor", actor.ID),
			zap.Bool("success", result.Success),
		)
	}

	return results
}

// executeOne runs one action through the full pipeline. A panic anywhere in
// the action's flow converts to a failed result for that action only.
func (p *Pipeline) executeOne(ctx context.Context, action domain.VoiceAction, actor domain.ActingUser) (result domain.ActionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("voice action panicked",
				zap.String("intent", action.Intent),
				zap.Any("panic", rec),
			)
			result = domain.ActionResult{Success: false, Error: "internal error processing action"}
		}
	}()

	validation := p.validator.Validate(ctx, action.Intent, actor.Role, action.Data)
	if !validation.Success {
		for _, e := range validation.Errors {
			telemetry.ValidationErrorsTotal.WithLabelValues(action.Intent, string(e.Type)).Inc()
		}
		return domain.ActionResult{Success: false, Error: validation.FirstError()}
	}

	return p.router.Dispatch(ctx, actor, action.Intent, validation.Data)
}

// ValidateVoiceCommand validates a single command without dispatching it.
// Used by callers that want form-level feedback before execution.
func (p *Pipeline) ValidateVoiceCommand(ctx context.Context, intent string, role domain.Role, data map[string]interface{}) *domain.ValidationResult {
	return p.validator.Validate(ctx, intent, role, data)
}

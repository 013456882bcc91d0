package voice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// Error codes carried by ValidationError. Closed set, mirrored by the UI.
const (
	CodeConfigLookupFailed = "config_lookup_failed"
	CodeRoleNotAllowed     = "role_not_allowed"
	CodeRequiredMissing    = "required_field_missing"
	CodeInvalidFieldValue  = "invalid_field_value"
	CodeReferenceNotFound  = "reference_not_found"
	CodeResolutionFailed   = "reference_resolution_failed"
)

// Validator orchestrates the per-action validation stages: config lookup,
// permission check, presence/type check, reference existence check. Expected
// problems (validation/permission/data) accumulate so a caller sees every
// problem in one pass; infrastructure failures short-circuit the remaining
// stages for the action.
type Validator struct {
	registry ports.IntentRegistry
	resolver ports.ReferenceResolver
	mapper   *Mapper
	log      *zap.Logger
}

func NewValidator(registry ports.IntentRegistry, resolver ports.ReferenceResolver, mapper *Mapper, log *zap.Logger) *Validator {
	return &Validator{
		registry: registry,
		resolver: resolver,
		mapper:   mapper,
		log:      log,
	}
}

// Validate runs the full validation state machine for one voice action.
// It never returns an error: every outcome is a ValidationResult.
func (v *Validator) Validate(ctx context.Context, intent string, role domain.Role, data map[string]interface{}) *domain.ValidationResult {
	// Stage 1: config lookup. Any rejection here is an infrastructure
	// problem; partial state cannot be trusted, so remaining stages are
	// skipped.
	cfg, err := v.registry.GetByIntent(ctx, intent)
	if err != nil {
		v.log.Error("intent config lookup failed",
			zap.String("intent", intent),
			zap.Error(err),
		)
		msg := fmt.Sprintf("could not load configuration for intent %q: %v", intent, err)
		return &domain.ValidationResult{
			Success: false,
			Errors: []domain.ValidationError{{
				Type:    domain.ErrorTypeSystem,
				Message: msg,
				Code:    CodeConfigLookupFailed,
			}},
			SystemError: msg,
		}
	}

	var errs []domain.ValidationError

	// Stage 2: permission. Evaluation continues so the caller sees every
	// problem at once.
	if !cfg.RoleAllowed(role) {
		errs = append(errs, domain.ValidationError{
			Type:    domain.ErrorTypePermission,
			Message: fmt.Sprintf("role %q is not authorized to perform %q", role, intent),
			Code:    CodeRoleNotAllowed,
		})
	}

	// Stage 3: presence and type.
	mapped := v.mapper.Map(cfg, data)
	for _, field := range cfg.RequiredFields {
		if msg, bad := mapped.Unmapped[field]; bad {
			errs = append(errs, domain.ValidationError{
				Type:    domain.ErrorTypeValidation,
				Field:   field,
				Message: msg,
				Code:    CodeInvalidFieldValue,
			})
			continue
		}
		if !mapped.Has(field) {
			errs = append(errs, domain.ValidationError{
				Type:    domain.ErrorTypeValidation,
				Field:   field,
				Message: fmt.Sprintf("%s is required", field),
				Code:    CodeRequiredMissing,
			})
		}
	}
	for _, field := range cfg.OptionalFields {
		if msg, bad := mapped.Unmapped[field]; bad {
			errs = append(errs, domain.ValidationError{
				Type:    domain.ErrorTypeValidation,
				Field:   field,
				Message: msg,
				Code:    CodeInvalidFieldValue,
			})
		}
	}

	// Stage 4: reference existence. Labels resolve to entity IDs; the ID
	// replaces the label in the typed output.
	for field, fieldType := range cfg.FieldTypes {
		if fieldType != domain.FieldTypeReference || !mapped.Has(field) {
			continue
		}
		label, _ := mapped.Values[field].(string)
		id, err := v.resolver.Resolve(ctx, field, label)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errs = append(errs, domain.ValidationError{
					Type:    domain.ErrorTypeData,
					Field:   field,
					Message: fmt.Sprintf("no %s found matching %q", field, label),
					Code:    CodeReferenceNotFound,
				})
				continue
			}
			// Infrastructure failure: short-circuit the stage.
			v.log.Error("reference resolution failed",
				zap.String("intent", intent),
				zap.String("field", field),
				zap.Error(err),
			)
			errs = append(errs, domain.ValidationError{
				Type:    domain.ErrorTypeSystem,
				Field:   field,
				Message: fmt.Sprintf("could not resolve %s: %v", field, err),
				Code:    CodeResolutionFailed,
			})
			break
		}
		mapped.Values[field] = id
	}

	// Stage 5: aggregate.
	if len(errs) == 0 {
		return &domain.ValidationResult{
			Success: true,
			Data:    mapped.Values,
		}
	}
	return &domain.ValidationResult{
		Success:     false,
		Errors:      errs,
		FormErrors:  BuildFormErrors(errs),
		SystemError: firstSystemError(errs),
	}
}

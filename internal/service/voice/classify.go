package voice

import (
	"errors"

	"github.com/seu-repo/voxdesk/internal/domain"
)

// Classify normalizes any error into the closed validation taxonomy.
// Anything that is not a recognizable domain condition is a system error.
func Classify(err error) domain.ValidationErrorType {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		return domain.ErrorTypePermission
	case errors.Is(err, domain.ErrInvalidField), errors.Is(err, domain.ErrUnknownRole):
		return domain.ErrorTypeValidation
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrorTypeData
	default:
		return domain.ErrorTypeSystem
	}
}

// BuildFormErrors projects validation-typed errors into a field -> message
// map for form-rendering callers. The first error per field wins.
func BuildFormErrors(errs []domain.ValidationError) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	form := make(map[string]string)
	for _, e := range errs {
		if e.Type != domain.ErrorTypeValidation || e.Field == "" {
			continue
		}
		if _, ok := form[e.Field]; !ok {
			form[e.Field] = e.Message
		}
	}
	if len(form) == 0 {
		return nil
	}
	return form
}

// firstSystemError returns the message of the first system-typed error, or
// "" when none is present.
func firstSystemError(errs []domain.ValidationError) string {
	for _, e := range errs {
		if e.Type == domain.ErrorTypeSystem {
			return e.Message
		}
	}
	return ""
}

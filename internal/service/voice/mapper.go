package voice

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
)

// dateLayouts are the accepted layouts for date-typed fields, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// positiveFields must carry a value strictly greater than zero.
var positiveFields = map[string]bool{
	"hourly_rate": true,
	"budget":      true,
}

// MappedFields is the mapper output: canonically typed values plus an
// explicit unmapped marker (field -> message) for every field whose raw
// value could not be coerced. Coercion failures are never returned as
// errors so the validator can report all bad fields in one pass.
type MappedFields struct {
	Values   map[string]interface{}
	Unmapped map[string]string
}

// Has reports whether the field mapped to a usable value.
func (m *MappedFields) Has(field string) bool {
	_, ok := m.Values[field]
	return ok
}

// Mapper converts the loosely typed data of a voice action into
// intent-specific typed fields.
type Mapper struct {
	defaultHourlyRate float64
	log               *zap.Logger
}

func NewMapper(defaultHourlyRate float64, log *zap.Logger) *Mapper {
	return &Mapper{
		defaultHourlyRate: defaultHourlyRate,
		log:               log,
	}
}

// Map coerces every declared field of the intent. Reference labels pass
// through untouched; resolving them requires a store lookup and belongs to
// the validator's data-existence stage.
func (m *Mapper) Map(cfg *domain.IntentConfig, data map[string]interface{}) *MappedFields {
	out := &MappedFields{
		Values:   make(map[string]interface{}),
		Unmapped: make(map[string]string),
	}

	for field, fieldType := range cfg.FieldTypes {
		raw, ok := data[field]
		if !ok || raw == nil {
			continue
		}

		switch fieldType {
		case domain.FieldTypeString:
			if s, ok := coerceString(raw); ok && s != "" {
				out.Values[field] = s
			}

		case domain.FieldTypeNumber:
			n, err := coerceNumber(raw)
			if err != nil {
				out.Unmapped[field] = fmt.Sprintf("%s must be a number", field)
				continue
			}
			if positiveFields[field] && n <= 0 {
				out.Unmapped[field] = fmt.Sprintf("%s must be a positive number", field)
				continue
			}
			out.Values[field] = n

		case domain.FieldTypeDate:
			t, err := coerceDate(raw)
			if err != nil {
				out.Unmapped[field] = fmt.Sprintf("%s must be a date (e.g. 2006-01-02)", field)
				continue
			}
			out.Values[field] = t

		case domain.FieldTypeBoolean:
			b, err := coerceBool(raw)
			if err != nil {
				out.Unmapped[field] = fmt.Sprintf("%s must be true or false", field)
				continue
			}
			out.Values[field] = b

		case domain.FieldTypeReference:
			if s, ok := coerceString(raw); ok && s != "" {
				out.Values[field] = s
			}

		case domain.FieldTypeEnum:
			if s, ok := coerceString(raw); ok && s != "" {
				out.Values[field] = strings.ToLower(s)
			}

		default:
			m.log.Warn("unknown field type in intent config",
				zap.String("intent", cfg.Intent),
				zap.String("field", field),
				zap.String("type", string(fieldType)),
			)
		}
	}

	m.applyDefaults(cfg.Intent, out)
	return out
}

// applyDefaults fills intent-specific defaults for unset fields. Role-based
// routing decisions (e.g. whether approval is required) belong to the
// router, never here.
func (m *Mapper) applyDefaults(intent string, out *MappedFields) {
	switch intent {
	case IntentCreateUser:
		if !out.Has("role") {
			out.Values["role"] = string(domain.RoleEmployee)
		}
		if !out.Has("hourly_rate") {
			if _, bad := out.Unmapped["hourly_rate"]; !bad {
				out.Values["hourly_rate"] = m.defaultHourlyRate
			}
		}
		if !out.Has("is_active") {
			out.Values["is_active"] = true
		}
		// Approval is always required unless the router's chosen
		// operation overrides it.
		if !out.Has("is_approved_by_super_admin") {
			out.Values["is_approved_by_super_admin"] = false
		}
	}
}

func coerceString(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), true
	case fmt.Stringer:
		return strings.TrimSpace(v.String()), true
	default:
		return "", false
	}
}

func coerceNumber(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("cannot coerce %T to number", raw)
	}
}

func coerceDate(raw interface{}) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	default:
		return time.Time{}, fmt.Errorf("cannot coerce %T to date", raw)
	}
}

func coerceBool(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "y", "1", "on":
			return true, nil
		case "false", "no", "n", "0", "off":
			return false, nil
		}
		return false, fmt.Errorf("unparseable boolean %q", v)
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("cannot coerce %T to boolean", raw)
	}
}

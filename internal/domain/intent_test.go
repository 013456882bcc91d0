package domain

import "testing"

func TestIntentConfig_RoleAllowed(t *testing.T) {
	cfg := &IntentConfig{
		Intent:       "create_user",
		AllowedRoles: []Role{RoleSuperAdmin, RoleManagement},
	}

	if !cfg.RoleAllowed(RoleSuperAdmin) {
		t.Error("expected super_admin allowed")
	}
	if cfg.RoleAllowed(RoleEmployee) {
		t.Error("expected employee denied")
	}
	// Membership is exact: a higher rank does not imply permission.
	if cfg.RoleAllowed(RoleManager) {
		t.Error("expected manager denied when not listed")
	}
}

func TestIntentConfig_Validate(t *testing.T) {
	valid := &IntentConfig{
		Intent:         "create_client",
		RequiredFields: []string{"client_name"},
		OptionalFields: []string{"contact_email"},
		FieldTypes: map[string]FieldType{
			"client_name":   FieldTypeString,
			"contact_email": FieldTypeString,
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	missingType := &IntentConfig{
		Intent:         "create_client",
		RequiredFields: []string{"client_name"},
		FieldTypes:     map[string]FieldType{},
	}
	if err := missingType.Validate(); err == nil {
		t.Error("expected error for undeclared field type")
	}

	unnamed := &IntentConfig{}
	if err := unnamed.Validate(); err == nil {
		t.Error("expected error for empty intent name")
	}
}

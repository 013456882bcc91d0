package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"super_admin", RoleSuperAdmin},
		{"  Management ", RoleManagement},
		{"MANAGER", RoleManager},
		{"lead", RoleLead},
		{"employee", RoleEmployee},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if err != nil {
			t.Errorf("ParseRole(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseRole_Unknown(t *testing.T) {
	_, err := ParseRole("intern")
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}

func TestRoleOrdering(t *testing.T) {
	ordered := []Role{RoleEmployee, RoleLead, RoleManager, RoleManagement, RoleSuperAdmin}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i].AtLeast(ordered[i-1]) {
			t.Errorf("expected %s to outrank %s", ordered[i], ordered[i-1])
		}
		if ordered[i-1].AtLeast(ordered[i]) {
			t.Errorf("did not expect %s to outrank %s", ordered[i-1], ordered[i])
		}
	}
	if Role("intern").Rank() != 0 {
		t.Error("unknown roles must rank lowest")
	}
}

func TestFirstError(t *testing.T) {
	r := &ValidationResult{
		Errors: []ValidationError{
			{Type: ErrorTypeValidation, Message: "email is required"},
			{Type: ErrorTypeSystem, Message: "store down"},
		},
		SystemError: "store down",
	}
	if r.FirstError() != "store down" {
		t.Errorf("system error must win, got %q", r.FirstError())
	}

	r = &ValidationResult{Errors: []ValidationError{{Type: ErrorTypeValidation, Message: "email is required"}}}
	if r.FirstError() != "email is required" {
		t.Errorf("expected first error message, got %q", r.FirstError())
	}

	if (&ValidationResult{Success: true}).FirstError() != "" {
		t.Error("expected empty message for success")
	}
}

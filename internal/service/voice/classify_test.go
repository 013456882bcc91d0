package voice

import (
	"errors"
	"fmt"
	"testing"

	"github.com/seu-repo/voxdesk/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ValidationErrorType
	}{
		{"not authorized", domain.ErrNotAuthorized, domain.ErrorTypePermission},
		{"wrapped not authorized", fmt.Errorf("approve: %w", domain.ErrNotAuthorized), domain.ErrorTypePermission},
		{"invalid field", domain.ErrInvalidField, domain.ErrorTypeValidation},
		{"unknown role", fmt.Errorf("parse: %w", domain.ErrUnknownRole), domain.ErrorTypeValidation},
		{"not found", fmt.Errorf("lookup: %w", domain.ErrNotFound), domain.ErrorTypeData},
		{"anything else", errors.New("dial tcp: connection refused"), domain.ErrorTypeSystem},
		{"nil-adjacent wrap", fmt.Errorf("outer: %w", errors.New("inner")), domain.ErrorTypeSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestBuildFormErrors(t *testing.T) {
	errs := []domain.ValidationError{
		{Type: domain.ErrorTypeValidation, Field: "email", Message: "email is required"},
		{Type: domain.ErrorTypeValidation, Field: "email", Message: "second message loses"},
		{Type: domain.ErrorTypePermission, Message: "not authorized"},
		{Type: domain.ErrorTypeData, Field: "client", Message: "no client found"},
		{Type: domain.ErrorTypeValidation, Message: "field-less entry is skipped"},
	}

	form := BuildFormErrors(errs)

	if len(form) != 1 {
		t.Fatalf("expected one form error, got %v", form)
	}
	if form["email"] != "email is required" {
		t.Errorf("expected first message to win, got %q", form["email"])
	}
}

func TestBuildFormErrors_Empty(t *testing.T) {
	if form := BuildFormErrors(nil); form != nil {
		t.Errorf("expected nil for no errors, got %v", form)
	}
	onlyData := []domain.ValidationError{{Type: domain.ErrorTypeData, Field: "client", Message: "gone"}}
	if form := BuildFormErrors(onlyData); form != nil {
		t.Errorf("expected nil when no validation-typed errors, got %v", form)
	}
}

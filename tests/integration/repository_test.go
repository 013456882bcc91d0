package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	storage "github.com/seu-repo/voxdesk/internal/adapter/storage/postgres"
	"github.com/seu-repo/voxdesk/internal/domain"
)

func TestUserRepository_FindByFullName(t *testing.T) {
	env := SetupTestEnvironment(t)
	env.CleanTables(t)
	ctx := context.Background()

	repo := storage.NewUserRepository(env.DB, env.Logger)

	u := &domain.User{
		ID:        uuid.NewString(),
		FullName:  "Maria Silva",
		Email:     "maria@acme.io",
		Role:      domain.RoleManager,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Exact match is case-insensitive and trims surrounding whitespace.
	for _, name := range []string{"Maria Silva", "maria silva", "  MARIA SILVA "} {
		found, err := repo.FindByFullName(ctx, name)
		if err != nil {
			t.Fatalf("find %q: %v", name, err)
		}
		if found == nil || found.ID != u.ID {
			t.Errorf("expected match for %q, got %+v", name, found)
		}
	}

	// No fuzzy matching: a partial name is a miss, reported as (nil, nil).
	found, err := repo.FindByFullName(ctx, "Maria")
	if err != nil {
		t.Fatalf("find partial: %v", err)
	}
	if found != nil {
		t.Errorf("partial names must not match, got %+v", found)
	}
}

func TestUserRepository_PendingApproval(t *testing.T) {
	env := SetupTestEnvironment(t)
	env.CleanTables(t)
	ctx := context.Background()

	repo := storage.NewUserRepository(env.DB, env.Logger)

	approved := &domain.User{ID: uuid.NewString(), FullName: "A", Email: "a@x.io", Role: domain.RoleEmployee, IsApprovedBySuperAdmin: true}
	pending := &domain.User{ID: uuid.NewString(), FullName: "B", Email: "b@x.io", Role: domain.RoleEmployee, IsApprovedBySuperAdmin: false}
	for _, u := range []*domain.User{approved, pending} {
		if err := repo.Save(ctx, u); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	users, err := repo.FindPendingApproval(ctx)
	if err != nil {
		t.Fatalf("find pending: %v", err)
	}
	if len(users) != 1 || users[0].ID != pending.ID {
		t.Errorf("expected only the pending user, got %+v", users)
	}
}

func TestClientRepository_FindByName(t *testing.T) {
	env := SetupTestEnvironment(t)
	env.CleanTables(t)
	ctx := context.Background()

	repo := storage.NewClientRepository(env.DB, env.Logger)

	c := &domain.Client{
		ID:        uuid.NewString(),
		Name:      "Acme Corp",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	found, err := repo.FindByName(ctx, "acme corp")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != c.ID {
		t.Errorf("expected case-insensitive match, got %+v", found)
	}

	missing, err := repo.FindByName(ctx, "Ghost Corp")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected (nil, nil) for a miss, got %+v", missing)
	}
}

func TestIntentConfigRepository_RoundTrip(t *testing.T) {
	env := SetupTestEnvironment(t)
	env.CleanTables(t)
	ctx := context.Background()

	repo := storage.NewIntentConfigRepository(env.DB, env.Logger)

	cfg := &domain.IntentConfig{
		Intent:         "create_client",
		AllowedRoles:   []domain.Role{domain.RoleSuperAdmin, domain.RoleManagement},
		RequiredFields: []string{"client_name"},
		OptionalFields: []string{"contact_email"},
		FieldTypes: map[string]domain.FieldType{
			"client_name":   domain.FieldTypeString,
			"contact_email": domain.FieldTypeString,
		},
	}
	if err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	found, err := repo.FindByIntent(ctx, "create_client")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("expected config")
	}
	if len(found.AllowedRoles) != 2 {
		t.Errorf("allowed roles lost in serialization: %+v", found.AllowedRoles)
	}
	if found.FieldTypes["client_name"] != domain.FieldTypeString {
		t.Errorf("field types lost in serialization: %+v", found.FieldTypes)
	}

	// Saving the same intent again replaces, not duplicates.
	cfg.RequiredFields = []string{"client_name", "contact_person"}
	cfg.FieldTypes["contact_person"] = domain.FieldTypeString
	if err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected one config after upsert, got %d", len(all))
	}
}

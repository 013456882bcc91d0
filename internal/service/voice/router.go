package voice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
	"github.com/seu-repo/voxdesk/internal/ports"
)

// Intents handled by the pipeline. Configs for these are seeded at startup;
// additional intents are a data change in the registry plus one table entry
// here.
const (
	IntentCreateUser    = "create_user"
	IntentCreateProject = "create_project"
	IntentCreateClient  = "create_client"
)

// roleClass collapses roles into the operation variant they route to.
type roleClass int

const (
	classDirect   roleClass = iota // entity becomes active and approved immediately
	classApproval                  // entity is created pending super-admin approval
)

func classifyRole(role domain.Role) roleClass {
	if role == domain.RoleSuperAdmin {
		return classDirect
	}
	return classApproval
}

type operationKey struct {
	intent string
	class  roleClass
}

// operationFunc invokes one concrete backend operation for a validated
// action and returns the created entity.
type operationFunc func(ctx context.Context, actor domain.ActingUser, fields map[string]interface{}) (interface{}, error)

// Router selects the backend operation for a validated action based on the
// acting user's role and invokes it exactly once. The (intent, role class)
// strategy table is built at construction; branching per intent is data, not
// scattered conditionals.
type Router struct {
	ops map[operationKey]operationFunc
	log *zap.Logger
}

func NewRouter(users ports.UserService, projects ports.ProjectService, clients ports.ClientService, log *zap.Logger) *Router {
	createUserDirect := func(ctx context.Context, actor domain.ActingUser, fields map[string]interface{}) (interface{}, error) {
		return users.Create(ctx, actor, userInputFromFields(fields))
	}
	createUserApproval := func(ctx context.Context, actor domain.ActingUser, fields map[string]interface{}) (interface{}, error) {
		return users.CreateForApproval(ctx, actor, userInputFromFields(fields))
	}
	// Project and client creation have no role branching: every allowed
	// role invokes the same operation.
	createProject := func(ctx context.Context, actor domain.ActingUser, fields map[string]interface{}) (interface{}, error) {
		return projects.Create(ctx, actor, projectInputFromFields(fields))
	}
	createClient := func(ctx context.Context, actor domain.ActingUser, fields map[string]interface{}) (interface{}, error) {
		return clients.Create(ctx, actor, clientInputFromFields(fields))
	}

	return &Router{
		ops: map[operationKey]operationFunc{
			{IntentCreateUser, classDirect}:      createUserDirect,
			{IntentCreateUser, classApproval}:    createUserApproval,
			{IntentCreateProject, classDirect}:   createProject,
			{IntentCreateProject, classApproval}: createProject,
			{IntentCreateClient, classDirect}:    createClient,
			{IntentCreateClient, classApproval}:  createClient,
		},
		log: log,
	}
}

// Dispatch invokes the operation selected for (intent, actor role). Failures
// of any shape, including panics in the backend collaborator, convert to a
// non-throwing ActionResult. No retries.
func (r *Router) Dispatch(ctx context.Context, actor domain.ActingUser, intent string, fields map[string]interface{}) (result domain.ActionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("backend operation panicked",
				zap.String("intent", intent),
				zap.Any("panic", rec),
			)
			result = domain.ActionResult{
				Success: false,
				Error:   fmt.Sprintf("dispatch failed: %v", rec),
			}
		}
	}()

	op, ok := r.ops[operationKey{intent, classifyRole(actor.Role)}]
	if !ok {
		return domain.ActionResult{
			Success: false,
			Error:   fmt.Sprintf("no backend operation registered for intent %q", intent),
		}
	}

	entity, err := op(ctx, actor, fields)
	if err != nil {
		r.log.Warn("backend operation failed",
			zap.String("intent", intent),
			zap.String("role", string(actor.Role)),
			zap.Error(err),
		)
		return domain.ActionResult{Success: false, Error: err.Error()}
	}
	return domain.ActionResult{Success: true, Data: entity}
}

func userInputFromFields(fields map[string]interface{}) ports.CreateUserInput {
	role := domain.RoleEmployee
	if parsed, err := domain.ParseRole(getString(fields, "role")); err == nil {
		role = parsed
	}
	return ports.CreateUserInput{
		FullName:   getString(fields, "full_name"),
		Email:      getString(fields, "email"),
		Phone:      getString(fields, "phone"),
		Role:       role,
		HourlyRate: getFloat(fields, "hourly_rate"),
		ManagerID:  getString(fields, "manager"),
		IsActive:   getBool(fields, "is_active"),
	}
}

func projectInputFromFields(fields map[string]interface{}) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Name:      getString(fields, "project_name"),
		ClientID:  getString(fields, "client"),
		LeadID:    getString(fields, "lead"),
		Budget:    getFloat(fields, "budget"),
		StartDate: getTime(fields, "start_date"),
		EndDate:   getTime(fields, "end_date"),
	}
}

func clientInputFromFields(fields map[string]interface{}) ports.CreateClientInput {
	return ports.CreateClientInput{
		Name:          getString(fields, "client_name"),
		ContactEmail:  getString(fields, "contact_email"),
		ContactPerson: getString(fields, "contact_person"),
	}
}

func getString(fields map[string]interface{}, key string) string {
	s, _ := fields[key].(string)
	return s
}

func getFloat(fields map[string]interface{}, key string) float64 {
	f, _ := fields[key].(float64)
	return f
}

func getBool(fields map[string]interface{}, key string) bool {
	b, _ := fields[key].(bool)
	return b
}

func getTime(fields map[string]interface{}, key string) *time.Time {
	if t, ok := fields[key].(time.Time); ok {
		return &t
	}
	return nil
}

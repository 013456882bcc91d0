package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleManagement Role = "management"
	RoleManager    Role = "manager"
	RoleLead       Role = "lead"
	RoleEmployee   Role = "employee"
)

// roleRank orders roles from highest to lowest privilege.
var roleRank = map[Role]int{
	RoleSuperAdmin: 5,
	RoleManagement: 4,
	RoleManager:    3,
	RoleLead:       2,
	RoleEmployee:   1,
}

// ParseRole normalizes a raw role string. Returns an error for unknown roles.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Rank returns the privilege rank of the role (higher = more privileged).
// Unknown roles rank as 0.
func (r Role) Rank() int {
	return roleRank[r]
}

func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

type User struct {
	ID                     string    `json:"id" gorm:"primaryKey"`
	FullName               string    `json:"full_name"`
	Email                  string    `json:"email" gorm:"uniqueIndex"`
	Phone                  string    `json:"phone,omitempty" gorm:"index"`
	Password               string    `json:"-"` // Hashed password
	Role                   Role      `json:"role"`
	HourlyRate             float64   `json:"hourly_rate"`
	ManagerID              string    `json:"manager_id,omitempty" gorm:"index"`
	IsActive               bool      `json:"is_active" gorm:"default:true"`
	IsApprovedBySuperAdmin bool      `json:"is_approved_by_super_admin" gorm:"default:false"`
	CreatedBy              string    `json:"created_by,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

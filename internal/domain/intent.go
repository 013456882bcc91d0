package domain

import (
	"fmt"
	"time"
)

// FieldType describes how a raw intent field must be coerced.
type FieldType string

const (
	FieldTypeString    FieldType = "string"
	FieldTypeNumber    FieldType = "number"
	FieldTypeDate      FieldType = "date"
	FieldTypeBoolean   FieldType = "boolean"
	FieldTypeReference FieldType = "reference"
	FieldTypeEnum      FieldType = "enum"
)

// IntentConfig is the schema of a single voice intent: who may issue it and
// which fields it carries.
type IntentConfig struct {
	Intent         string               `json:"intent" gorm:"primaryKey;column:intent"`
	AllowedRoles   []Role               `json:"allowed_roles" gorm:"serializer:json"`
	RequiredFields []string             `json:"required_fields" gorm:"serializer:json"`
	OptionalFields []string             `json:"optional_fields" gorm:"serializer:json"`
	FieldTypes     map[string]FieldType `json:"field_types" gorm:"serializer:json"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func (IntentConfig) TableName() string {
	return "intent_configs"
}

// RoleAllowed reports whether the role may issue this intent.
func (c *IntentConfig) RoleAllowed(role Role) bool {
	for _, r := range c.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Validate enforces the schema invariant: every required and optional field
// must have an entry in FieldTypes.
func (c *IntentConfig) Validate() error {
	if c.Intent == "" {
		return fmt.Errorf("intent config: empty intent name")
	}
	for _, f := range append(append([]string{}, c.RequiredFields...), c.OptionalFields...) {
		if _, ok := c.FieldTypes[f]; !ok {
			return fmt.Errorf("intent config %q: field %q has no declared type", c.Intent, f)
		}
	}
	return nil
}

package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusOnHold   ProjectStatus = "on_hold"
	ProjectStatusArchived ProjectStatus = "archived"
)

type Project struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"index"`
	ClientID  string        `json:"client_id" gorm:"index"`
	LeadID    string        `json:"lead_id,omitempty" gorm:"index"`
	Budget    float64       `json:"budget"`
	StartDate *time.Time    `json:"start_date,omitempty"`
	EndDate   *time.Time    `json:"end_date,omitempty"`
	Status    ProjectStatus `json:"status" gorm:"default:active"`
	CreatedBy string        `json:"created_by,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

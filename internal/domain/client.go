package domain

import "time"

type Client struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"uniqueIndex"`
	ContactEmail  string    `json:"contact_email,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

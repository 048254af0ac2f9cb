// Package domain contains core types for the location service.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical site that runs a lost-and-found desk.
type Location struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Name       string    `gorm:"not null" json:"name"`
	Address    string    `gorm:"not null" json:"address"`
	City       string    `gorm:"not null" json:"city"`
	State      string    `gorm:"not null" json:"state"`
	PostalCode string    `gorm:"column:postal_code;not null" json:"postal_code"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Location) TableName() string { return "locations" }

// Package domain contains core types for customer claims.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Claim review statuses.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusDenied    = "denied"
	StatusNeedsInfo = "needs_info"
	StatusReturned  = "returned"
)

// Statuses lists the accepted claim statuses.
var Statuses = []string{
	StatusPending,
	StatusApproved,
	StatusDenied,
	StatusNeedsInfo,
	StatusReturned,
}

func IsValidStatus(value string) bool {
	for _, status := range Statuses {
		if status == value {
			return true
		}
	}
	return false
}

// Claim is a customer's assertion of ownership over a found item.
type Claim struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	ItemID       snowflake.ID `gorm:"column:item_id;not null;index" json:"item_id"`
	LocationID   uuid.UUID    `gorm:"column:location_id;type:uuid;not null;index" json:"location_id"`
	FirstName    string       `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string       `gorm:"column:last_name;not null" json:"last_name"`
	Email        string       `gorm:"not null" json:"email"`
	ClaimDetails string       `gorm:"column:claim_details;not null" json:"claim_details"`
	Status       string       `gorm:"not null;default:pending" json:"status"`
	DenialReason *string      `gorm:"column:denial_reason" json:"denial_reason,omitempty"`
	PickupCode   *string      `gorm:"column:pickup_code" json:"pickup_code,omitempty"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Claim) TableName() string { return "item_claims" }

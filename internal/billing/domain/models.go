// Package domain contains the subscription mirror kept in sync from
// billing provider webhooks.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubscriptionRecord mirrors the provider's view of a location's
// subscription. One row per location; webhook deliveries overwrite the
// row with whatever the provider last reported.
type SubscriptionRecord struct {
	ID                   snowflake.ID   `gorm:"primaryKey" json:"id"`
	LocationID           uuid.UUID      `gorm:"column:location_id;type:uuid;not null;uniqueIndex" json:"location_id"`
	StripeCustomerID     string         `gorm:"column:stripe_customer_id;not null" json:"stripe_customer_id"`
	StripeSubscriptionID string         `gorm:"column:stripe_subscription_id;not null" json:"stripe_subscription_id"`
	StripePriceID        string         `gorm:"column:stripe_price_id;not null" json:"stripe_price_id"`
	CurrentPeriodStart   *time.Time     `gorm:"column:current_period_start" json:"current_period_start,omitempty"`
	CurrentPeriodEnd     *time.Time     `gorm:"column:current_period_end" json:"current_period_end,omitempty"`
	CanceledAt           *time.Time     `gorm:"column:canceled_at" json:"canceled_at,omitempty"`
	LastEvent            datatypes.JSON `gorm:"column:last_event;type:jsonb" json:"-"`
	CreatedAt            time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (SubscriptionRecord) TableName() string { return "subscriptions" }

// ValidAt reports whether the mirrored subscription unlocks the public
// page at the given instant. A record that was never canceled counts as
// valid; a canceled one holds until its paid period runs out.
func (r *SubscriptionRecord) ValidAt(now time.Time) bool {
	if r == nil {
		return false
	}
	if r.CanceledAt == nil {
		return true
	}
	return r.CurrentPeriodEnd != nil && r.CurrentPeriodEnd.After(now)
}

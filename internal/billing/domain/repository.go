package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Upsert overwrites the row keyed on location_id with the observed
	// provider state. No version fencing; last delivery wins.
	Upsert(ctx context.Context, db *gorm.DB, record *SubscriptionRecord) error

	FindByLocation(ctx context.Context, db *gorm.DB, locationID uuid.UUID) (*SubscriptionRecord, error)
	FindOwnedByLocation(ctx context.Context, db *gorm.DB, userID, locationID uuid.UUID) (*SubscriptionRecord, error)
}
